package config

import (
	"github.com/spf13/viper"
)

type Identity struct {
	// Mnemonic, hex seed or derivation uri (e.g. //Alice) of the signing account.
	// For ed25519 only a 0x prefixed 32 byte hex seed is accepted.
	Secret string

	// sr25519 or ed25519
	Scheme string
}

func setIdentityDefaults() {
	viper.SetDefault("Identity.Secret", "")
	viper.SetDefault("Identity.Scheme", "sr25519")
}
