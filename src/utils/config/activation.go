package config

import (
	"time"

	"github.com/spf13/viper"
)

type Activation struct {
	// Endpoint that funds freshly created accounts
	Url string

	// Time limit for requests. The timeout includes connection time, any
	// redirects, and reading the response body
	RequestTimeout time.Duration

	// Maximum amount of time a dial will wait for a connect to complete.
	DialerTimeout time.Duration

	// Interval between keep-alive probes for an active network connection.
	DialerKeepAlive time.Duration

	// Maximum amount of time an idle (keep-alive) connection will remain idle before closing itself.
	IdleConnTimeout time.Duration

	// Maximum amount of time waiting to wait for a TLS handshake
	TLSHandshakeTimeout time.Duration
}

func setActivationDefaults() {
	viper.SetDefault("Activation.Url", "https://activation.dev.grid.tf/activation/activate")
	viper.SetDefault("Activation.RequestTimeout", "30s")
	viper.SetDefault("Activation.DialerTimeout", "30s")
	viper.SetDefault("Activation.DialerKeepAlive", "15s")
	viper.SetDefault("Activation.IdleConnTimeout", "31s")
	viper.SetDefault("Activation.TLSHandshakeTimeout", "10s")
}
