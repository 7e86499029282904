package config

import (
	"time"

	"github.com/spf13/viper"
)

type Substrate struct {
	// List of websocket urls of chain nodes, order matters. The first reachable one is used.
	Urls []string

	// Connection retrying. 0 means no limit
	ConnectMaxElapsedTime time.Duration
	ConnectMaxInterval    time.Duration

	// How long runtime metadata is reused before it is fetched again.
	// Runtime upgrades change call indices, so this shouldn't be too long.
	MetadataCacheTTL time.Duration

	// Time in which max num of storage queries is enforced
	QueryLimiterInterval time.Duration

	// Max num of storage queries per interval
	QueryLimiterBurstSize int

	// Address format used when rendering accounts
	SS58Format uint8
}

func setSubstrateDefaults() {
	viper.SetDefault("Substrate.Urls", []string{"wss://tfchain.dev.grid.tf"})
	viper.SetDefault("Substrate.ConnectMaxElapsedTime", "1m")
	viper.SetDefault("Substrate.ConnectMaxInterval", "10s")
	viper.SetDefault("Substrate.MetadataCacheTTL", "10m")
	viper.SetDefault("Substrate.QueryLimiterInterval", "10ms")
	viper.SetDefault("Substrate.QueryLimiterBurstSize", "50")
	viper.SetDefault("Substrate.SS58Format", "42")
}
