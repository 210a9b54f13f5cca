package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote API base address (URL or host:port)
//	-d local session database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-refresh-interval note cache refresh interval (e.g., "30s")
func ParseFlags() *Config {
	var apiAddress string
	var storageDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&apiAddress, "a", "", "Remote API base address")
	flag.StringVar(&storageDSN, "d", "", "Local session database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Note cache refresh interval (e.g., 30s)")

	flag.Parse()

	return &Config{
		API: API{
			Address:        apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: storageDSN,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
