package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
	// LogLevel is the zerolog level of the client logger.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from the
// dotenv file, the environment, args, and an optional JSON file. It also
// returns the positional arguments left after the flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	var rest []string

	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(clientFlags(&rest), args).
		withJSON().
		merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, rest, clientCfg.validate()
}
