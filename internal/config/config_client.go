package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCredentials are optional stored credentials used when a subcommand
// is not given -login / -password.
type ClientCredentials struct {
	Login    string
	Password string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter     ClientAdapter
	Credentials ClientCredentials
}

// GetClientConfig builds and validates the CLI client configuration.
//
// Only environment variables, the JSON file named by CONFIG and defaults are
// consulted. Command-line flags belong to the client subcommands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Credentials: ClientCredentials{
			Login:    cfg.Adapter.Login,
			Password: cfg.Adapter.Password,
		},
	}

	return clientCfg, clientCfg.validate()
}
