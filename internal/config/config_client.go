package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds the settings of the command-line client.
type ClientConfig struct {
	// Adapter configures the HTTP adapter that talks to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`
}

// Adapter holds the server endpoint used by the client adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request issued by the adapter.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from built-in defaults
// overridden by environment variables.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://" + DefaultHTTPAddress,
			RequestTimeout: 10 * time.Second,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
