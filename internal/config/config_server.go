package config

import (
	"fmt"
	"time"
)

// ServerApp holds token verification settings for the sync server.
type ServerApp struct {
	// TokenSignKey verifies bearer tokens issued by the external issuer.
	TokenSignKey string
	// TokenIssuer is the expected "iss" claim.
	TokenIssuer string
	// Version is the running application version.
	Version string
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token verification settings.
	App ServerApp
	// DB contains PostgreSQL connection settings.
	DB DB
	// HTTPAddress is the listen address of the sync server.
	HTTPAddress string
	// RequestTimeout bounds inbound request handling.
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			Version:      cfg.App.Version,
		},
		DB:             cfg.Storage.DB,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	if err = serverCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return serverCfg, nil
}
