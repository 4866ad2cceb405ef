package config

import (
	"fmt"
	"time"
)

// ClientApp holds the token settings the client uses to sign its own
// requests. They must match the server's APP_TOKEN_* settings.
type ClientApp struct {
	// TokenSignKey is the shared HMAC secret. Empty disables signing.
	TokenSignKey string
	// TokenIssuer is the expected "iss" claim.
	TokenIssuer string
	// TokenDuration is the lifetime of a minted token.
	TokenDuration time.Duration
	// Operator is the "sub" claim of minted tokens.
	Operator string
	// LogLevel is the client log level.
	LogLevel string
	// PageSize is the number of records per TUI page.
	PageSize int
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains token and listing settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Operator:      cfg.Adapter.Operator,
			LogLevel:      cfg.App.LogLevel,
			PageSize:      cfg.App.DefaultPageSize,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
