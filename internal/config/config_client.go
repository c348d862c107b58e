package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the client's transport settings.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientDB holds the local SQLite settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	// RefreshInterval is how often today's entries are refreshed.
	RefreshInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// DefaultClientDSN is the SQLite file used when no DSN was configured.
const DefaultClientDSN = "nutri-track-client.db"

// GetClientConfig loads the shared configuration, maps the client fields and
// validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
