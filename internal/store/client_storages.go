package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
)

// ClientStorages groups the client-side SQLite repositories.
type ClientStorages struct {
	SessionRepository    SessionRepository
	EntryCacheRepository EntryCacheRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the local SQLite database,
// applies migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository:    NewLocalSessionRepository(db, logger),
		EntryCacheRepository: NewLocalEntryCacheRepository(db, logger),
		db:                   db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
