package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
)

// Storages groups the server-side repositories and the blob storage.
type Storages struct {
	UserRepository      UserRepository
	FoodEntryRepository FoodEntryRepository
	SettingsRepository  SettingsRepository
	BlobStorage         BlobStorage

	db *DB
}

// NewStorages connects to PostgreSQL, runs migrations and configures the
// blob driver.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewBlobStorage(ctx, cfg.Blob, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob storage error: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		FoodEntryRepository: NewFoodEntryRepository(db, logger),
		SettingsRepository:  NewSettingsRepository(db, logger),
		BlobStorage:         blobs,
		db:                  db,
	}, nil
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
