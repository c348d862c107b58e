// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/migrations"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// maxConnectElapsed bounds the time spent retrying the first ping.
const maxConnectElapsed = 30 * time.Second

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying transient failures while postgres starts up
	policy := backoff.WithContext(backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(maxConnectElapsed)), ctx)
	err = backoff.RetryNotify(func() error {
		pingErr := conn.PingContext(ctx)
		if pingErr == nil {
			return nil
		}
		if isPgError(pingErr) && classifier.Classify(pingErr) == NonRetryable {
			return backoff.Permanent(pingErr)
		}
		return pingErr
	}, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Dur("retry_in", wait).Msg("database is not ready")
	})
	if err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            migrations.Postgres,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isPgError(err error) bool {
	return postgresError(err) != ""
}
