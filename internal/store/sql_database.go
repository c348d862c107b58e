package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/migrations"
)

// DB wraps a database handle together with the migration dialect and the
// error classifier of its driver.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// maxQueryRetries bounds how many times a transient driver error is retried.
const maxQueryRetries = 3

// withRetry runs op and repeats it while the classifier reports the error
// as retryable. Other errors stop the loop immediately.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(backoff.WithInitialInterval(50*time.Millisecond)), maxQueryRetries-1),
		ctx,
	)
	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}
