package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

type localEntryCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalEntryCacheRepository(db *DB, logger *logger.Logger) EntryCacheRepository {
	return &localEntryCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localEntryCacheRepository) ReplaceDay(ctx context.Context, userID int64, day string, entries []models.FoodEntry) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localEntryCacheRepository.ReplaceDay").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, deleteCachedDay, userID, day); err != nil {
		log.Err(err).
			Str("func", "localEntryCacheRepository.ReplaceDay").
			Int64("user_id", userID).
			Str("day", day).
			Msg("failed to clear cached day")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, entry := range entries {
		_, err = tx.ExecContext(ctx, insertCachedEntry,
			entry.ID,
			userID,
			day,
			entry.Calories,
			entry.Protein,
			entry.Carbs,
			entry.Fat,
			entry.Description,
			entry.ImageRef,
			entry.ImageURL,
			entry.CreatedAt,
			entry.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localEntryCacheRepository.ReplaceDay").
				Int64("user_id", userID).
				Int64("id", entry.ID).
				Msg("failed to cache entry")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localEntryCacheRepository.ReplaceDay").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (l *localEntryCacheRepository) ListDay(ctx context.Context, userID int64, day string) ([]models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listCachedDay, userID, day)
	if err != nil {
		log.Err(err).
			Str("func", "localEntryCacheRepository.ListDay").
			Int64("user_id", userID).
			Str("day", day).
			Msg("failed to query cached entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FoodEntry, 0, 16)
	for rows.Next() {
		var entry models.FoodEntry
		if err = rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Calories,
			&entry.Protein,
			&entry.Carbs,
			&entry.Fat,
			&entry.Description,
			&entry.ImageRef,
			&entry.ImageURL,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (l *localEntryCacheRepository) Clear(ctx context.Context, userID int64) error {
	if _, err := l.DB.ExecContext(ctx, clearCachedEntries, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localEntryCacheRepository.Clear").Int64("user_id", userID).Msg("failed to clear cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
