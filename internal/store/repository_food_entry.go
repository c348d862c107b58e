// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

// foodEntryRepository is the PostgreSQL-backed implementation of
// [FoodEntryRepository] over the "food_entries" table.
type foodEntryRepository struct {
	*DB
	logger *logger.Logger
}

func NewFoodEntryRepository(db *DB, logger *logger.Logger) FoodEntryRepository {
	return &foodEntryRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFoodEntry(row rowScanner) (models.FoodEntry, error) {
	var entry models.FoodEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Calories,
		&entry.Protein,
		&entry.Carbs,
		&entry.Fat,
		&entry.Description,
		&entry.ImageRef,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return entry, err
}

func (f *foodEntryRepository) CreateFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateFoodEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "foodEntryRepository.CreateFoodEntry").Msg("failed to build query")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.FoodEntry
	err = f.withRetry(ctx, func() error {
		var scanErr error
		created, scanErr = scanFoodEntry(f.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "foodEntryRepository.CreateFoodEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to insert food entry")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (f *foodEntryRepository) UpdateFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFoodEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "foodEntryRepository.UpdateFoodEntry").Msg("failed to build query")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanFoodEntry(f.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FoodEntry{}, ErrFoodEntryNotFound
		}
		log.Err(err).
			Str("func", "foodEntryRepository.UpdateFoodEntry").
			Int64("user_id", entry.UserID).
			Int64("id", entry.ID).
			Msg("failed to update food entry")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (f *foodEntryRepository) GetFoodEntry(ctx context.Context, userID, id int64) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFoodEntryQuery(userID, id)
	if err != nil {
		log.Err(err).Str("func", "foodEntryRepository.GetFoodEntry").Msg("failed to build query")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanFoodEntry(f.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FoodEntry{}, ErrFoodEntryNotFound
		}
		log.Err(err).
			Str("func", "foodEntryRepository.GetFoodEntry").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to get food entry")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// ListFoodEntries returns an empty slice, never nil, when nothing matches.
func (f *foodEntryRepository) ListFoodEntries(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFoodEntriesQuery(userID, dateRange.Start(), dateRange.End())
	if err != nil {
		log.Err(err).Str("func", "foodEntryRepository.ListFoodEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "foodEntryRepository.ListFoodEntries").
			Int64("user_id", userID).
			Msg("failed to execute query for listing food entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FoodEntry, 0, 16)
	for rows.Next() {
		entry, scanErr := scanFoodEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "foodEntryRepository.ListFoodEntries").
				Int64("user_id", userID).
				Msg("failed to scan food entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "foodEntryRepository.ListFoodEntries").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// DeleteFoodEntry removes the entry and returns it so the caller can clean up
// the attached image.
func (f *foodEntryRepository) DeleteFoodEntry(ctx context.Context, userID, id int64) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFoodEntryQuery(userID, id)
	if err != nil {
		log.Err(err).Str("func", "foodEntryRepository.DeleteFoodEntry").Msg("failed to build query")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanFoodEntry(f.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FoodEntry{}, ErrFoodEntryNotFound
		}
		log.Err(err).
			Str("func", "foodEntryRepository.DeleteFoodEntry").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to delete food entry")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
