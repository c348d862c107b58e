package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) GetDailyIntakeGoals(ctx context.Context, userID int64) (models.DailyIntakeGoals, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetGoalsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.GetDailyIntakeGoals").Msg("failed to build query")
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var goals models.DailyIntakeGoals
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&goals.Calories, &goals.Protein, &goals.Carbs, &goals.Fat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultDailyIntakeGoals(), nil
		}
		log.Err(err).
			Str("func", "settingsRepository.GetDailyIntakeGoals").
			Int64("user_id", userID).
			Msg("failed to get daily intake goals")
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goals, nil
}

func (s *settingsRepository) UpsertDailyIntakeGoals(ctx context.Context, userID int64, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertGoalsQuery(userID, goals)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.UpsertDailyIntakeGoals").Msg("failed to build query")
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.DailyIntakeGoals
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&saved.Calories, &saved.Protein, &saved.Carbs, &saved.Fat)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.UpsertDailyIntakeGoals").
			Int64("user_id", userID).
			Msg("failed to save daily intake goals")
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}
