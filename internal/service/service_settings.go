package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
)

type settingsService struct {
	repository store.SettingsRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewSettingsService(repository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		repository: repository,
		validator:  validators.NewFoodEntryValidator(),
		logger:     logger,
	}
}

func (s *settingsService) GetGoals(ctx context.Context, userID int64) (models.DailyIntakeGoals, error) {
	goals, err := s.repository.GetDailyIntakeGoals(ctx, userID)
	if err != nil {
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}
	return goals, nil
}

func (s *settingsService) UpdateGoals(ctx context.Context, userID int64, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error) {
	if err := s.validator.Validate(ctx, goals); err != nil {
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	saved, err := s.repository.UpsertDailyIntakeGoals(ctx, userID, goals)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsService.UpdateGoals").Int64("user_id", userID).Msg("failed to save goals")
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}
	return saved, nil
}
