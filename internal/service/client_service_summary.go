package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
)

type clientSummaryService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientSummaryService(serverAdapter adapter.ServerAdapter) ClientSummaryService {
	return &clientSummaryService{adapter: serverAdapter, validator: validators.NewFoodEntryValidator()}
}

func (s *clientSummaryService) Daily(ctx context.Context, day time.Time) (models.DailySummary, error) {
	summary, err := s.adapter.DailySummary(ctx, day)
	return summary, mapAdapterError(err)
}

func (s *clientSummaryService) Weekly(ctx context.Context, endDay time.Time) (models.WeeklySummary, error) {
	summary, err := s.adapter.WeeklySummary(ctx, endDay)
	return summary, mapAdapterError(err)
}

func (s *clientSummaryService) Goals(ctx context.Context) (models.DailyIntakeGoals, error) {
	goals, err := s.adapter.GetGoals(ctx)
	return goals, mapAdapterError(err)
}

func (s *clientSummaryService) UpdateGoals(ctx context.Context, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error) {
	if err := s.validator.Validate(ctx, goals); err != nil {
		return models.DailyIntakeGoals{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	saved, err := s.adapter.UpdateGoals(ctx, goals)
	return saved, mapAdapterError(err)
}
