package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
)

const cacheDayLayout = "2006-01-02"

type clientFoodService struct {
	adapter      adapter.ServerAdapter
	cache        store.EntryCacheRepository
	validator    validators.Validator
	preprocessor *imaging.Preprocessor
	logger       *logger.Logger
	now          func() time.Time
}

func NewClientFoodService(serverAdapter adapter.ServerAdapter, cache store.EntryCacheRepository, logger *logger.Logger) ClientFoodService {
	return &clientFoodService{
		adapter:      serverAdapter,
		cache:        cache,
		validator:    validators.NewFoodEntryValidator(),
		preprocessor: imaging.NewPreprocessor(),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *clientFoodService) Save(ctx context.Context, session models.Session, draft models.InferenceDraft, imageBytes []byte) (models.FoodEntry, error) {
	req, err := s.buildRequest(ctx, draft, imageBytes)
	if err != nil {
		return models.FoodEntry{}, err
	}

	entry, err := s.adapter.CreateEntry(ctx, req)
	if err != nil {
		return models.FoodEntry{}, mapAdapterError(err)
	}

	s.refreshDay(ctx, session, entry.CreatedAt)
	return entry, nil
}

func (s *clientFoodService) Update(ctx context.Context, session models.Session, id int64, draft models.InferenceDraft, imageBytes []byte) (models.FoodEntry, error) {
	if id <= 0 {
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidEntryID)
	}

	req, err := s.buildRequest(ctx, draft, imageBytes)
	if err != nil {
		return models.FoodEntry{}, err
	}

	entry, err := s.adapter.UpdateEntry(ctx, id, req)
	if err != nil {
		return models.FoodEntry{}, mapAdapterError(err)
	}

	s.refreshDay(ctx, session, entry.CreatedAt)
	return entry, nil
}

func (s *clientFoodService) List(ctx context.Context, session models.Session, day time.Time) ([]models.FoodEntry, error) {
	entries, err := s.adapter.ListEntries(ctx, day, day)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	if err = s.cache.ReplaceDay(ctx, session.UserID, day.Format(cacheDayLayout), entries); err != nil {
		s.logger.Err(err).Str("func", "clientFoodService.List").Msg("failed to cache day entries")
	}

	return entries, nil
}

func (s *clientFoodService) Cached(ctx context.Context, session models.Session, day time.Time) ([]models.FoodEntry, error) {
	return s.cache.ListDay(ctx, session.UserID, day.Format(cacheDayLayout))
}

func (s *clientFoodService) Delete(ctx context.Context, session models.Session, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidEntryID)
	}

	if err := s.adapter.DeleteEntry(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	s.logger.Debug().Str("func", "clientFoodService.Delete").Int64("user_id", session.UserID).Int64("id", id).Msg("entry deleted")
	return nil
}

// buildRequest validates the draft and attaches the preprocessed photo.
// Nothing here touches the network.
func (s *clientFoodService) buildRequest(ctx context.Context, draft models.InferenceDraft, imageBytes []byte) (models.FoodEntryRequest, error) {
	req := draft.ToRequest("")
	if err := s.validator.Validate(ctx, req, validators.FieldNutrients, validators.FieldDescription); err != nil {
		return models.FoodEntryRequest{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if len(imageBytes) == 0 {
		return req, nil
	}

	processed, err := s.preprocessor.Process(imageBytes)
	if err != nil {
		return models.FoodEntryRequest{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	req.ImageData = imaging.EncodeDataURI(imaging.MIMEType, processed)

	return req, nil
}

// refreshDay re-lists the local day of createdAt so the cache includes the
// entry just written. Failures only cost freshness.
func (s *clientFoodService) refreshDay(ctx context.Context, session models.Session, createdAt time.Time) {
	day := s.now()
	if !createdAt.IsZero() {
		day = createdAt.In(day.Location())
	}

	if _, err := s.List(ctx, session, day); err != nil {
		s.logger.Err(err).Str("func", "clientFoodService.refreshDay").Msg("failed to refresh day cache")
	}
}
