package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/models"
)

// foodEntryService stores food entries together with their photos.
// A photo is always uploaded before the record that references it is written.
type foodEntryService struct {
	repository store.FoodEntryRepository
	blobs      store.BlobStorage
	keys       store.BlobKeyGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewFoodEntryService(repository store.FoodEntryRepository, blobs store.BlobStorage, keys store.BlobKeyGenerator, logger *logger.Logger) FoodEntryService {
	return &foodEntryService{
		repository: repository,
		blobs:      blobs,
		keys:       keys,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *foodEntryService) Save(ctx context.Context, userID int64, req models.FoodEntryRequest) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)
	entry := req.ToEntry(userID)

	if req.ImageData != "" {
		ref, err := s.upload(ctx, userID, req.ImageData)
		if err != nil {
			return models.FoodEntry{}, err
		}
		entry.ImageRef = ref
	}

	created, err := s.repository.CreateFoodEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "foodEntryService.Save").Int64("user_id", userID).Msg("failed to create food entry")
		s.removeImage(ctx, entry.ImageRef)
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	return s.withImageURL(created), nil
}

// Update replaces the values of the entry. A new photo replaces the old one,
// which is removed after the record points at the new key.
func (s *foodEntryService) Update(ctx context.Context, userID, id int64, req models.FoodEntryRequest) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repository.GetFoodEntry(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "foodEntryService.Update").Int64("user_id", userID).Int64("id", id).Msg("failed to load food entry")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	entry := req.ToEntry(userID)
	entry.ID = id

	if req.ImageData != "" {
		ref, uploadErr := s.upload(ctx, userID, req.ImageData)
		if uploadErr != nil {
			return models.FoodEntry{}, uploadErr
		}
		entry.ImageRef = ref
	}

	updated, err := s.repository.UpdateFoodEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "foodEntryService.Update").Int64("user_id", userID).Int64("id", id).Msg("failed to update food entry")
		s.removeImage(ctx, entry.ImageRef)
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	if entry.ImageRef != "" && existing.ImageRef != "" && existing.ImageRef != entry.ImageRef {
		s.removeImage(ctx, existing.ImageRef)
	}

	return s.withImageURL(updated), nil
}

func (s *foodEntryService) Get(ctx context.Context, userID, id int64) (models.FoodEntry, error) {
	entry, err := s.repository.GetFoodEntry(ctx, userID, id)
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}
	return s.withImageURL(entry), nil
}

func (s *foodEntryService) List(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error) {
	entries, err := s.repository.ListFoodEntries(ctx, userID, dateRange)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "foodEntryService.List").Int64("user_id", userID).Msg("failed to list food entries")
		return nil, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	for i := range entries {
		entries[i] = s.withImageURL(entries[i])
	}
	return entries, nil
}

// Delete removes the record first; the photo is removed best-effort after.
func (s *foodEntryService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repository.DeleteFoodEntry(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "foodEntryService.Delete").Int64("user_id", userID).Int64("id", id).Msg("failed to delete food entry")
		return fmt.Errorf("%w: %w", ErrRepository, err)
	}

	s.removeImage(ctx, deleted.ImageRef)
	return nil
}

// upload normalises the photo to a bounded JPEG and stores it under a fresh key.
func (s *foodEntryService) upload(ctx context.Context, userID int64, imageData string) (string, error) {
	log := logger.FromContext(ctx)

	_, data, err := imaging.DecodeDataURI(imageData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	jpeg, err := imaging.Preprocess(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	key := store.NewBlobKey(s.keys, userID, s.now())
	ref, err := s.blobs.Upload(ctx, key, jpeg, imaging.MIMEType)
	if err != nil {
		log.Err(err).Str("func", "foodEntryService.upload").Int64("user_id", userID).Str("key", key).Msg("image upload failed")
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	return ref, nil
}

func (s *foodEntryService) removeImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.blobs.Delete(ctx, ref); err != nil && !errors.Is(err, store.ErrBlobNotFound) {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "foodEntryService.removeImage").Str("key", ref).Msg("failed to delete image")
	}
}

func (s *foodEntryService) withImageURL(entry models.FoodEntry) models.FoodEntry {
	if entry.ImageRef == "" {
		return entry
	}
	entry.ImageURL = s.blobs.PublicURL(entry.ImageRef)
	return entry
}
