package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
)

// FoodEntryServiceWrapper defines middleware composition for FoodEntryService.
// Implementations wrap an existing FoodEntryService to add behavior such as
// logging or validating.
type FoodEntryServiceWrapper interface {
	Wrap(FoodEntryService) FoodEntryService
}

// FoodEntryValidationService rejects invalid input before the wrapped
// service touches storage or the network.
type FoodEntryValidationService struct {
	inner     FoodEntryService
	validator validators.Validator
}

func NewFoodEntryValidationService() FoodEntryServiceWrapper {
	return &FoodEntryValidationService{
		validator: validators.NewFoodEntryValidator(),
	}
}

func (v *FoodEntryValidationService) Save(ctx context.Context, userID int64, req models.FoodEntryRequest) (models.FoodEntry, error) {
	if err := v.validator.Validate(ctx, req.ToEntry(userID), validators.FieldUserID); err != nil {
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Save(ctx, userID, req)
}

func (v *FoodEntryValidationService) Update(ctx context.Context, userID, id int64, req models.FoodEntryRequest) (models.FoodEntry, error) {
	if err := v.validateIDs(ctx, userID, id); err != nil {
		return models.FoodEntry{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, userID, id, req)
}

func (v *FoodEntryValidationService) Get(ctx context.Context, userID, id int64) (models.FoodEntry, error) {
	if err := v.validateIDs(ctx, userID, id); err != nil {
		return models.FoodEntry{}, err
	}

	return v.inner.Get(ctx, userID, id)
}

func (v *FoodEntryValidationService) List(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error) {
	if err := v.validator.Validate(ctx, models.FoodEntry{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := v.validator.Validate(ctx, dateRange); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.List(ctx, userID, dateRange)
}

func (v *FoodEntryValidationService) Delete(ctx context.Context, userID, id int64) error {
	if err := v.validateIDs(ctx, userID, id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, id)
}

func (v *FoodEntryValidationService) validateIDs(ctx context.Context, userID, id int64) error {
	err := v.validator.Validate(ctx, models.FoodEntry{ID: id, UserID: userID}, validators.FieldUserID, validators.FieldEntryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (v *FoodEntryValidationService) Wrap(wrapper FoodEntryService) FoodEntryService {
	v.inner = wrapper
	return v
}
