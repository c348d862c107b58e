// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/MKhiriev/go-nutri-track/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldNutrients targets calories, protein, carbs and fat together.
	FieldNutrients = "nutrients"

	// FieldDescription targets the free-text description.
	FieldDescription = "description"

	// FieldImageData targets the optional base64 image data URI.
	FieldImageData = "image_data"

	// FieldUserID targets the owner of an entry.
	FieldUserID = "user_id"

	// FieldEntryID targets the identifier of an existing entry.
	FieldEntryID = "id"

	// FieldGoals targets all four daily intake goals.
	FieldGoals = "goals"

	FieldLogin    = "login"
	FieldPassword = "password"

	// FieldDateRange targets the From/To order and length of a range.
	FieldDateRange = "date_range"
)

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 500

// MaxRangeDays bounds list requests so one call cannot scan a user's history.
const MaxRangeDays = 93

// FoodEntryValidator implements [Validator] for the food tracking models:
// FoodEntryRequest, FoodEntry, DailyIntakeGoals, User and DateRange.
// Both value and pointer forms are accepted.
type FoodEntryValidator struct {
}

func NewFoodEntryValidator() Validator {
	return &FoodEntryValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked for each type; unknown field names yield [ErrUnknownField].
func (v *FoodEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FoodEntryRequest:
		return v.validateFoodEntryRequest(ctx, value, fields...)
	case *models.FoodEntryRequest:
		return v.validateFoodEntryRequest(ctx, *value, fields...)

	case models.FoodEntry:
		return v.validateFoodEntry(ctx, value, fields...)
	case *models.FoodEntry:
		return v.validateFoodEntry(ctx, *value, fields...)

	case models.DailyIntakeGoals:
		return v.validateGoals(value, fields...)
	case *models.DailyIntakeGoals:
		return v.validateGoals(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.DateRange:
		return v.validateDateRange(value, fields...)
	case *models.DateRange:
		return v.validateDateRange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validNutrients(calories, protein, carbs, fat int) bool {
	return calories >= 0 && protein >= 0 && carbs >= 0 && fat >= 0
}

// validateFoodEntryRequest checks a create/update body.
//
// Default fields: nutrients, description, image data. An empty ImageData is
// valid; a non-empty one must be a decodable image data URI.
func (v *FoodEntryValidator) validateFoodEntryRequest(_ context.Context, req models.FoodEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNutrients, FieldDescription, FieldImageData}
	}

	for _, f := range fields {
		switch f {
		case FieldNutrients:
			if !validNutrients(req.Calories, req.Protein, req.Carbs, req.Fat) {
				return ErrNegativeNutrient
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldImageData:
			if req.ImageData == "" {
				continue
			}
			if !imaging.IsImageDataURI(req.ImageData) {
				return ErrInvalidImageData
			}
			if _, _, err := imaging.DecodeDataURI(req.ImageData); err != nil {
				return ErrInvalidImageData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFoodEntry checks an entry about to be written. Default fields:
// user id, nutrients, description. FieldEntryID is opt-in for updates.
func (v *FoodEntryValidator) validateFoodEntry(_ context.Context, entry models.FoodEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNutrients, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if entry.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntryID:
			if entry.ID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldNutrients:
			if !validNutrients(entry.Calories, entry.Protein, entry.Carbs, entry.Fat) {
				return ErrNegativeNutrient
			}
		case FieldDescription:
			if utf8.RuneCountInString(entry.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FoodEntryValidator) validateGoals(goals models.DailyIntakeGoals, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGoals}
	}

	for _, f := range fields {
		switch f {
		case FieldGoals:
			if goals.Calories <= 0 || goals.Protein <= 0 || goals.Carbs <= 0 || goals.Fat <= 0 {
				return ErrNonPositiveGoal
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FoodEntryValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FoodEntryValidator) validateDateRange(dateRange models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldDateRange:
			if dateRange.End().Before(dateRange.Start()) || dateRange.End().Equal(dateRange.Start()) {
				return ErrInvalidDateRange
			}
			if dateRange.Days() > MaxRangeDays {
				return ErrDateRangeTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
