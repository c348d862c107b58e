package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNegativeNutrient   = errors.New("nutrient values must not be negative")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidImageData   = errors.New("image data is not a valid image data URI")
	ErrNonPositiveGoal    = errors.New("daily intake goals must be positive")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidEntryID     = errors.New("invalid food entry ID")
	ErrEmptyLogin         = errors.New("login is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidDateRange   = errors.New("date range end is before its start")
	ErrDateRangeTooLong   = errors.New("date range is too long")
)
