package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Food tracking errors. Lower layers' errors stay reachable through
// errors.Is because every wrap uses %w for both sides.
var (
	// ErrValidation is returned before any network or storage call when the
	// input is rejected.
	ErrValidation = errors.New("validation failed")

	// ErrUpload is returned when the photo could not be stored. No record is
	// written in that case.
	ErrUpload = errors.New("failed to upload image")

	// ErrRepository wraps record store failures.
	ErrRepository = errors.New("failed to access food entries")

	// ErrInvalidImageURL is returned by the inference orchestrator for an
	// imageUrl that is neither an image data URI nor an http(s) URL.
	ErrInvalidImageURL = errors.New("imageUrl must be an image data URI or an http(s) URL")

	// ErrInferenceTransport wraps the last provider error of a stage whose
	// attempts were all used up.
	ErrInferenceTransport = errors.New("inference provider request failed")
)

// InferenceError is the only error type returned by [ClientInferenceService].
// Message is safe to show to the user; Err keeps the cause.
type InferenceError struct {
	Message string
	Err     error
}

func (e *InferenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
