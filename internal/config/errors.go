package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates missing client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates missing or unsupported storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidInferenceConfigs indicates unusable provider settings.
	ErrInvalidInferenceConfigs = errors.New("invalid inference configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
