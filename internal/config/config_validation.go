// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged configuration shared by both binaries.
// Server-only requirements are checked by [StructuredConfig.ValidateServer].
func (cfg *StructuredConfig) validate() error {
	if cfg.Inference.Attempts < 1 || cfg.Inference.Backoff < 0 || cfg.Inference.CallTimeout <= 0 {
		return fmt.Errorf("%w: attempts must be >= 1 and timeouts positive", ErrInvalidInferenceConfigs)
	}

	switch cfg.Storage.Blob.Driver {
	case BlobDriverS3, BlobDriverFile:
	default:
		return fmt.Errorf("%w: unknown blob driver %q", ErrInvalidStorageConfigs, cfg.Storage.Blob.Driver)
	}

	return nil
}

// ValidateServer checks the settings the server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Blob.Driver == BlobDriverS3 && cfg.Storage.Blob.Bucket == "" {
		return fmt.Errorf("%w: bucket is required for the s3 driver", ErrInvalidStorageConfigs)
	}

	if cfg.Inference.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidInferenceConfigs)
	}

	if worst := cfg.Inference.WorstCaseDuration(); worst > cfg.Server.RequestTimeout {
		return fmt.Errorf("%w: retries may take %s, more than the %s request timeout",
			ErrInvalidInferenceConfigs, worst, cfg.Server.RequestTimeout)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
