// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/cache"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/MKhiriev/go-nutri-track/internal/inference"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/models"
)

const inferenceCacheKeyPrefix = "inference:"

// inferenceService runs the two-stage image analysis: a short free-text
// description followed by a strict JSON nutrient estimate. Each stage is
// retried on its own; the nutrient text is parsed once after its retries.
type inferenceService struct {
	provider inference.Provider
	cache    cache.Cache

	policy               utils.RetryPolicy
	descriptionMaxTokens int
	nutritionMaxTokens   int
	cacheTTL             time.Duration

	logger *logger.Logger
}

// NewInferenceService builds the orchestrator. resultCache may be nil, in
// which case every request reaches the provider.
func NewInferenceService(provider inference.Provider, resultCache cache.Cache, cfg config.Inference, logger *logger.Logger) InferenceService {
	return &inferenceService{
		provider:             provider,
		cache:                resultCache,
		policy:               utils.RetryPolicy{Attempts: cfg.Attempts, Backoff: cfg.Backoff},
		descriptionMaxTokens: cfg.DescriptionMaxTokens,
		nutritionMaxTokens:   cfg.NutritionMaxTokens,
		cacheTTL:             cfg.CacheTTL,
		logger:               logger,
	}
}

func (s *inferenceService) InferNutrients(ctx context.Context, userID int64, req models.NutrientInferenceRequest) (models.InferenceResult, error) {
	log := logger.FromContext(ctx)

	imageURL := strings.TrimSpace(req.ImageURL)
	if !isSupportedImageURL(imageURL) {
		log.Warn().Str("func", "inferenceService.InferNutrients").Int64("user_id", userID).Msg("unsupported imageUrl")
		return models.InferenceResult{}, ErrInvalidImageURL
	}

	// the content behind a remote URL may change, so only inline images are cached
	cacheable := imaging.IsImageDataURI(imageURL)
	key := inferenceCacheKeyPrefix + utils.HashString(imageURL)
	if cacheable {
		if result, ok := s.cached(ctx, key); ok {
			log.Debug().Str("func", "inferenceService.InferNutrients").Int64("user_id", userID).Msg("inference cache hit")
			return result, nil
		}
	}

	description, err := utils.Retry(ctx, s.stagePolicy(ctx, "description"), func(ctx context.Context) (string, error) {
		return s.provider.Complete(ctx, inference.DescriptionRequest(imageURL, s.descriptionMaxTokens))
	})
	if err != nil {
		log.Err(err).Str("func", "inferenceService.InferNutrients").Int64("user_id", userID).Msg("description stage failed")
		return models.InferenceResult{}, stageError(ctx, "description", err)
	}

	raw, err := utils.Retry(ctx, s.stagePolicy(ctx, "nutrition"), func(ctx context.Context) (string, error) {
		return s.provider.Complete(ctx, inference.NutritionRequest(imageURL, s.nutritionMaxTokens))
	})
	if err != nil {
		log.Err(err).Str("func", "inferenceService.InferNutrients").Int64("user_id", userID).Msg("nutrition stage failed")
		return models.InferenceResult{}, stageError(ctx, "nutrition", err)
	}

	result, err := inference.ParseNutrients(raw)
	if err != nil {
		log.Err(err).Str("func", "inferenceService.InferNutrients").Int64("user_id", userID).Msg("nutrition response rejected")
		return models.InferenceResult{}, err
	}
	result.Description = strings.TrimSpace(description)

	if cacheable {
		s.store(ctx, key, result)
	}

	return result, nil
}

func (s *inferenceService) stagePolicy(ctx context.Context, stage string) utils.RetryPolicy {
	policy := s.policy
	policy.OnRetry = func(attempt int, err error) {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "inferenceService.InferNutrients").
			Str("stage", stage).
			Int("attempt", attempt).
			Msg("provider call failed, retrying")
	}
	return policy
}

// stageError keeps cancellation of the caller distinguishable from provider
// failures. A per-call timeout is a provider failure.
func stageError(ctx context.Context, stage string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s stage: %w", stage, err)
	}
	return fmt.Errorf("%w: %s stage: %w", ErrInferenceTransport, stage, err)
}

func (s *inferenceService) cached(ctx context.Context, key string) (models.InferenceResult, bool) {
	if s.cache == nil {
		return models.InferenceResult{}, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "inferenceService.cached").Msg("cache lookup failed")
		}
		return models.InferenceResult{}, false
	}

	var result models.InferenceResult
	if err = json.Unmarshal(data, &result); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "inferenceService.cached").Msg("dropping unreadable cache entry")
		_ = s.cache.Delete(ctx, key)
		return models.InferenceResult{}, false
	}
	return result, true
}

func (s *inferenceService) store(ctx context.Context, key string, result models.InferenceResult) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err = s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "inferenceService.store").Msg("cache write failed")
	}
}

// isSupportedImageURL accepts base64 image data URIs and absolute http(s) URLs.
func isSupportedImageURL(imageURL string) bool {
	if imaging.IsImageDataURI(imageURL) {
		return true
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
