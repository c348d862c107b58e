package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultRequestTimeout       = 90 * time.Second
	DefaultMaxBodyBytes         = 10 << 20
	DefaultTokenIssuer          = "nutri-track"
	DefaultTokenDuration        = 24 * time.Hour
	DefaultBlobDriver           = BlobDriverFile
	DefaultBlobDir              = "./data/food-images"
	DefaultBlobRegion           = "us-east-1"
	DefaultCacheKeyPrefix       = "nutri-track"
	DefaultInferenceBaseURL     = "https://api.openai.com/v1"
	DefaultInferenceModel       = "gpt-4o-mini"
	DefaultCallTimeout          = 12 * time.Second
	DefaultAttempts             = 3
	DefaultBackoff              = time.Second
	DefaultDescriptionMaxTokens = 40
	DefaultNutritionMaxTokens   = 200
	DefaultCacheTTL             = time.Hour
	DefaultAdapterAddress       = "http://localhost:8080"
	DefaultAdapterTimeout       = 2 * time.Minute
	DefaultRefreshInterval      = 5 * time.Minute
	DefaultCacheCleanupInterval = time.Minute
)

// applyDefaults fills zero-valued settings that have a safe default.
// Secrets and the database DSN have none.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, DefaultTokenDuration)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.MaxBodyBytes, DefaultMaxBodyBytes)

	setDefault(&cfg.Storage.Blob.Driver, DefaultBlobDriver)
	setDefault(&cfg.Storage.Blob.Dir, DefaultBlobDir)
	setDefault(&cfg.Storage.Blob.Region, DefaultBlobRegion)

	setDefault(&cfg.Cache.KeyPrefix, DefaultCacheKeyPrefix)

	setDefault(&cfg.Inference.BaseURL, DefaultInferenceBaseURL)
	setDefault(&cfg.Inference.Model, DefaultInferenceModel)
	setDefault(&cfg.Inference.CallTimeout, DefaultCallTimeout)
	setDefault(&cfg.Inference.Attempts, DefaultAttempts)
	setDefault(&cfg.Inference.Backoff, DefaultBackoff)
	setDefault(&cfg.Inference.DescriptionMaxTokens, DefaultDescriptionMaxTokens)
	setDefault(&cfg.Inference.NutritionMaxTokens, DefaultNutritionMaxTokens)
	setDefault(&cfg.Inference.CacheTTL, DefaultCacheTTL)

	setDefault(&cfg.Adapter.HTTPAddress, DefaultAdapterAddress)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultAdapterTimeout)

	setDefault(&cfg.Workers.RefreshInterval, DefaultRefreshInterval)
	setDefault(&cfg.Workers.CacheCleanupInterval, DefaultCacheCleanupInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
