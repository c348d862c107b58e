// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of nutri-track. It is
// populated by merging a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_"`
	Server    Server    `envPrefix:"SERVER_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Cache     Cache     `envPrefix:"CACHE_"`
	Inference Inference `envPrefix:"INFERENCE_"`
	Adapter   Adapter   `envPrefix:"ADAPTER_"`
	Workers   Workers   `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and versioning settings.
type App struct {
	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the token lifetime (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes limits request bodies (photos arrive base64 encoded).
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// AllowedOrigins feeds the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the persistence backends.
type Storage struct {
	DB   DB   `envPrefix:"DB_"`
	Blob Blob `envPrefix:"BLOB_"`
}

// DB holds the relational database settings.
type DB struct {
	// DSN is the PostgreSQL connection string on the server and the SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Blob drivers.
const (
	BlobDriverS3   = "s3"
	BlobDriverFile = "file"
)

// Blob holds the object storage settings for food photos.
type Blob struct {
	// Driver is either "s3" or "file".
	// Env: STORAGE_BLOB_DRIVER
	Driver string `env:"DRIVER"`

	// Bucket is the S3 bucket name.
	// Env: STORAGE_BLOB_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the S3 region ("auto" for R2).
	// Env: STORAGE_BLOB_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the S3 endpoint (MinIO, R2). Path-style addressing
	// is used whenever it is set.
	// Env: STORAGE_BLOB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: STORAGE_BLOB_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`

	// Env: STORAGE_BLOB_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// PublicBaseURL prefixes keys to build public image URLs.
	// Env: STORAGE_BLOB_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Dir is the root directory of the file driver.
	// Env: STORAGE_BLOB_DIR
	Dir string `env:"DIR"`
}

// Cache holds the inference-result cache settings. An empty RedisAddress
// selects the in-memory cache.
type Cache struct {
	// Env: CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// Env: CACHE_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Inference holds the multimodal model provider settings.
type Inference struct {
	// Env: INFERENCE_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL of an OpenAI-compatible API (e.g. "https://api.openai.com/v1").
	// Env: INFERENCE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Env: INFERENCE_MODEL
	Model string `env:"MODEL"`

	// CallTimeout bounds every single provider call.
	// Env: INFERENCE_CALL_TIMEOUT
	CallTimeout time.Duration `env:"CALL_TIMEOUT"`

	// Attempts per stage, including the first one.
	// Env: INFERENCE_ATTEMPTS
	Attempts int `env:"ATTEMPTS"`

	// Backoff is multiplied by the attempt number between attempts.
	// Env: INFERENCE_BACKOFF
	Backoff time.Duration `env:"BACKOFF"`

	// Env: INFERENCE_DESCRIPTION_MAX_TOKENS
	DescriptionMaxTokens int `env:"DESCRIPTION_MAX_TOKENS"`

	// Env: INFERENCE_NUTRITION_MAX_TOKENS
	NutritionMaxTokens int `env:"NUTRITION_MAX_TOKENS"`

	// CacheTTL is how long a result is reused for the same image.
	// Env: INFERENCE_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// inferenceStages is the number of provider calls one inference request makes
// when nothing is retried.
const inferenceStages = 2

// WorstCaseDuration is how long one inference request takes when every
// attempt of every stage runs into CallTimeout.
func (i Inference) WorstCaseDuration() time.Duration {
	perStage := time.Duration(i.Attempts) * i.CallTimeout
	for n := 1; n < i.Attempts; n++ {
		perStage += time.Duration(n) * i.Backoff
	}
	return inferenceStages * perStage
}

// Adapter holds the client's connection settings to the server.
type Adapter struct {
	// HTTPAddress is the server base URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds client requests. Keep it above the server's
	// SERVER_REQUEST_TIMEOUT so inference requests can finish.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the client refreshes today's entries.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// CacheCleanupInterval is how often the server evicts expired in-memory
	// cache entries.
	// Env: WORKERS_CACHE_CLEANUP_INTERVAL
	CacheCleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration in the following
// order (last non-zero value wins): .env file, environment, flags, JSON file.
// Defaults fill whatever is still empty, then the result is validated.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
