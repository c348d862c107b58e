package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are strings such as "30s".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Driver        string `json:"driver"`
			Bucket        string `json:"bucket"`
			Region        string `json:"region"`
			Endpoint      string `json:"endpoint"`
			AccessKey     string `json:"access_key"`
			SecretKey     string `json:"secret_key"`
			PublicBaseURL string `json:"public_base_url"`
			Dir           string `json:"dir"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Cache struct {
		RedisAddress  string `json:"redis_address"`
		RedisPassword string `json:"redis_password"`
		RedisDB       int    `json:"redis_db"`
		KeyPrefix     string `json:"key_prefix"`
	} `json:"cache,omitempty"`

	Inference struct {
		APIKey               string   `json:"api_key"`
		BaseURL              string   `json:"base_url"`
		Model                string   `json:"model"`
		CallTimeout          Duration `json:"call_timeout"`
		Attempts             int      `json:"attempts"`
		Backoff              Duration `json:"backoff"`
		DescriptionMaxTokens int      `json:"description_max_tokens"`
		NutritionMaxTokens   int      `json:"nutrition_max_tokens"`
		CacheTTL             Duration `json:"cache_ttl"`
	} `json:"inference,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval      Duration `json:"refresh_interval"`
		CacheCleanupInterval Duration `json:"cache_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			MaxBodyBytes:   j.Server.MaxBodyBytes,
			AllowedOrigins: j.Server.AllowedOrigins,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Blob: Blob{
				Driver:        j.Storage.Blob.Driver,
				Bucket:        j.Storage.Blob.Bucket,
				Region:        j.Storage.Blob.Region,
				Endpoint:      j.Storage.Blob.Endpoint,
				AccessKey:     j.Storage.Blob.AccessKey,
				SecretKey:     j.Storage.Blob.SecretKey,
				PublicBaseURL: j.Storage.Blob.PublicBaseURL,
				Dir:           j.Storage.Blob.Dir,
			},
		},
		Cache: Cache{
			RedisAddress:  j.Cache.RedisAddress,
			RedisPassword: j.Cache.RedisPassword,
			RedisDB:       j.Cache.RedisDB,
			KeyPrefix:     j.Cache.KeyPrefix,
		},
		Inference: Inference{
			APIKey:               j.Inference.APIKey,
			BaseURL:              j.Inference.BaseURL,
			Model:                j.Inference.Model,
			CallTimeout:          time.Duration(j.Inference.CallTimeout),
			Attempts:             j.Inference.Attempts,
			Backoff:              time.Duration(j.Inference.Backoff),
			DescriptionMaxTokens: j.Inference.DescriptionMaxTokens,
			NutritionMaxTokens:   j.Inference.NutritionMaxTokens,
			CacheTTL:             time.Duration(j.Inference.CacheTTL),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval:      time.Duration(j.Workers.RefreshInterval),
			CacheCleanupInterval: time.Duration(j.Workers.CacheCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration and unmarshals from strings like "1h" or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
