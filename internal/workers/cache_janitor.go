// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
)

// CacheJanitor evicts expired inference results from the in-memory cache
// every interval. Without it an entry that is never read again would stay
// in memory until the process exits.
type CacheJanitor struct {
	cache    ExpiringCache
	interval time.Duration
	logger   *logger.Logger
}

func NewCacheJanitor(cache ExpiringCache, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = config.DefaultCacheCleanupInterval
	}
	return &CacheJanitor{cache: cache, interval: interval, logger: logger}
}

func (j *CacheJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := j.cache.RemoveExpired(); removed > 0 {
				j.logger.Debug().Str("func", "CacheJanitor.Run").Int("removed", removed).Msg("expired cache entries evicted")
			}
		}
	}
}
