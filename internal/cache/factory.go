// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"time"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/config"
)

// New builds the cache backend from configuration: Redis when a URL is
// configured, in-process memory otherwise.
func New(cfg *config.Config) (Cache, error) {
	ttl := time.Duration(cfg.CacheTTL) * time.Second

	if cfg.UseRedisCache() {
		c, err := NewRedisCache(RedisCacheOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.CachePrefix,
			DefaultTTL: ttl,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting redis cache: %w", err)
		}
		return c, nil
	}

	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      ttl,
		MaxEntries:      cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}), nil
}
