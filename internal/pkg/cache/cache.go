// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package cache implements an in-memory cache of computed result triples.
package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/powercalc/powerd/internal/pkg/config"
	"github.com/powercalc/powerd/internal/pkg/power"
)

// Each entry is one Triple; four int64 fields.
const costTriple = 32

type Cache interface {
	Reconfigure(config.Cache) error

	SetTriple(power.Triple)
	GetTriple(n int64) (power.Triple, bool)
}

// Cacher is the backing store.
type Cacher interface {
	Get(key interface{}) (interface{}, bool)
	SetWithTTL(key, value interface{}, cost int64, ttl time.Duration) bool
	Close()
}

type CacheT struct {
	cache Cacher
	cfg   config.Cache
	mut   sync.RWMutex
}

// New creates a new cache.
func New(cfg config.Cache) (*CacheT, error) {
	cache, err := newCache(cfg)
	if err != nil {
		return nil, err
	}

	c := CacheT{
		cache: cache,
		cfg:   cfg,
	}

	return &c, nil
}

// Reconfigure will drop the cache and create a new one with the given config.
func (c *CacheT) Reconfigure(cfg config.Cache) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	cache, err := newCache(cfg)
	if err != nil {
		return err
	}

	// Close down previous cache
	c.cache.Close()

	// And assign new one
	c.cfg = cfg
	c.cache = cache
	return nil
}

// SetTriple caches a computed triple keyed by its input.
func (c *CacheT) SetTriple(t power.Triple) {
	c.mut.RLock()
	defer c.mut.RUnlock()

	ok := c.cache.SetWithTTL(t.Input, t, costTriple, c.cfg.TTL)
	log.Trace().
		Int64("n", t.Input).
		Bool("cached", ok).
		Dur("ttl", c.cfg.TTL).
		Msg("cache triple")
}

// GetTriple returns the cached triple for n.
func (c *CacheT) GetTriple(n int64) (power.Triple, bool) {
	c.mut.RLock()
	defer c.mut.RUnlock()

	if v, ok := c.cache.Get(n); ok {
		log.Trace().Int64("n", n).Msg("hit cache triple")
		if t, ok := v.(power.Triple); ok {
			return t, true
		}
	}
	return power.Triple{}, false
}
