// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import "time"

const (
	defaultCacheNumCounters = 10000
	defaultCacheMaxCost     = 1024 * 1024
	defaultCacheTTL         = 15 * time.Minute
)

// Cache is the configuration for the result cache.
type Cache struct {
	NumCounters int64         `config:"num_counters"`
	MaxCost     int64         `config:"max_cost"`
	TTL         time.Duration `config:"ttl"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Cache) InitDefaults() {
	c.NumCounters = defaultCacheNumCounters
	c.MaxCost = defaultCacheMaxCost
	c.TTL = defaultCacheTTL
}
