// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package config loads the powerd configuration from a YAML file.
package config

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
	"github.com/pkg/errors"
)

// DefaultOptions defaults options used to read the configuration
var DefaultOptions = []ucfg.Option{
	ucfg.PathSep("."),
	ucfg.ResolveEnv,
	ucfg.VarExp,
}

// Config is the global configuration.
type Config struct {
	Server  Server  `config:"server"`
	Logging Logging `config:"logging"`
	Cache   Cache   `config:"cache"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Config) InitDefaults() {
	c.Server.InitDefaults()
	c.Logging.InitDefaults()
	c.Cache.InitDefaults()
}

// Validate ensures that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return errors.Wrap(err, "server")
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "logging")
	}
	return nil
}

// Default returns the default configuration, used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.InitDefaults()
	return cfg
}

// LoadFile takes a path, loads the file and returns a new configuration.
func LoadFile(path string) (*Config, error) {
	c, err := yaml.NewConfigWithFile(path, DefaultOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	cfg := Default()
	if err := c.Unpack(cfg, DefaultOptions...); err != nil {
		return nil, errors.Wrap(err, "unpack config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
