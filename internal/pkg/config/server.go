// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ServerTimeouts is the configuration for the server timeouts
type ServerTimeouts struct {
	Read  time.Duration `config:"read"`
	Write time.Duration `config:"write"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *ServerTimeouts) InitDefaults() {
	c.Read = 5 * time.Second
	c.Write = 30 * time.Second
}

// Limit is a rate limit for one API endpoint.
type Limit struct {
	Interval time.Duration `config:"interval"`
	Burst    int           `config:"burst"`
	Max      int64         `config:"max"`
}

// ServerLimits holds the limits for each API endpoint.
type ServerLimits struct {
	PowerLimit  Limit `config:"power_limit"`
	StatusLimit Limit `config:"status_limit"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *ServerLimits) InitDefaults() {
	c.PowerLimit = Limit{
		Interval: time.Millisecond,
		Burst:    100,
		Max:      200,
	}
	c.StatusLimit = Limit{
		Interval: 5 * time.Millisecond,
		Burst:    25,
		Max:      50,
	}
}

// Server is the configuration for the server
type Server struct {
	Host              string         `config:"host"`
	Port              uint16         `config:"port"`
	MaxHeaderByteSize int            `config:"max_header_byte_size"`
	Timeouts          ServerTimeouts `config:"timeouts"`
	Limits            ServerLimits   `config:"limits"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Server) InitDefaults() {
	c.Host = "0.0.0.0"
	c.Port = 8220
	c.MaxHeaderByteSize = 8192
	c.Timeouts.InitDefaults()
	c.Limits.InitDefaults()
}

// Validate ensures that the configuration is valid.
func (c *Server) Validate() error {
	if c.Host == "" {
		return errors.New("host must not be empty")
	}
	return nil
}

// BindAddress returns the binding address for the HTTP server.
func (c *Server) BindAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
