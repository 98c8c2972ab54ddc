// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logging is the logging configuration
type Logging struct {
	Destination string `config:"dest"`
	Level       string `config:"level"`
	Pretty      bool   `config:"pretty"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Logging) InitDefaults() {
	c.Destination = "stdout"
	c.Level = "info"
}

// Validate ensures that the configuration is valid.
func (c *Logging) Validate() error {
	if _, err := strToDest(c.Destination); err != nil {
		return err
	}
	if _, err := strToLevel(c.Level); err != nil {
		return err
	}
	return nil
}

// DestinationWriter returns configured destination io.Writer
func (c *Logging) DestinationWriter() io.Writer {
	w, _ := strToDest(c.Destination)
	return w
}

// LogLevel returns configured zerolog.Level
func (c *Logging) LogLevel() zerolog.Level {
	l, _ := strToLevel(c.Level)
	return l
}

func strToDest(s string) (io.Writer, error) {
	w := os.Stdout

	s = strings.ToLower(s)
	switch strings.TrimSpace(s) {
	case "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		return w, fmt.Errorf("invalid dest ; must be one of: stdout, stderr")
	}

	return w, nil
}

func strToLevel(s string) (zerolog.Level, error) {
	l := zerolog.DebugLevel

	s = strings.ToLower(s)
	switch strings.TrimSpace(s) {
	case "trace":
		l = zerolog.TraceLevel
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "warn":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	default:
		return l, fmt.Errorf("invalid log level; must be one of: trace, debug, info, warn, error")
	}

	return l, nil
}
