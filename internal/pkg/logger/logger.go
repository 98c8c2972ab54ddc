// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package logger provides logging for powerd.
// Currently it wraps rs/zerolog
package logger

import (
	"sync"

	"go.elastic.co/ecszerolog"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/powercalc/powerd/internal/pkg/config"
)

var once sync.Once
var gLogger *Logger

// Logger for powerd.
//
// Logger manages the zerolog/log.Logger variable.
// An instance with TraceLevel is always created and log level is
// controlled through zerolog.GlobalLevel.
type Logger struct {
	cfg  *config.Config
	name string
}

// Init initializes the global logger.
func Init(cfg *config.Config, svcName string) (*Logger, error) {
	once.Do(func() {
		zerolog.SetGlobalLevel(cfg.Logging.LogLevel())
		log.Logger = configure(cfg, svcName)
		gLogger = &Logger{
			cfg:  cfg,
			name: svcName,
		}
	})
	return gLogger, nil
}

// Reload reloads the logger configuration.
// Only the global log level is reloadable at runtime.
func (l *Logger) Reload(cfg *config.Config) error {
	if err := cfg.Logging.Validate(); err != nil {
		return err
	}
	if cfg.Logging.LogLevel() != zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(cfg.Logging.LogLevel())
	}
	l.cfg = cfg
	return nil
}

func configure(cfg *config.Config, name string) zerolog.Logger {
	out := cfg.Logging.DestinationWriter()
	if cfg.Logging.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	}
	return ecszerolog.New(out).With().Str(ECSServiceName, name).Logger()
}
