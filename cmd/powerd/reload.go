// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/powercalc/powerd/internal/pkg/cache"
	"github.com/powercalc/powerd/internal/pkg/config"
	"github.com/powercalc/powerd/internal/pkg/logger"
)

// handleReload reapplies the configuration file on SIGHUP until ctx is
// cancelled. Only the log level and the cache are reloadable; server
// bind and timeouts need a restart.
func handleReload(ctx context.Context, cfgPath string, l *logger.Logger, c cache.Cache) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP)
	defer signal.Stop(sigs)

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("reload handler close")
			return
		case <-sigs:
			if err := reloadConfig(cfgPath, l, c); err != nil {
				log.Error().Err(err).Str("path", cfgPath).Msg("fail reload config")
			}
		}
	}
}

func reloadConfig(cfgPath string, l *logger.Logger, c cache.Cache) error {
	if cfgPath == "" {
		log.Debug().Msg("no config file; reload skipped")
		return nil
	}

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return err
	}
	if err := l.Reload(cfg); err != nil {
		return err
	}
	if err := c.Reconfigure(cfg.Cache); err != nil {
		return err
	}

	log.Info().Str("path", cfgPath).Msg("configuration reloaded")
	return nil
}
