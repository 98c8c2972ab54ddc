// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/powercalc/powerd/internal/pkg/build"
	"github.com/powercalc/powerd/internal/pkg/cache"
	"github.com/powercalc/powerd/internal/pkg/checks"
	"github.com/powercalc/powerd/internal/pkg/config"
	"github.com/powercalc/powerd/internal/pkg/logger"
	"github.com/powercalc/powerd/internal/pkg/signal"
)

func installSignalHandler() context.Context {
	rootCtx := context.Background()
	return signal.HandleInterrupt(rootCtx)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFile(cfgPath)
}

// NewCommand returns the root powerd command.
func NewCommand(version, commit, buildTime string) *cobra.Command {
	bi := build.Info{
		Version:   version,
		Commit:    commit,
		BuildTime: build.Time(buildTime),
	}

	cmd := &cobra.Command{
		Use:   "powerd",
		Short: "powerd serves the power calculator and runs its self checks",
	}
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration for powerd")
	cmd.AddCommand(
		newRunCommand(bi),
		newCheckCommand(bi),
	)
	return cmd
}

func newRunCommand(bi build.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the power calculator HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			l, err := logger.Init(cfg, build.ServiceName)
			if err != nil {
				return err
			}

			ctx := installSignalHandler()

			c, err := cache.New(cfg.Cache)
			if err != nil {
				return err
			}

			go handleReload(ctx, cfgPath, l, c)

			log.Info().
				Str("version", bi.Version).
				Str("commit", bi.Commit).
				Msg("starting")

			return NewPowerServer(cfg, c, bi).Run(ctx)
		},
	}
}

func newCheckCommand(bi build.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the validator battery; exit non-zero if any check fails",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := logger.Init(cfg, build.ServiceName); err != nil {
				return err
			}

			ctx := installSignalHandler()

			rep := checks.NewRunner(checks.Battery()).Run(ctx)

			out := cmd.OutOrStdout()
			for _, res := range rep.Results {
				if res.Ok() {
					fmt.Fprintf(out, "ok   %s\n", res.Name)
					continue
				}
				fmt.Fprintf(out, "FAIL %s\n\t%v\n", res.Name, res.Err)
			}
			fmt.Fprintf(out, "%d checks, %d failed (run %s)\n", len(rep.Results), rep.Failed, rep.ID)

			if !rep.Ok() {
				return fmt.Errorf("%d of %d checks failed", rep.Failed, len(rep.Results))
			}
			return nil
		},
	}
}
