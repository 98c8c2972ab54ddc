// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package checks

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of one check.
type Result struct {
	Name string
	Err  error
}

// Ok is true when the check passed.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Report aggregates one full run of a battery.
type Report struct {
	ID      string
	Results []Result
	Failed  int
}

// Ok is true when every check in the run passed.
func (r Report) Ok() bool {
	return r.Failed == 0
}

// Runner executes a battery sequentially. A failing check is recorded
// with its diagnostics and never stops the rest of the battery.
type Runner struct {
	checks []Check
}

// NewRunner creates a runner over the given battery.
func NewRunner(checks []Check) *Runner {
	return &Runner{checks: checks}
}

// Run executes every check. Cancellation is honored between checks;
// checks skipped by cancellation count as failures.
func (r *Runner) Run(ctx context.Context) Report {
	rep := Report{ID: xid.New().String()}
	zlog := log.With().Str("run", rep.ID).Logger()

	for _, c := range r.checks {
		res := Result{Name: c.Name}
		if err := ctx.Err(); err != nil {
			res.Err = err
		} else {
			res.Err = c.Fn()
		}

		if res.Ok() {
			zlog.Debug().Str("check", c.Name).Msg("check pass")
		} else {
			zlog.Error().Err(res.Err).Str("check", c.Name).Msg("check fail")
			rep.Failed++
		}
		rep.Results = append(rep.Results, res)
	}

	return rep
}
