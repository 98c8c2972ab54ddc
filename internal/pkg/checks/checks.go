// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package checks implements the validator: a fixed battery of assertions
// over the power calculator. Checks share no mutable state and are
// order independent.
package checks

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/powercalc/powerd/internal/pkg/power"
)

// Check is one named assertion against a literal expected value.
type Check struct {
	Name string
	Fn   func() error
}

func expectPower(op string, fn func(int64) int64, arg, want int64) Check {
	return Check{
		Name: fmt.Sprintf("%s(%d)=%d", op, arg, want),
		Fn: func() error {
			got := fn(arg)
			if diff := cmp.Diff(want, got); diff != "" {
				return errors.Errorf("%s(%d) mismatch (-want +got):\n%s", op, arg, diff)
			}
			return nil
		},
	}
}

// Battery returns the full battery of calculator checks.
func Battery() []Check {
	return []Check{
		expectPower("square", power.Square, 2, 4),
		expectPower("square", power.Square, 3, 9),
		expectPower("cube", power.Cube, 2, 8),
		expectPower("cube", power.Cube, 3, 27),
		expectPower("fifth_power", power.FifthPower, 2, 32),
		expectPower("fifth_power", power.FifthPower, 3, 243),
		{
			Name: "square(non-numeric) rejected",
			Fn: func() error {
				res, err := power.Calc("two")
				if !errors.Is(err, power.ErrNotNumeric) {
					return errors.Errorf("expected %v, got err=%v res=%v", power.ErrNotNumeric, err, res)
				}
				return nil
			},
		},
	}
}
