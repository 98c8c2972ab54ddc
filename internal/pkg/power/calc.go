// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package power

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrNotNumeric indicates an input that does not support exponentiation.
var ErrNotNumeric = errors.New("not numeric")

// Calc computes the result triple for a dynamically typed value.
//
// The static API above cannot be handed a non-numeric value; callers
// holding untyped input go through Calc instead, which surfaces the
// type mismatch as ErrNotNumeric at the point the powers would be
// computed. No result is produced on failure.
func Calc(v interface{}) (Triple, error) {
	n, err := toInt64(v)
	if err != nil {
		return Triple{}, err
	}
	return Compute(n), nil
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d does not fit a signed integer", ErrNotNumeric, n)
		}
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d does not fit a signed integer", ErrNotNumeric, n)
		}
		return int64(n), nil
	}
	return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
}
