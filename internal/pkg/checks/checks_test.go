// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

//go:build !integration
// +build !integration

package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattery(t *testing.T) {
	battery := Battery()
	require.Len(t, battery, 7)

	for _, c := range battery {
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, c.Fn())
		})
	}
}

func TestBatteryOrderIndependent(t *testing.T) {
	battery := Battery()

	// Reverse order; each check must still pass on its own.
	for i := len(battery) - 1; i >= 0; i-- {
		assert.NoError(t, battery[i].Fn(), battery[i].Name)
	}
}

func TestRunnerAllPass(t *testing.T) {
	rep := NewRunner(Battery()).Run(context.Background())

	require.True(t, rep.Ok())
	require.NotEmpty(t, rep.ID)
	require.Len(t, rep.Results, 7)
	require.Zero(t, rep.Failed)
	for _, res := range rep.Results {
		assert.True(t, res.Ok(), res.Name)
	}
}

func TestRunnerFailureContinues(t *testing.T) {
	ran := false
	battery := []Check{
		expectPower("square", func(n int64) int64 { return n + 1 }, 2, 4),
		{
			Name: "sentinel",
			Fn: func() error {
				ran = true
				return nil
			},
		},
	}

	rep := NewRunner(battery).Run(context.Background())

	require.False(t, rep.Ok())
	require.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Results, 2)
	assert.Error(t, rep.Results[0].Err)
	assert.Contains(t, rep.Results[0].Err.Error(), "mismatch")
	assert.True(t, ran, "later check should still run after a failure")
	assert.NoError(t, rep.Results[1].Err)
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := NewRunner(Battery()).Run(ctx)

	require.False(t, rep.Ok())
	require.Equal(t, len(rep.Results), rep.Failed)
}

func TestRunnerUniqueRunIDs(t *testing.T) {
	r := NewRunner(nil)
	a := r.Run(context.Background())
	b := r.Run(context.Background())
	require.NotEqual(t, a.ID, b.ID)
}
