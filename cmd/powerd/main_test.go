// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

//go:build !integration
// +build !integration

package powerd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	cmd := NewCommand("test", "", "")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check"})

	require.NoError(t, cmd.Execute())

	s := out.String()
	require.Contains(t, s, "ok   square(2)=4")
	require.Contains(t, s, "ok   square(3)=9")
	require.Contains(t, s, "ok   cube(2)=8")
	require.Contains(t, s, "ok   cube(3)=27")
	require.Contains(t, s, "ok   fifth_power(2)=32")
	require.Contains(t, s, "ok   fifth_power(3)=243")
	require.Contains(t, s, "ok   square(non-numeric) rejected")
	require.Contains(t, s, "7 checks, 0 failed")
	require.NotContains(t, s, "FAIL")
}

func TestCheckCommandBadConfig(t *testing.T) {
	cmd := NewCommand("test", "", "")
	cmd.SetArgs([]string{"check", "--config", "testdata/does-not-exist.yml"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	require.Error(t, cmd.Execute())
}
