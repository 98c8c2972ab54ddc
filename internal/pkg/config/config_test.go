// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

//go:build !integration
// +build !integration

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, uint16(8220), cfg.Server.Port)
	require.Equal(t, "0.0.0.0:8220", cfg.Server.BindAddress())
	require.Equal(t, 5*time.Second, cfg.Server.Timeouts.Read)
	require.Equal(t, zerolog.InfoLevel, cfg.Logging.LogLevel())
	require.Equal(t, int64(defaultCacheNumCounters), cfg.Cache.NumCounters)
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "powerd.yml"))
	require.NoError(t, err)

	want := Default()
	want.Server.Host = "127.0.0.1"
	want.Server.Port = 9200
	want.Server.Timeouts.Read = 10 * time.Second
	want.Server.Timeouts.Write = time.Minute
	want.Logging.Level = "debug"
	want.Logging.Pretty = true
	want.Cache.NumCounters = 2000
	want.Cache.MaxCost = 65536
	want.Cache.TTL = 5 * time.Minute

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.yml"))
	require.Error(t, err)
}

func TestLoggingValidate(t *testing.T) {
	tests := []struct {
		name    string
		logging Logging
		wantErr bool
	}{
		{"defaults", Logging{Destination: "stdout", Level: "info"}, false},
		{"stderr", Logging{Destination: "stderr", Level: "trace"}, false},
		{"bad level", Logging{Destination: "stdout", Level: "verbose"}, true},
		{"bad dest", Logging{Destination: "file", Level: "info"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.logging.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestServerValidate(t *testing.T) {
	s := Server{}
	s.InitDefaults()
	require.NoError(t, s.Validate())

	s.Host = ""
	require.Error(t, s.Validate())
}
