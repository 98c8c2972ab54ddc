// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

//go:build !integration
// +build !integration

package limit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/powercalc/powerd/internal/pkg/config"
)

func TestLimiterUnconfigured(t *testing.T) {
	l := newLimiter(nil)

	lf, err := l.acquire()
	require.NoError(t, err)
	lf()
}

func TestLimiterRate(t *testing.T) {
	l := newLimiter(&config.Limit{Interval: time.Hour, Burst: 1})

	lf, err := l.acquire()
	require.NoError(t, err)
	lf()

	_, err = l.acquire()
	require.ErrorIs(t, err, ErrRateLimit)
}

func TestLimiterMax(t *testing.T) {
	l := newLimiter(&config.Limit{Max: 1})

	lf, err := l.acquire()
	require.NoError(t, err)

	_, err = l.acquire()
	require.ErrorIs(t, err, ErrMaxLimit)

	// Released capacity can be reacquired.
	lf()
	lf, err = l.acquire()
	require.NoError(t, err)
	lf()
}

func TestWrap(t *testing.T) {
	l := newLimiter(&config.Limit{Interval: time.Hour, Burst: 1})

	var handled int
	h := l.wrap(zerolog.Nop(), zerolog.WarnLevel, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		handled++
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/api/power/2", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, handled)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/api/power/2", nil), nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, 1, handled)
	require.Contains(t, w.Body.String(), "RateLimit")
}

func TestNewHTTPWrapper(t *testing.T) {
	cfg := &config.ServerLimits{}
	cfg.InitDefaults()

	wrapper := NewHTTPWrapper("localhost:8220", cfg)
	require.NotNil(t, wrapper.WrapPower(func(http.ResponseWriter, *http.Request, httprouter.Params) {}))
	require.NotNil(t, wrapper.WrapStatus(func(http.ResponseWriter, *http.Request, httprouter.Params) {}))
}
