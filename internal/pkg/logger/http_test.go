// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

//go:build !integration
// +build !integration

package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMiddlewareRequestID(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(HeaderRequestID)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/status", nil))

		require.NotEmpty(t, seen)
		require.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("passthrough", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/status", nil)
		r.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, "abc-123", seen)
		require.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestMiddlewareStartTime(t *testing.T) {
	var ts time.Time
	var ok bool
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts, ok = CtxStartTime(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	before := time.Now().UTC()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/power/2", nil))

	require.True(t, ok, "start time should be stamped on the request context")
	require.False(t, ts.Before(before))
	require.False(t, ts.After(time.Now().UTC()))
}

func TestCtxStartTimeMissing(t *testing.T) {
	_, ok := CtxStartTime(context.Background())
	require.False(t, ok)
}

func TestResponseCounter(t *testing.T) {
	w := httptest.NewRecorder()
	rc := NewResponseCounter(w)

	n, err := rc.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, uint64(5), rc.Count())
	require.Equal(t, http.StatusOK, rc.statusCode)

	// Second WriteHeader must not clobber the recorded code.
	rc.WriteHeader(http.StatusTeapot)
	require.Equal(t, http.StatusOK, rc.statusCode)
}

func TestReaderCounter(t *testing.T) {
	rd := NewReaderCounter(httptest.NewRequest("POST", "/", strings.NewReader("12345678")).Body)

	buf := make([]byte, 32)
	for {
		if _, err := rd.Read(buf); err != nil {
			break
		}
	}
	require.Equal(t, uint64(8), rd.Count())
}

func TestStripHTTP(t *testing.T) {
	require.Equal(t, "1.1", stripHTTP("HTTP/1.1"))
	require.Equal(t, "2.0", stripHTTP("HTTP/2.0"))
	require.Equal(t, "1.0", stripHTTP("HTTP/1.0"))
	require.Equal(t, "spdy", stripHTTP("spdy"))
}
