// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/powercalc/powerd/internal/pkg/cache"
	"github.com/powercalc/powerd/internal/pkg/config"
	"github.com/powercalc/powerd/internal/pkg/logger"
	"github.com/powercalc/powerd/internal/pkg/power"
)

type PowerT struct {
	cache cache.Cache
}

func NewPowerT(cfg *config.Server, c cache.Cache) *PowerT {
	log.Info().
		Interface("limits", cfg.Limits.PowerLimit).
		Msg("power handler limits")

	return &PowerT{
		cache: c,
	}
}

func (rt Router) handlePower(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	// Prefer the request start time stamped by the logging middleware.
	start, ok := logger.CtxStartTime(r.Context())
	if !ok {
		start = time.Now()
	}
	raw := ps.ByName("n")

	res, err := rt.pt.computePower(raw)
	if err != nil {
		code := http.StatusBadRequest
		log.Info().Err(err).Str("n", raw).Int("code", code).Msg("fail power")
		if wErr := WriteError(w, code, "NotNumeric", "input is not an integer: "+raw); wErr != nil {
			log.Error().Err(wErr).Msg("fail writing error response")
		}
		return
	}

	data, err := json.Marshal(&res)
	if err != nil {
		code := http.StatusInternalServerError
		log.Error().Err(err).Int("code", code).Msg("fail power")
		http.Error(w, "", code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if _, err = w.Write(data); err != nil {
		if err != context.Canceled {
			log.Error().Err(err).Msg("fail power")
		}
		return
	}

	log.Trace().
		Int64("n", res.Input).
		Dur("rtt", time.Since(start)).
		Msg("power request")
}

// computePower parses the raw input and returns its result triple,
// consulting the cache first. A non-integer input surfaces as
// power.ErrNotNumeric.
func (pt *PowerT) computePower(raw string) (power.Triple, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return power.Triple{}, errors.Wrapf(power.ErrNotNumeric, "parse %q", raw)
	}

	if t, ok := pt.cache.GetTriple(n); ok {
		return t, nil
	}

	t := power.Compute(n)
	pt.cache.SetTriple(t)
	return t, nil
}
