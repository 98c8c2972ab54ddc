// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/powercalc/powerd/internal/pkg/config"
	"github.com/powercalc/powerd/internal/pkg/limit"
	"github.com/powercalc/powerd/internal/pkg/logger"
)

const (
	RouteIndex  = "/"
	RoutePower  = "/api/power/:n"
	RouteStatus = "/api/status"
)

type Router struct {
	pt *PowerT
	st *StatusT
}

// NewRouter builds the HTTP handler tree: routes wrapped with the per
// endpoint limiters, all behind the request logging middleware.
func NewRouter(cfg *config.Server, pt *PowerT, st *StatusT) http.Handler {
	r := Router{
		pt: pt,
		st: st,
	}

	wrapper := limit.NewHTTPWrapper(cfg.BindAddress(), &cfg.Limits)

	router := httprouter.New()
	router.GET(RouteIndex, r.handleIndex)
	router.GET(RoutePower, wrapper.WrapPower(r.handlePower))
	router.GET(RouteStatus, wrapper.WrapStatus(r.handleStatus))
	return logger.Middleware(router)
}
