// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	"github.com/powercalc/powerd/internal/pkg/build"
)

type StatusResponse struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time,omitempty"`
}

type StatusT struct {
	bi build.Info
}

func NewStatusT(bi build.Info) *StatusT {
	return &StatusT{bi: bi}
}

func (rt Router) handleStatus(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	resp := StatusResponse{
		Name:    build.ServiceName,
		Status:  "HEALTHY",
		Version: rt.st.bi.Version,
	}
	if !rt.st.bi.BuildTime.IsZero() {
		resp.BuildTime = rt.st.bi.BuildTime.UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(&resp)
	if err != nil {
		code := http.StatusInternalServerError
		log.Error().Err(err).Int("code", code).Msg("fail status")
		http.Error(w, "", code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(data); err != nil {
		if err != context.Canceled {
			log.Error().Err(err).Msg("fail status")
		}
	}
}
