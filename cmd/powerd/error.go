// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"encoding/json"
	"net/http"
)

type errResp struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func WriteError(w http.ResponseWriter, code int, errStr string, msg string) error {
	data, err := json.Marshal(&errResp{StatusCode: code, Error: errStr, Message: msg})
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, err = w.Write(data)
	return err
}
