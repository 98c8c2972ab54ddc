// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package powerd

import (
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	"github.com/powercalc/powerd/internal/pkg/power"
)

// Minimal front end: a numeric input field and the three computed
// results rendered as text.
const indexTmpl = `<!DOCTYPE html>
<html>
<head><title>Power Calculator</title></head>
<body>
<h1>Power Calculator</h1>
<p>Enter a number to calculate its square, cube and fifth power.</p>
<form method="GET" action="/">
<input type="number" name="n" step="1" value="{{.Value}}">
<button type="submit">Calculate</button>
</form>
{{if .HasResult}}
<p>The square of {{.Result.Input}} is: {{.Result.Square}}</p>
<p>The cube of {{.Result.Input}} is: {{.Result.Cube}}</p>
<p>The fifth_power of {{.Result.Input}} is: {{.Result.FifthPower}}</p>
{{end}}
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexTmpl))

type indexData struct {
	Value     string
	HasResult bool
	Result    power.Triple
}

func (rt Router) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data := indexData{Value: "1"}

	if raw := r.URL.Query().Get("n"); raw != "" {
		res, err := rt.pt.computePower(raw)
		if err != nil {
			code := http.StatusBadRequest
			log.Info().Err(err).Str("n", raw).Int("code", code).Msg("fail index")
			if wErr := WriteError(w, code, "NotNumeric", "input is not an integer: "+raw); wErr != nil {
				log.Error().Err(wErr).Msg("fail writing error response")
			}
			return
		}
		data.Value = raw
		data.HasResult = true
		data.Result = res
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("fail index")
	}
}
