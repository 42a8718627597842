// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "github.com/sbinet-lpc/co2/cmd/co2-srv"

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sbinet-lpc/co2"
	"github.com/sbinet-lpc/co2/locale"
	"github.com/sbinet-lpc/co2/route"
)

const plotCacheSize = 128

type config struct {
	Routes string // path to a JSON routes catalog
	Lang   string // BCP 47 language of displayed numbers
}

type server struct {
	cat  *route.Catalog
	est  *co2.Estimator
	fmtr *locale.Printer

	plots *lru.Cache[plotKey, []byte]

	reg     *prometheus.Registry
	metrics *metrics

	mux *http.ServeMux
}

func newServer(cfg config) (*server, error) {
	cat := route.Default()
	if cfg.Routes != "" {
		f, err := os.Open(cfg.Routes)
		if err != nil {
			return nil, fmt.Errorf("could not open routes catalog: %w", err)
		}
		defer f.Close()

		cat, err = route.Load(f)
		if err != nil {
			return nil, fmt.Errorf("could not load routes catalog %q: %w", cfg.Routes, err)
		}
	}

	if cfg.Lang == "" {
		cfg.Lang = locale.Default.String()
	}
	fmtr, err := locale.New(cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("could not create number formatter: %w", err)
	}

	est, err := co2.NewEstimator(co2.DefaultModel(), co2.DefaultCredits)
	if err != nil {
		return nil, fmt.Errorf("could not create estimator: %w", err)
	}

	plots, err := lru.New[plotKey, []byte](plotCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create plots cache: %w", err)
	}

	reg := prometheus.NewRegistry()
	srv := &server{
		cat:     cat,
		est:     est,
		fmtr:    fmtr,
		plots:   plots,
		reg:     reg,
		metrics: newMetrics(reg),
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("/", srv.instrument("root", srv.rootHandle))
	srv.mux.HandleFunc("/api/cities", srv.instrument("cities", srv.apiCities))
	srv.mux.HandleFunc("/api/distance", srv.instrument("distance", srv.apiDistance))
	srv.mux.HandleFunc("/api/estimate", srv.instrument("estimate", srv.apiEstimate))
	srv.mux.HandleFunc("/plot/modes", srv.instrument("plot", srv.plotModes))
	srv.mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return srv, nil
}

func (srv *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.mux.ServeHTTP(w, r)
}

// errRouteNotFound reports a trip whose distance is neither provided nor
// known from the routes catalog.
var errRouteNotFound = errors.New("route not found")

// request is a trip as submitted by a client.
// A zero distance requests a lookup in the routes catalog.
type request struct {
	Origin string  `json:"origin"`
	Dest   string  `json:"destination"`
	Mode   string  `json:"mode"`
	Dist   float64 `json:"distance_km,omitempty"`
}

func (srv *server) trip(req request) (co2.Trip, error) {
	var (
		trip = co2.Trip{
			Origin: strings.TrimSpace(req.Origin),
			Dest:   strings.TrimSpace(req.Dest),
			Dist:   req.Dist,
		}
		err error
	)

	if trip.Origin == "" || trip.Dest == "" {
		return trip, fmt.Errorf("origin and destination are required")
	}

	trip.Mode, err = co2.ParseMode(req.Mode)
	if err != nil {
		return trip, err
	}

	switch {
	case trip.Dist < 0:
		return trip, fmt.Errorf("%w: distance must be greater than zero", co2.ErrInvalidDistance)
	case trip.Dist == 0:
		dist, ok := srv.cat.Distance(trip.Origin, trip.Dest)
		if !ok {
			return trip, fmt.Errorf("%w: %q -> %q", errRouteNotFound, trip.Origin, trip.Dest)
		}
		trip.Dist = dist
	}

	return trip, nil
}

func (srv *server) rootHandle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "invalid HTTP method", http.StatusBadRequest)
		return
	}

	var (
		q    = r.URL.Query()
		page = struct {
			Cities []string
			Modes  []co2.Mode
			Form   request
			Manual string
			Error  string
			Hint   string
			Report *co2.Report
			Fmt    *locale.Printer
		}{
			Cities: srv.cat.Cities(),
			Modes:  co2.Modes,
			Form: request{
				Origin: q.Get("from"),
				Dest:   q.Get("to"),
				Mode:   q.Get("mode"),
			},
			Manual: q.Get("dist"),
			Fmt:    srv.fmtr,
		}
	)

	if page.Form.Origin != "" || page.Form.Dest != "" {
		rep, err := srv.estimateForm(&page.Form, page.Manual)
		switch {
		case err == nil:
			page.Report = &rep
		case errors.Is(err, errRouteNotFound):
			page.Error = "Rota não encontrada. Por favor, insira a distância manualmente."
			if est, ok := srv.cat.Estimate(page.Form.Origin, page.Form.Dest); ok {
				page.Hint = srv.fmtr.Number(est, 0)
			}
		default:
			page.Error = err.Error()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := rootTmpl.Execute(w, page)
	if err != nil {
		err = fmt.Errorf("could not execute html template: %w", err)
		log.Printf("%+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (srv *server) estimateForm(req *request, manual string) (co2.Report, error) {
	if manual = strings.TrimSpace(manual); manual != "" {
		dist, err := locale.Parse(manual)
		if err != nil {
			return co2.Report{}, err
		}
		if !(dist > 0) {
			return co2.Report{}, fmt.Errorf("%w: distance must be greater than zero", co2.ErrInvalidDistance)
		}
		req.Dist = dist
	}

	trip, err := srv.trip(*req)
	if err != nil {
		return co2.Report{}, err
	}

	rep, err := srv.est.Estimate(trip)
	if err != nil {
		return co2.Report{}, err
	}
	srv.metrics.observe(rep)
	return rep, nil
}

func (srv *server) apiCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "invalid HTTP method", http.StatusBadRequest)
		return
	}

	srv.writeJSON(w, srv.cat.Cities())
}

func (srv *server) apiDistance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "invalid HTTP method", http.StatusBadRequest)
		return
	}

	var (
		q    = r.URL.Query()
		resp struct {
			Origin   string   `json:"origin"`
			Dest     string   `json:"destination"`
			Dist     float64  `json:"distance_km"`
			Found    bool     `json:"found"`
			Estimate *float64 `json:"great_circle_km,omitempty"`
		}
	)
	resp.Origin = strings.TrimSpace(q.Get("from"))
	resp.Dest = strings.TrimSpace(q.Get("to"))
	if resp.Origin == "" || resp.Dest == "" {
		http.Error(w, "missing from/to query parameters", http.StatusBadRequest)
		return
	}

	resp.Dist, resp.Found = srv.cat.Distance(resp.Origin, resp.Dest)
	if !resp.Found {
		if est, ok := srv.cat.Estimate(resp.Origin, resp.Dest); ok {
			resp.Estimate = &est
		}
	}

	srv.writeJSON(w, resp)
}

func (srv *server) apiEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid HTTP method", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w,
			fmt.Sprintf("could not decode estimate request payload: %+v", err),
			http.StatusBadRequest,
		)
		return
	}

	trip, err := srv.trip(req)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, errRouteNotFound) {
			code = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), code)
		return
	}

	rep, err := srv.est.Estimate(trip)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	srv.metrics.observe(rep)

	srv.writeJSON(w, rep)
}

func (srv *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Printf("could not encode JSON response: %+v", err)
		http.Error(
			w,
			fmt.Errorf("could not encode JSON response: %w", err).Error(),
			http.StatusInternalServerError,
		)
		return
	}
}

const rootPage = `<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<title>Calculadora de CO2</title>
	</head>

	<body>
		<div id="header">
			<h2>Calculadora de emissão de CO2</h2>
		</div>

		<form id="calculator-form" method="get" action="/">
			<datalist id="cities-list">
			{{- range .Cities}}
				<option value="{{.}}">
			{{- end}}
			</datalist>
			<label>Origem <input name="from" list="cities-list" value="{{.Form.Origin}}" required></label>
			<label>Destino <input name="to" list="cities-list" value="{{.Form.Dest}}" required></label>
			<label>Distância (km) <input name="dist" value="{{.Manual}}" placeholder="automática"></label>
			<fieldset>
			{{- range .Modes}}
				<label><input type="radio" name="mode" value="{{.}}" {{if eq $.Form.Mode .String}}checked{{end}}>{{.Icon}} {{.Label}}</label>
			{{- end}}
			</fieldset>
			<button type="submit">Calcular</button>
		</form>

		{{with .Error}}<p id="error" style="color: #f59e0b">{{.}}</p>{{end}}
		{{with .Hint}}<p id="hint">Distância em linha reta: {{.}} km</p>{{end}}

		{{with .Report}}
		<div id="results">
			<h3>Resultados</h3>
			<pre>
Rota:      {{.Trip.Origin}} → {{.Trip.Dest}}
Distância: {{$.Fmt.Number .Trip.Dist 0}} km
Emissão:   {{$.Fmt.Number .Emission.Kg 2}} kg CO₂ ({{.Trip.Mode.Icon}} {{.Trip.Mode.Label}})
{{- if ne .Trip.Mode.String "car"}}
Economia:  {{$.Fmt.Number .Savings.Kg 2}} kg ({{$.Fmt.Percent .Savings.Percent}} menos CO₂ que o carro)
{{- end}}
			</pre>
		</div>

		<div id="comparison">
			<h3>Comparação entre meios de transporte</h3>
			<table>
			{{- range .Modes}}
				<tr style="color: {{.Mode.Color}}">
					<td>{{.Mode.Icon}} {{.Mode.Label}}</td>
					<td>{{$.Fmt.Number .Kg 2}} kg CO₂</td>
					<td>{{$.Fmt.Percent .VsCar}}</td>
				</tr>
			{{- end}}
			</table>
			<img id="modes-plot" src="/plot/modes?dist={{.Trip.Dist}}&amp;mode={{.Trip.Mode}}" alt="N/A"></img>
		</div>

		<div id="carbon-credits">
			<h3>Créditos de carbono</h3>
			<pre>
Créditos: {{$.Fmt.Number .Credits.Count 3}}
Preço:    {{$.Fmt.Currency .Credits.Price.Average .Credits.Currency}} (faixa: {{$.Fmt.Currency .Credits.Price.Min .Credits.Currency}} - {{$.Fmt.Currency .Credits.Price.Max .Credits.Currency}})
			</pre>
		</div>
		{{end}}
	</body>
</html>
`

var rootTmpl = template.Must(template.New("co2-calc").Parse(rootPage))
