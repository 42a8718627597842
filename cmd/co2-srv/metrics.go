// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "github.com/sbinet-lpc/co2/cmd/co2-srv"

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sbinet-lpc/co2"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	trips    *prometheus.CounterVec
	emission *prometheus.CounterVec
	distance *prometheus.CounterVec

	plotHits   prometheus.Counter
	plotMisses prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "co2srv_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"handler", "code"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "co2srv_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"handler"},
		),
		trips: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "co2srv_trips_total",
				Help: "Total number of estimated trips",
			},
			[]string{"mode"},
		),
		emission: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "co2srv_emission_kg_total",
				Help: "Total CO2 emission of the estimated trips, in kg",
			},
			[]string{"mode"},
		),
		distance: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "co2srv_distance_km_total",
				Help: "Total distance of the estimated trips, in km",
			},
			[]string{"mode"},
		),
		plotHits: f.NewCounter(prometheus.CounterOpts{
			Name: "co2srv_plot_cache_hits_total",
			Help: "Total number of plot cache hits",
		}),
		plotMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "co2srv_plot_cache_misses_total",
			Help: "Total number of plot cache misses",
		}),
	}
}

func (m *metrics) observe(r co2.Report) {
	mode := r.Trip.Mode.String()
	m.trips.WithLabelValues(mode).Inc()
	m.emission.WithLabelValues(mode).Add(r.Emission.Kg)
	m.distance.WithLabelValues(mode).Add(r.Trip.Dist)
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// instrument records the number and duration of requests served by h.
func (srv *server) instrument(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		h(sw, r)
		srv.metrics.requests.WithLabelValues(name, strconv.Itoa(sw.code)).Inc()
		srv.metrics.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}
