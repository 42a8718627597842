// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "github.com/sbinet-lpc/co2/cmd/co2-srv"

import (
	"bytes"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/sbinet-lpc/co2"
	"github.com/sbinet-lpc/co2/chart"
	"golang.org/x/xerrors"
)

type plotKey struct {
	dist float64
	mode co2.Mode
}

func (srv *server) plotModes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "invalid HTTP method", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	dist, err := strconv.ParseFloat(q.Get("dist"), 64)
	if err != nil || dist < 0 || math.IsInf(dist, 0) || math.IsNaN(dist) {
		http.Error(w, "invalid dist query parameter", http.StatusBadRequest)
		return
	}

	mode := co2.Unknown
	if v := q.Get("mode"); v != "" {
		mode, err = co2.ParseMode(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	key := plotKey{dist: dist, mode: mode}
	img, ok := srv.plots.Get(key)
	switch {
	case ok:
		srv.metrics.plotHits.Inc()
	default:
		srv.metrics.plotMisses.Inc()
		img, err = srv.renderModes(dist, mode)
		if err != nil {
			err = xerrors.Errorf("could not render modes plot: %w", err)
			log.Printf("%+v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		srv.plots.Add(key, img)
	}

	w.Header().Set("Content-Type", "image/png")
	_, err = w.Write(img)
	if err != nil {
		log.Printf("could not write PNG image: %+v", err)
		return
	}
}

func (srv *server) renderModes(dist float64, mode co2.Mode) ([]byte, error) {
	cmps, err := srv.est.Model().AllModes(dist)
	if err != nil {
		return nil, xerrors.Errorf("could not compare modes: %w", err)
	}

	p, err := chart.Modes(cmps, mode, dist)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	err = chart.WritePNG(buf, p, chart.Width, chart.Height)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
