// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "github.com/sbinet-lpc/co2/cmd/co2-calc"

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sbinet-lpc/co2"
	"github.com/sbinet-lpc/co2/locale"
	"github.com/sbinet-lpc/co2/route"
)

func TestNewTrip(t *testing.T) {
	cat := route.Default()
	for _, tt := range []struct {
		name           string
		from, to, dist string
		mode           string
		want           co2.Trip
		err            string
	}{
		{
			name: "catalog",
			from: " São Paulo, SP ", to: "Rio de Janeiro, RJ", mode: "bus",
			want: co2.Trip{Origin: "São Paulo, SP", Dest: "Rio de Janeiro, RJ", Dist: 430, Mode: co2.Bus},
		},
		{
			name: "manual",
			from: "Lyon", to: "Paris", dist: "465,5", mode: "CAR",
			want: co2.Trip{Origin: "Lyon", Dest: "Paris", Dist: 465.5, Mode: co2.Car},
		},
		{
			name: "manual-overrides-catalog",
			from: "São Paulo, SP", to: "Santos, SP", dist: "80", mode: "truck",
			want: co2.Trip{Origin: "São Paulo, SP", Dest: "Santos, SP", Dist: 80, Mode: co2.Truck},
		},
		{
			name: "missing-origin",
			to:   "Paris", mode: "car",
			err: "origin and destination are required",
		},
		{
			name: "invalid-mode",
			from: "Lyon", to: "Paris", dist: "10", mode: "plane",
			err: "invalid transport mode",
		},
		{
			name: "unknown-route",
			from: "Lyon", to: "Paris", mode: "car",
			err: "please provide the distance",
		},
		{
			name: "unknown-route-hint",
			from: "Natal, RN", to: "Porto Alegre, RS", mode: "car",
			err: "great-circle distance: 3174 km",
		},
		{
			name: "zero-dist",
			from: "Lyon", to: "Paris", dist: "0", mode: "car",
			err: "distance must be greater than zero",
		},
		{
			name: "invalid-dist",
			from: "Lyon", to: "Paris", dist: "far", mode: "car",
			err: "could not parse number",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTrip(cat, tt.from, tt.to, tt.dist, tt.mode)
			switch {
			case tt.err != "":
				if err == nil || !strings.Contains(err.Error(), tt.err) {
					t.Fatalf("invalid error: got=%v, want=%q", err, tt.err)
				}
				return
			case err != nil:
				t.Fatalf("could not create trip: %+v", err)
			}
			if got != tt.want {
				t.Fatalf("invalid trip:\ngot= %v\nwant=%v", got, tt.want)
			}
		})
	}
}

func TestRunBatch(t *testing.T) {
	est, err := co2.NewEstimator(nil, co2.DefaultCredits)
	if err != nil {
		t.Fatalf("could not create estimator: %+v", err)
	}

	const input = `# origin,destination,mode,distance
São Paulo, SP,Rio de Janeiro, RJ,bus
`
	_, err = runBatch(strings.NewReader(input), route.Default(), est)
	if err == nil {
		t.Fatalf("expected an error for unquoted commas")
	}

	const valid = `# origin,destination,mode,distance
"São Paulo, SP","Rio de Janeiro, RJ",bus
"Rio de Janeiro, RJ","Niterói, RJ",bicycle
"São Paulo, SP","Santos, SP",car
Lyon,Paris,truck,465
`
	summ, err := runBatch(strings.NewReader(valid), route.Default(), est)
	if err != nil {
		t.Fatalf("could not run batch: %+v", err)
	}
	if got, want := summ.Trips, 4; got != want {
		t.Fatalf("invalid number of trips: got=%d, want=%d", got, want)
	}
	// 38.27 + 0 + 8.64 + 446.4
	if got, want := summ.Kg(), 493.31; got != want {
		t.Fatalf("invalid total emission: got=%v, want=%v", got, want)
	}

	_, err = runBatch(strings.NewReader("Lyon,Paris,car\n"), route.Default(), est)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("invalid error: got=%v", err)
	}

	_, err = runBatch(strings.NewReader("Lyon,Paris,boat,10\n"), route.Default(), est)
	if !errors.Is(err, co2.ErrInvalidMode) {
		t.Fatalf("invalid error: got=%v, want=%v", err, co2.ErrInvalidMode)
	}
}

func TestPrintReport(t *testing.T) {
	est, err := co2.NewEstimator(nil, co2.DefaultCredits)
	if err != nil {
		t.Fatalf("could not create estimator: %+v", err)
	}
	r, err := est.Estimate(co2.Trip{Origin: "A", Dest: "B", Dist: 430, Mode: co2.Bus})
	if err != nil {
		t.Fatalf("could not estimate trip: %+v", err)
	}

	o := new(strings.Builder)
	printReport(o, locale.NewPrinter(locale.Default), r)
	for _, want := range []string{
		"route:    A -> B",
		"emission: 38,27 kg CO2",
		"savings:  13,33 kg CO2 (25,83% vs car)",
		"credits:  0,038",
	} {
		if !strings.Contains(o.String(), want) {
			t.Fatalf("missing %q in report:\n%s", want, o.String())
		}
	}
}

func TestSavePlot(t *testing.T) {
	est, err := co2.NewEstimator(nil, co2.DefaultCredits)
	if err != nil {
		t.Fatalf("could not create estimator: %+v", err)
	}
	r, err := est.Estimate(co2.Trip{Origin: "A", Dest: "B", Dist: 100, Mode: co2.Car})
	if err != nil {
		t.Fatalf("could not estimate trip: %+v", err)
	}

	fname := filepath.Join(t.TempDir(), "modes.png")
	err = savePlot(fname, r)
	if err != nil {
		t.Fatalf("could not save plot: %+v", err)
	}

	fi, err := os.Stat(fname)
	if err != nil {
		t.Fatalf("could not stat plot: %+v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("empty plot file")
	}
}
