// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co2 // import "github.com/sbinet-lpc/co2"

import (
	"strings"
)

// Summary aggregates the reports of a batch of trips.
type Summary struct {
	Trips  int              `json:"trips"`
	Cities map[string]int   `json:"cities"`
	Modes  map[Mode]int     `json:"modes"`
	Dists  map[Mode]float64 `json:"dists"`
	Kgs    map[Mode]float64 `json:"kgs"`
	Saved  float64          `json:"saved_kg"` // w.r.t. doing every trip by car
}

func NewSummary() *Summary {
	return &Summary{
		Cities: make(map[string]int),
		Modes:  make(map[Mode]int),
		Dists:  make(map[Mode]float64),
		Kgs:    make(map[Mode]float64),
	}
}

func (summ *Summary) Add(r Report) {
	summ.Trips++
	for _, city := range []string{r.Trip.Origin, r.Trip.Dest} {
		name := strings.TrimSpace(strings.Split(city, ",")[0])
		if name == "" {
			continue
		}
		summ.Cities[name]++
	}
	m := r.Trip.Mode
	summ.Modes[m]++
	summ.Dists[m] += r.Trip.Dist
	summ.Kgs[m] += r.Emission.Kg
	summ.Saved += r.Savings.Kg
}

// Kg returns the total emission of all the trips, rounded to 2 decimal places.
func (summ *Summary) Kg() float64 {
	tot := 0.0
	for _, m := range Modes {
		tot += summ.Kgs[m]
	}
	return round2(tot)
}

// Credits returns the carbon-credit cost of the total emission.
func (summ *Summary) Credits(cp CreditPolicy) Credits {
	return cp.Estimate(summ.Kg())
}
