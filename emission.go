// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co2 // import "github.com/sbinet-lpc/co2"

import (
	"fmt"
	"math"
	"sort"
)

// Factors holds the emission factor of each transport mode, in kg CO2/km.
type Factors [nmodes]float64

// DefaultFactors are the emission factors of the reference calculator.
var DefaultFactors = Factors{
	Bicycle: 0,
	Car:     0.12,
	Bus:     0.089,
	Truck:   0.96,
}

// Model computes emissions from a fixed table of emission factors.
// A Model is immutable and may be shared between goroutines.
type Model struct {
	factors Factors
}

// NewModel creates an emission model from the provided factors.
// Factors must be finite and non-negative.
func NewModel(f Factors) (*Model, error) {
	for _, m := range Modes {
		v := f[m]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidFactor, m, v)
		}
	}
	f[Unknown] = 0
	return &Model{factors: f}, nil
}

var defaultModel = mustModel(DefaultFactors)

func mustModel(f Factors) *Model {
	m, err := NewModel(f)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultModel returns the emission model built from DefaultFactors.
func DefaultModel() *Model { return defaultModel }

// Factors returns a copy of the emission factors table.
func (mdl *Model) Factors() Factors { return mdl.factors }

// Factor returns the emission factor (kg CO2/km) of the provided mode.
func (mdl *Model) Factor(m Mode) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMode, m)
	}
	return mdl.factors[m], nil
}

// Emission is the CO2 emitted over a distance with a given transport mode.
type Emission struct {
	Mode Mode    `json:"mode"`
	Dist float64 `json:"distance_km"`
	Kg   float64 `json:"emission_kg"`
}

// Emission returns the CO2 emission, in kg, for dist kilometres traveled
// with the transport mode m, rounded to 2 decimal places.
func (mdl *Model) Emission(dist float64, m Mode) (float64, error) {
	if dist < 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0, fmt.Errorf("%w: %v km", ErrInvalidDistance, dist)
	}
	f, err := mdl.Factor(m)
	if err != nil {
		return 0, err
	}
	return round2(dist * f), nil
}

// Compute is like Emission but returns the whole emission record.
func (mdl *Model) Compute(dist float64, m Mode) (Emission, error) {
	kg, err := mdl.Emission(dist, m)
	if err != nil {
		return Emission{}, err
	}
	return Emission{Mode: m, Dist: dist, Kg: kg}, nil
}

// Comparison is the emission of a transport mode, relative to the car.
type Comparison struct {
	Mode  Mode    `json:"mode"`
	Kg    float64 `json:"emission_kg"`
	VsCar float64 `json:"percentage_vs_car"`
}

// AllModes computes the emission of every known transport mode over dist
// kilometres, together with its percentage of the car emission.
// Results are sorted by increasing emission, ties keeping enumeration order.
func (mdl *Model) AllModes(dist float64) ([]Comparison, error) {
	car, err := mdl.Emission(dist, Car)
	if err != nil {
		return nil, err
	}

	cmps := make([]Comparison, 0, len(Modes))
	for _, m := range Modes {
		kg, err := mdl.Emission(dist, m)
		if err != nil {
			return nil, err
		}
		pct := 100.0
		switch {
		case car > 0:
			pct = round2(kg / car * 100)
		case kg == 0:
			pct = 0
		}
		cmps = append(cmps, Comparison{Mode: m, Kg: kg, VsCar: pct})
	}

	sort.SliceStable(cmps, func(i, j int) bool {
		return cmps[i].Kg < cmps[j].Kg
	})

	return cmps, nil
}
