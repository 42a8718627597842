// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co2 // import "github.com/sbinet-lpc/co2"

import (
	"fmt"
)

// Trip is a journey between two cities with a given transport mode.
type Trip struct {
	Origin string  `json:"origin"`
	Dest   string  `json:"destination"`
	Dist   float64 `json:"distance_km"`
	Mode   Mode    `json:"mode"`
}

func (t Trip) String() string {
	return fmt.Sprintf("co2.Trip{from=%q to=%q dist=%vkm mode=%v}",
		t.Origin, t.Dest, t.Dist, t.Mode,
	)
}

// Report gathers everything computed for a trip.
type Report struct {
	Trip     Trip         `json:"trip"`
	Emission Emission     `json:"emission"`
	Baseline Emission     `json:"baseline"` // car emission over the same distance
	Savings  Savings      `json:"savings"`  // savings w.r.t. the car baseline
	Modes    []Comparison `json:"modes"`
	Credits  Credits      `json:"credits"`
}

// Estimator computes trip reports from an emission model and a
// carbon-credit policy.
type Estimator struct {
	model  *Model
	policy CreditPolicy
}

// NewEstimator returns an estimator using the provided model and policy.
// A nil model selects DefaultModel.
func NewEstimator(mdl *Model, cp CreditPolicy) (*Estimator, error) {
	if mdl == nil {
		mdl = DefaultModel()
	}
	err := cp.Validate()
	if err != nil {
		return nil, err
	}
	return &Estimator{model: mdl, policy: cp}, nil
}

// Model returns the emission model of the estimator.
func (est *Estimator) Model() *Model { return est.model }

// Policy returns the carbon-credit policy of the estimator.
func (est *Estimator) Policy() CreditPolicy { return est.policy }

// Estimate computes the report of a trip.
func (est *Estimator) Estimate(t Trip) (Report, error) {
	emi, err := est.model.Compute(t.Dist, t.Mode)
	if err != nil {
		return Report{}, fmt.Errorf("could not compute emission of %v: %w", t, err)
	}

	car, err := est.model.Compute(t.Dist, Car)
	if err != nil {
		return Report{}, fmt.Errorf("could not compute car baseline of %v: %w", t, err)
	}

	cmps, err := est.model.AllModes(t.Dist)
	if err != nil {
		return Report{}, fmt.Errorf("could not compare modes of %v: %w", t, err)
	}

	return Report{
		Trip:     t,
		Emission: emi,
		Baseline: car,
		Savings:  CalcSavings(emi.Kg, car.Kg),
		Modes:    cmps,
		Credits:  est.policy.Estimate(emi.Kg),
	}, nil
}
