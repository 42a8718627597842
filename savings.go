// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co2 // import "github.com/sbinet-lpc/co2"

// Savings describes the CO2 saved by a transport mode w.r.t. a baseline.
// Negative values mean more CO2 than the baseline was emitted.
type Savings struct {
	Kg      float64 `json:"saved_kg"`
	Percent float64 `json:"percentage"`
}

// CalcSavings returns the CO2 saved when emitting emission kg instead of
// baseline kg.
// The percentage is zero when the baseline is not strictly positive.
func CalcSavings(emission, baseline float64) Savings {
	saved := baseline - emission
	pct := 0.0
	if baseline > 0 {
		pct = saved / baseline * 100
	}
	return Savings{
		Kg:      round2(saved),
		Percent: round2(pct),
	}
}
