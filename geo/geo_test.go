// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	var (
		saoPaulo = Point{-23.5505, -46.6333}
		rio      = Point{-22.9068, -43.1729}
		brasilia = Point{-15.7939, -47.8828}
		manaus   = Point{-3.1190, -60.0217}
	)

	for _, tt := range []struct {
		name     string
		pt1, pt2 Point
		want     float64
	}{
		{name: "origin", pt1: Point{}, pt2: Point{}, want: 0},
		{name: "same", pt1: rio, pt2: rio, want: 0},
		{name: "sp-rio", pt1: saoPaulo, pt2: rio, want: 361},
		{name: "rio-sp", pt1: rio, pt2: saoPaulo, want: 361},
		{name: "sp-bsb", pt1: saoPaulo, pt2: brasilia, want: 873},
		{name: "sp-mao", pt1: saoPaulo, pt2: manaus, want: 2689},
		{name: "antipodes", pt1: Point{0, 0}, pt2: Point{0, 180}, want: math.Pi * radius},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.pt1, tt.pt2)
			if !approxEqual(got, tt.want) {
				t.Fatalf("invalid distance: got=%v, want=%v", got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	for _, tt := range []struct {
		pt   Point
		want bool
	}{
		{Point{}, true},
		{Point{-23.5, -46.6}, true},
		{Point{90, 180}, true},
		{Point{91, 0}, false},
		{Point{0, -181}, false},
		{Point{math.NaN(), 0}, false},
	} {
		t.Run(tt.pt.String(), func(t *testing.T) {
			if got := tt.pt.Valid(); got != tt.want {
				t.Fatalf("invalid validity: got=%v, want=%v", got, tt.want)
			}
		})
	}
}

func approxEqual(a, b float64) bool {
	// require only km-level precision.
	return math.Abs(a-b) <= 5
}
