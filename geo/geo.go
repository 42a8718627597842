// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo computes great-circle distances between cities.
package geo // import "github.com/sbinet-lpc/co2/geo"

import (
	"fmt"
	"math"
)

// Point is a location on Earth, in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (pt Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", pt.Lat, pt.Lng)
}

// Valid returns whether the point has a latitude in [-90,90] and a
// longitude in [-180,180].
func (pt Point) Valid() bool {
	return -90 <= pt.Lat && pt.Lat <= 90 && -180 <= pt.Lng && pt.Lng <= 180
}

const (
	deg2rad = math.Pi / 180.
	radius  = 6371.0 // Earth mean radius in kilometres
)

// Distance returns the great-circle distance in kilometres between 2 points,
// using the haversine formula:
//
//	https://en.wikipedia.org/wiki/Haversine_formula
//
// Road distances are always longer than this "as the crow flies" value.
func Distance(pt1, pt2 Point) float64 {
	var (
		lat1 = pt1.Lat * deg2rad
		lat2 = pt2.Lat * deg2rad
		dLat = (pt2.Lat - pt1.Lat) * deg2rad
		dLng = (pt2.Lng - pt1.Lng) * deg2rad
	)

	a := hav(dLat) + math.Cos(lat1)*math.Cos(lat2)*hav(dLng)
	return 2 * radius * math.Asin(math.Min(1, math.Sqrt(a)))
}

func hav(theta float64) float64 {
	sin := math.Sin(0.5 * theta)
	return sin * sin
}
