// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package route holds catalogs of known road distances between cities.
//
// Distances are undirected: the distance from A to B is the distance
// from B to A. City names are matched regardless of case and of
// leading or trailing spaces.
package route // import "github.com/sbinet-lpc/co2/route"

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/sbinet-lpc/co2/geo"
	"golang.org/x/xerrors"
)

var (
	ErrInvalidRoute = errors.New("route: invalid route")
	ErrConflict     = errors.New("route: conflicting routes")
)

// Route is a known road distance between two cities.
type Route struct {
	Origin string  `json:"origin"`
	Dest   string  `json:"destination"`
	Dist   float64 `json:"distance_km"`
}

func (r Route) String() string {
	return fmt.Sprintf("route.Route{%q <-> %q: %vkm}", r.Origin, r.Dest, r.Dist)
}

// City is a city with known coordinates.
type City struct {
	Name string    `json:"name"`
	Loc  geo.Point `json:"loc"`
}

type pair struct {
	a, b string // normalized names, a <= b
}

func keyOf(a, b string) pair {
	a = normalize(a)
	b = normalize(b)
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Catalog is an immutable set of routes.
// A Catalog is safe for concurrent use.
type Catalog struct {
	routes []Route
	dists  map[pair]float64
	cities []string
	locs   map[string]geo.Point
}

// New creates a catalog from the provided routes and optional city
// coordinates.
//
// Routes are checked for validity: both ends must be named and distinct and
// the distance must be finite and non-negative.
// The same pair of cities may appear more than once (in either direction)
// only with the same distance.
func New(routes []Route, cities ...City) (*Catalog, error) {
	cat := &Catalog{
		routes: make([]Route, 0, len(routes)),
		dists:  make(map[pair]float64, len(routes)),
		locs:   make(map[string]geo.Point, len(cities)),
	}

	set := make(map[string]struct{})
	for i, r := range routes {
		switch {
		case strings.TrimSpace(r.Origin) == "", strings.TrimSpace(r.Dest) == "":
			return nil, fmt.Errorf("%w: route #%d %v has an empty city name", ErrInvalidRoute, i, r)
		case normalize(r.Origin) == normalize(r.Dest):
			return nil, fmt.Errorf("%w: route #%d %v is a loop", ErrInvalidRoute, i, r)
		case r.Dist < 0 || math.IsNaN(r.Dist) || math.IsInf(r.Dist, 0):
			return nil, fmt.Errorf("%w: route #%d %v has an invalid distance", ErrInvalidRoute, i, r)
		}

		key := keyOf(r.Origin, r.Dest)
		if dist, dup := cat.dists[key]; dup {
			if dist != r.Dist {
				return nil, fmt.Errorf("%w: route #%d %v (already known with %vkm)", ErrConflict, i, r, dist)
			}
			continue
		}

		cat.dists[key] = r.Dist
		cat.routes = append(cat.routes, r)
		set[r.Origin] = struct{}{}
		set[r.Dest] = struct{}{}
	}

	cat.cities = make([]string, 0, len(set))
	for name := range set {
		cat.cities = append(cat.cities, name)
	}
	sort.Strings(cat.cities)

	for _, c := range cities {
		if !c.Loc.Valid() {
			return nil, fmt.Errorf("%w: city %q has invalid coordinates %v", ErrInvalidRoute, c.Name, c.Loc)
		}
		cat.locs[normalize(c.Name)] = c.Loc
	}

	return cat, nil
}

func mustNew(routes []Route, cities ...City) *Catalog {
	cat, err := New(routes, cities...)
	if err != nil {
		panic(err)
	}
	return cat
}

// Len returns the number of routes in the catalog.
func (cat *Catalog) Len() int { return len(cat.routes) }

// Routes returns a copy of the routes of the catalog.
func (cat *Catalog) Routes() []Route {
	return append([]Route(nil), cat.routes...)
}

// Cities returns the sorted list of all the cities found in the catalog,
// either as origin or destination of a route.
func (cat *Catalog) Cities() []string {
	return append([]string(nil), cat.cities...)
}

// Distance returns the road distance in kilometres between origin and dest.
// Distance reports false if the catalog does not know that route.
func (cat *Catalog) Distance(origin, dest string) (float64, bool) {
	dist, ok := cat.dists[keyOf(origin, dest)]
	return dist, ok
}

// Locate returns the coordinates of the named city, if known.
func (cat *Catalog) Locate(city string) (geo.Point, bool) {
	pt, ok := cat.locs[normalize(city)]
	return pt, ok
}

// Estimate returns the great-circle distance in kilometres between origin
// and dest, when the coordinates of both cities are known.
// It is a lower bound of the road distance.
func (cat *Catalog) Estimate(origin, dest string) (float64, bool) {
	p1, ok := cat.Locate(origin)
	if !ok {
		return 0, false
	}
	p2, ok := cat.Locate(dest)
	if !ok {
		return 0, false
	}
	return geo.Distance(p1, p2), true
}

// Load decodes a catalog from its JSON representation:
//
//	{
//	  "routes": [{"origin": "A", "destination": "B", "distance_km": 42}],
//	  "cities": [{"name": "A", "loc": {"lat": 1, "lng": 2}}]
//	}
func Load(r io.Reader) (*Catalog, error) {
	var raw struct {
		Routes []Route `json:"routes"`
		Cities []City  `json:"cities"`
	}
	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, xerrors.Errorf("could not decode routes catalog: %w", err)
	}

	cat, err := New(raw.Routes, raw.Cities...)
	if err != nil {
		return nil, xerrors.Errorf("could not create routes catalog: %w", err)
	}
	return cat, nil
}
