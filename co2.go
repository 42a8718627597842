// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package co2 estimates the CO2 emissions of a trip for a given transport
// mode, compares them against the other modes and converts them into a
// carbon-credit cost.
package co2 // import "github.com/sbinet-lpc/co2"

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidMode     = errors.New("co2: invalid transport mode")
	ErrInvalidDistance = errors.New("co2: invalid distance")
	ErrInvalidFactor   = errors.New("co2: invalid emission factor")
	ErrInvalidPolicy   = errors.New("co2: invalid carbon-credit policy")
)

// Mode is a transport mode.
type Mode byte

// List of transport modes, in enumeration order.
const (
	Unknown Mode = iota
	Bicycle
	Car
	Bus
	Truck

	nmodes
)

// Modes lists all the known transport modes, in enumeration order.
var Modes = []Mode{
	Bicycle,
	Car,
	Bus,
	Truck,
}

func (m Mode) String() string {
	switch m {
	case Bicycle:
		return "bicycle"
	case Car:
		return "car"
	case Bus:
		return "bus"
	case Truck:
		return "truck"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid returns whether m is one of the known transport modes.
func (m Mode) Valid() bool {
	return Unknown < m && m < nmodes
}

// ParseMode returns the transport mode named s.
// Leading and trailing spaces are ignored, as well as case.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	return Unknown, fmt.Errorf("%w %q", ErrInvalidMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(p []byte) error {
	v, err := ParseMode(string(p))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

type display struct {
	label string
	icon  string
	color string
}

var displays = [nmodes]display{
	Unknown: {"?", "?", "#6b7280"},
	Bicycle: {"Bicicleta", "🚴", "#10b981"},
	Car:     {"Carro", "🚗", "#3b82f6"},
	Bus:     {"Ônibus", "🚌", "#f59e0b"},
	Truck:   {"Caminhão", "🚚", "#ef4444"},
}

func (m Mode) disp() display {
	if !m.Valid() {
		return displays[Unknown]
	}
	return displays[m]
}

// Label returns the human readable name of the transport mode.
func (m Mode) Label() string { return m.disp().label }

// Icon returns the emoji used to display the transport mode.
func (m Mode) Icon() string { return m.disp().icon }

// Color returns the HTML color (#rrggbb) used to display the transport mode.
func (m Mode) Color() string { return m.disp().color }

// round2 rounds x to 2 decimal places.
// Halves are rounded towards +Inf, so round2(-0.125) == -0.12.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
