// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co2 // import "github.com/sbinet-lpc/co2"

import (
	"fmt"
	"math"
)

// CreditPolicy describes how emissions convert into carbon credits.
type CreditPolicy struct {
	KgPerCredit float64 `json:"kg_per_credit"` // kg CO2e offset by one credit
	PriceMin    float64 `json:"price_min"`     // minimal price of one credit
	PriceMax    float64 `json:"price_max"`     // maximal price of one credit
	Currency    string  `json:"currency"`      // ISO-4217 code of the prices
}

// DefaultCredits is the carbon-credit policy of the reference calculator:
// one credit offsets one ton of CO2 and trades between 50 and 150 BRL.
var DefaultCredits = CreditPolicy{
	KgPerCredit: 1000,
	PriceMin:    50,
	PriceMax:    150,
	Currency:    "BRL",
}

// Validate checks the policy is usable.
func (cp CreditPolicy) Validate() error {
	switch {
	case !(cp.KgPerCredit > 0) || math.IsInf(cp.KgPerCredit, 0):
		return fmt.Errorf("%w: kg-per-credit=%v", ErrInvalidPolicy, cp.KgPerCredit)
	case !(cp.PriceMin >= 0) || math.IsInf(cp.PriceMin, 0):
		return fmt.Errorf("%w: price-min=%v", ErrInvalidPolicy, cp.PriceMin)
	case !(cp.PriceMax >= cp.PriceMin) || math.IsInf(cp.PriceMax, 0):
		return fmt.Errorf("%w: price-max=%v (min=%v)", ErrInvalidPolicy, cp.PriceMax, cp.PriceMin)
	}
	return nil
}

// Credits returns the number of credits needed to offset kg of CO2.
func (cp CreditPolicy) Credits(kg float64) float64 {
	return kg / cp.KgPerCredit
}

// Price is a price range, in the currency of a CreditPolicy.
type Price struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// Price returns the price range of the provided number of credits.
// The credits count is not validated.
func (cp CreditPolicy) Price(credits float64) Price {
	var (
		lo = credits * cp.PriceMin
		hi = credits * cp.PriceMax
	)
	return Price{
		Min:     round2(lo),
		Max:     round2(hi),
		Average: round2((lo + hi) / 2),
	}
}

// Credits is the carbon-credit cost of an emission.
type Credits struct {
	Count    float64 `json:"credits"`
	Price    Price   `json:"price"`
	Currency string  `json:"currency"`
}

// Estimate converts kg of CO2 into credits and their price range.
func (cp CreditPolicy) Estimate(kg float64) Credits {
	n := cp.Credits(kg)
	return Credits{
		Count:    n,
		Price:    cp.Price(n),
		Currency: cp.Currency,
	}
}
