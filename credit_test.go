// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co2_test // import "github.com/sbinet-lpc/co2"

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/sbinet-lpc/co2"
)

func TestCalcSavings(t *testing.T) {
	for _, tt := range []struct {
		emission, baseline float64
		want               co2.Savings
	}{
		{emission: 89, baseline: 120, want: co2.Savings{Kg: 31, Percent: 25.83}},
		{emission: 0, baseline: 51.6, want: co2.Savings{Kg: 51.6, Percent: 100}},
		{emission: 51.6, baseline: 51.6, want: co2.Savings{Kg: 0, Percent: 0}},
		{emission: 412.8, baseline: 51.6, want: co2.Savings{Kg: -361.2, Percent: -700}},
		{emission: 38.27, baseline: 51.6, want: co2.Savings{Kg: 13.33, Percent: 25.83}},
		{emission: 10, baseline: 0, want: co2.Savings{Kg: -10, Percent: 0}},
		{emission: 0, baseline: 0, want: co2.Savings{Kg: 0, Percent: 0}},
	} {
		t.Run(fmt.Sprintf("%v-%v", tt.emission, tt.baseline), func(t *testing.T) {
			got := co2.CalcSavings(tt.emission, tt.baseline)
			if got != tt.want {
				t.Fatalf("invalid savings: got=%+v, want=%+v", got, tt.want)
			}
		})
	}
}

func TestCreditPrice(t *testing.T) {
	cp := co2.CreditPolicy{KgPerCredit: 1000, PriceMin: 50, PriceMax: 150}
	for _, tt := range []struct {
		credits float64
		want    co2.Price
	}{
		{credits: 1.5, want: co2.Price{Min: 75, Max: 225, Average: 150}},
		{credits: 0, want: co2.Price{}},
		{credits: 0.0516, want: co2.Price{Min: 2.58, Max: 7.74, Average: 5.16}},
		{credits: 0.4128, want: co2.Price{Min: 20.64, Max: 61.92, Average: 41.28}},
	} {
		t.Run(fmt.Sprintf("%v", tt.credits), func(t *testing.T) {
			got := cp.Price(tt.credits)
			if got != tt.want {
				t.Fatalf("invalid price: got=%+v, want=%+v", got, tt.want)
			}
		})
	}
}

func TestCreditEstimate(t *testing.T) {
	got := co2.DefaultCredits.Estimate(51.6)
	want := co2.Credits{
		Count:    0.0516,
		Price:    co2.Price{Min: 2.58, Max: 7.74, Average: 5.16},
		Currency: "BRL",
	}
	if math.Abs(got.Count-want.Count) > 1e-12 {
		t.Fatalf("invalid credits count: got=%v, want=%v", got.Count, want.Count)
	}
	if got.Price != want.Price || got.Currency != want.Currency {
		t.Fatalf("invalid credits:\ngot= %+v\nwant=%+v", got, want)
	}

	if got, want := co2.DefaultCredits.Credits(1500), 1.5; got != want {
		t.Fatalf("invalid credits: got=%v, want=%v", got, want)
	}
}

func TestCreditPolicyValidate(t *testing.T) {
	for _, tt := range []struct {
		name string
		cp   co2.CreditPolicy
		err  error
	}{
		{name: "default", cp: co2.DefaultCredits},
		{name: "free", cp: co2.CreditPolicy{KgPerCredit: 1}},
		{name: "zero-kg", cp: co2.CreditPolicy{PriceMin: 1, PriceMax: 2}, err: co2.ErrInvalidPolicy},
		{name: "nan-kg", cp: co2.CreditPolicy{KgPerCredit: math.NaN()}, err: co2.ErrInvalidPolicy},
		{name: "neg-min", cp: co2.CreditPolicy{KgPerCredit: 1, PriceMin: -1, PriceMax: 2}, err: co2.ErrInvalidPolicy},
		{name: "max-lt-min", cp: co2.CreditPolicy{KgPerCredit: 1, PriceMin: 3, PriceMax: 2}, err: co2.ErrInvalidPolicy},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cp.Validate()
			if !errors.Is(err, tt.err) {
				t.Fatalf("invalid error: got=%v, want=%v", err, tt.err)
			}
		})
	}
}
