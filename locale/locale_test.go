// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locale

import (
	"testing"
)

func TestNumber(t *testing.T) {
	br := NewPrinter(Default)
	en, err := New("en")
	if err != nil {
		t.Fatalf("could not create printer: %+v", err)
	}

	for _, tt := range []struct {
		p    *Printer
		v    float64
		prec int
		want string
	}{
		{br, 51.6, 2, "51,60"},
		{br, 1234.567, 2, "1.234,57"},
		{br, 0.0516, 3, "0,052"},
		{br, 430, 0, "430"},
		{en, 1234.567, 2, "1,234.57"},
		{en, 0.0516, 3, "0.052"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.p.Number(tt.v, tt.prec); got != tt.want {
				t.Fatalf("invalid number: got=%q, want=%q", got, tt.want)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	br := NewPrinter(Default)
	if got, want := br.Currency(1234.5, "BRL"), "R$ 1.234,50"; got != want {
		t.Fatalf("invalid price: got=%q, want=%q", got, want)
	}
	if got, want := br.Currency(2, "not-a-currency"), "not-a-currency 2,00"; got != want {
		t.Fatalf("invalid price: got=%q, want=%q", got, want)
	}
	if got, want := br.Percent(25.83), "25,83%"; got != want {
		t.Fatalf("invalid percentage: got=%q, want=%q", got, want)
	}
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want float64
		err  bool
	}{
		{s: "430", want: 430},
		{s: "12.5", want: 12.5},
		{s: "12,5", want: 12.5},
		{s: "abc", err: true},
		{s: "", err: true},
	} {
		t.Run(tt.s, func(t *testing.T) {
			got, err := Parse(tt.s)
			switch {
			case tt.err:
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			case err != nil:
				t.Fatalf("could not parse %q: %+v", tt.s, err)
			}
			if got != tt.want {
				t.Fatalf("invalid value: got=%v, want=%v", got, tt.want)
			}
		})
	}
}
