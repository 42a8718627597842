// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale formats numbers and prices for display.
package locale // import "github.com/sbinet-lpc/co2/locale"

import (
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/xerrors"
)

// Default is the language of the reference calculator.
var Default = language.BrazilianPortuguese

// Printer formats values for a given language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a printer for the provided BCP 47 language tag.
func New(lang string) (*Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, xerrors.Errorf("could not parse language %q: %w", lang, err)
	}
	return NewPrinter(tag), nil
}

// NewPrinter returns a printer for the provided language.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag)}
}

// Language returns the language of the printer.
func (p *Printer) Language() language.Tag { return p.tag }

// Number formats v with exactly prec decimal places, using the decimal and
// grouping separators of the printer language.
func (p *Printer) Number(v float64, prec int) string {
	return p.p.Sprintf("%.*f", prec, v)
}

// Currency formats v as a price in the currency with the provided
// ISO 4217 code, e.g. "R$ 1.234,56".
func (p *Printer) Currency(v float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + p.Number(v, 2)
	}
	sym := p.p.Sprint(currency.Symbol(unit))
	scale, _ := currency.Standard.Rounding(unit)
	return sym + " " + p.Number(v, scale)
}

// Percent formats v, a percentage, with 2 decimal places.
func (p *Printer) Percent(v float64) string {
	return p.Number(v, 2) + "%"
}

// Parse parses a number written with either '.' or ',' as decimal
// separator, as typed by users in a form.
func Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}
	buf := []byte(s)
	for i, c := range buf {
		if c == ',' {
			buf[i] = '.'
		}
	}
	v, err = strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0, xerrors.Errorf("could not parse number %q: %w", s, err)
	}
	return v, nil
}
