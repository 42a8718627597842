// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "github.com/sbinet-lpc/co2/cmd/co2-calc"

import (
	"fmt"
	"io"

	"github.com/sbinet-lpc/co2"
	"github.com/sbinet-lpc/co2/locale"
)

func printReport(w io.Writer, p *locale.Printer, r co2.Report) {
	fmt.Fprintf(w, "=== trip ===\n")
	fmt.Fprintf(w, "route:    %s -> %s\n", r.Trip.Origin, r.Trip.Dest)
	fmt.Fprintf(w, "distance: %s km\n", p.Number(r.Trip.Dist, 0))
	fmt.Fprintf(w, "mode:     %s %s\n", r.Trip.Mode.Icon(), r.Trip.Mode.Label())
	fmt.Fprintf(w, "emission: %s kg CO2\n", p.Number(r.Emission.Kg, 2))
	if r.Trip.Mode != co2.Car {
		fmt.Fprintf(w, "savings:  %s kg CO2 (%s vs car)\n",
			p.Number(r.Savings.Kg, 2),
			p.Percent(r.Savings.Percent),
		)
	}

	fmt.Fprintf(w, "\n=== comparison ===\n")
	for _, cmp := range r.Modes {
		mark := " "
		if cmp.Mode == r.Trip.Mode {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-10s %12s kg CO2 %10s\n",
			mark, cmp.Mode.Label(),
			p.Number(cmp.Kg, 2),
			p.Percent(cmp.VsCar),
		)
	}

	fmt.Fprintf(w, "\n=== carbon credits ===\n")
	fmt.Fprintf(w, "credits:  %s\n", p.Number(r.Credits.Count, 3))
	fmt.Fprintf(w, "price:    %s (%s - %s)\n",
		p.Currency(r.Credits.Price.Average, r.Credits.Currency),
		p.Currency(r.Credits.Price.Min, r.Credits.Currency),
		p.Currency(r.Credits.Price.Max, r.Credits.Currency),
	)
}

func printSummary(w io.Writer, p *locale.Printer, summ *co2.Summary, cp co2.CreditPolicy) {
	fmt.Fprintf(w, "trips: %d\n", summ.Trips)

	fmt.Fprintf(w, "\n=== transport (trips, distance, CO2) ===\n")
	for _, m := range co2.Modes {
		fmt.Fprintf(w, "%-10s %5d %12s km %12s kg CO2\n",
			m.Label(),
			summ.Modes[m],
			p.Number(summ.Dists[m], 0),
			p.Number(summ.Kgs[m], 2),
		)
	}

	credits := summ.Credits(cp)
	fmt.Fprintf(w, "\n=== total ===\n")
	fmt.Fprintf(w, "emission: %s kg CO2\n", p.Number(summ.Kg(), 2))
	fmt.Fprintf(w, "savings:  %s kg CO2 (vs car)\n", p.Number(summ.Saved, 2))
	fmt.Fprintf(w, "credits:  %s\n", p.Number(credits.Count, 3))
	fmt.Fprintf(w, "price:    %s (%s - %s)\n",
		p.Currency(credits.Price.Average, credits.Currency),
		p.Currency(credits.Price.Min, credits.Currency),
		p.Currency(credits.Price.Max, credits.Currency),
	)
}
