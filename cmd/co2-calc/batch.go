// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "github.com/sbinet-lpc/co2/cmd/co2-calc"

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sbinet-lpc/co2"
	"github.com/sbinet-lpc/co2/route"
)

// runBatch estimates every trip of a CSV stream and summarizes them.
//
// Each record is: origin,destination,mode[,distance].
// Lines starting with '#' are ignored.
func runBatch(r io.Reader, cat *route.Catalog, est *co2.Estimator) (*co2.Summary, error) {
	rr := csv.NewReader(r)
	rr.Comment = '#'
	rr.FieldsPerRecord = -1
	rr.TrimLeadingSpace = true

	summ := co2.NewSummary()
	for {
		rec, err := rr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("could not read CSV record: %w", err)
		}
		line, _ := rr.FieldPos(0)

		if len(rec) < 3 || len(rec) > 4 {
			return nil, fmt.Errorf("line %d: invalid number of fields (got=%d, want=3 or 4)", line, len(rec))
		}
		dist := ""
		if len(rec) == 4 {
			dist = rec[3]
		}

		trip, err := newTrip(cat, rec[0], rec[1], dist, strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rep, err := est.Estimate(trip)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		summ.Add(rep)
	}

	return summ, nil
}
