// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command co2-calc estimates the CO2 emission of a trip and its cost in
// carbon credits.
//
// Usage:
//
//	$> co2-calc -from "São Paulo, SP" -to "Rio de Janeiro, RJ" -mode bus
//	$> co2-calc -from Lyon -to Paris -dist 465 -mode car -plot out.png
//	$> co2-calc -batch trips.csv
//	$> co2-calc -cities
package main // import "github.com/sbinet-lpc/co2/cmd/co2-calc"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sbinet-lpc/co2"
	"github.com/sbinet-lpc/co2/chart"
	"github.com/sbinet-lpc/co2/locale"
	"github.com/sbinet-lpc/co2/route"
)

func main() {
	log.SetPrefix("co2-calc: ")
	log.SetFlags(0)

	var (
		fromFlag   = flag.String("from", "", "city of origin")
		toFlag     = flag.String("to", "", "city of destination")
		distFlag   = flag.String("dist", "", "distance in km (default: looked up from the routes catalog)")
		modeFlag   = flag.String("mode", "car", "transport mode (bicycle, car, bus, truck)")
		routesFlag = flag.String("routes", "", "path to a JSON routes catalog (default: built-in catalog)")
		langFlag   = flag.String("lang", locale.Default.String(), "language used to display numbers")
		citiesFlag = flag.Bool("cities", false, "list the cities of the routes catalog")
		batchFlag  = flag.String("batch", "", "path to a CSV file of trips (origin,destination,mode[,distance])")
		plotFlag   = flag.String("plot", "", "path to a PNG file where to draw the comparison of modes")
	)

	flag.Parse()

	cat, err := loadCatalog(*routesFlag)
	if err != nil {
		log.Fatalf("could not load routes catalog: %+v", err)
	}

	fmtr, err := locale.New(*langFlag)
	if err != nil {
		log.Fatalf("could not create number formatter: %+v", err)
	}

	est, err := co2.NewEstimator(co2.DefaultModel(), co2.DefaultCredits)
	if err != nil {
		log.Fatalf("could not create estimator: %+v", err)
	}

	switch {
	case *citiesFlag:
		for _, city := range cat.Cities() {
			fmt.Println(city)
		}
		return

	case *batchFlag != "":
		f, err := os.Open(*batchFlag)
		if err != nil {
			log.Fatalf("could not open batch file: %+v", err)
		}
		defer f.Close()

		summ, err := runBatch(f, cat, est)
		if err != nil {
			log.Fatalf("could not process batch file %q: %+v", *batchFlag, err)
		}
		printSummary(os.Stdout, fmtr, summ, est.Policy())
		return
	}

	trip, err := newTrip(cat, *fromFlag, *toFlag, *distFlag, *modeFlag)
	if err != nil {
		log.Fatalf("invalid trip: %+v", err)
	}

	r, err := est.Estimate(trip)
	if err != nil {
		log.Fatalf("could not estimate trip: %+v", err)
	}

	printReport(os.Stdout, fmtr, r)

	if *plotFlag != "" {
		err = savePlot(*plotFlag, r)
		if err != nil {
			log.Fatalf("could not save plot: %+v", err)
		}
	}
}

func loadCatalog(fname string) (*route.Catalog, error) {
	if fname == "" {
		return route.Default(), nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("could not open routes file: %w", err)
	}
	defer f.Close()

	return route.Load(f)
}

// newTrip validates the user input and builds the corresponding trip.
func newTrip(cat *route.Catalog, from, to, dist, mode string) (co2.Trip, error) {
	var (
		trip = co2.Trip{
			Origin: strings.TrimSpace(from),
			Dest:   strings.TrimSpace(to),
		}
		err error
	)

	if trip.Origin == "" || trip.Dest == "" {
		return trip, fmt.Errorf("origin and destination are required")
	}

	trip.Mode, err = co2.ParseMode(mode)
	if err != nil {
		return trip, err
	}

	dist = strings.TrimSpace(dist)
	if dist == "" {
		v, ok := cat.Distance(trip.Origin, trip.Dest)
		if !ok {
			msg := fmt.Sprintf("route %q -> %q not found: please provide the distance with -dist", trip.Origin, trip.Dest)
			if est, ok := cat.Estimate(trip.Origin, trip.Dest); ok {
				msg += fmt.Sprintf(" (great-circle distance: %.0f km)", est)
			}
			return trip, fmt.Errorf("%s", msg)
		}
		trip.Dist = v
		return trip, nil
	}

	trip.Dist, err = locale.Parse(dist)
	if err != nil {
		return trip, err
	}
	if !(trip.Dist > 0) {
		return trip, fmt.Errorf("%w: distance must be greater than zero (got %q)", co2.ErrInvalidDistance, dist)
	}

	return trip, nil
}

func savePlot(fname string, r co2.Report) error {
	p, err := chart.Modes(r.Modes, r.Trip.Mode, r.Trip.Dist)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create plot file: %w", err)
	}
	defer f.Close()

	err = chart.WritePNG(f, p, chart.Width, chart.Height)
	if err != nil {
		return err
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("could not save plot file: %w", err)
	}
	return nil
}
