// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command co2-srv serves the CO2 calculator over HTTP.
//
// Default values of the command-line flags may be set from the environment
// or from a .env file in the working directory:
//
//	CO2SRV_ADDR=:8080
//	CO2SRV_ROUTES=routes.json
//	CO2SRV_LANG=pt-BR
package main // import "github.com/sbinet-lpc/co2/cmd/co2-srv"

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("co2-srv: ")
	log.SetFlags(0)

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("could not load .env file: %+v", err)
	}

	var (
		addrFlag   = flag.String("addr", getenv("CO2SRV_ADDR", ":80"), "[host]:port to serve")
		routesFlag = flag.String("routes", getenv("CO2SRV_ROUTES", ""), "path to a JSON routes catalog (default: built-in catalog)")
		langFlag   = flag.String("lang", getenv("CO2SRV_LANG", "pt-BR"), "language used to display numbers")
	)

	flag.Parse()

	srv, err := newServer(config{
		Routes: *routesFlag,
		Lang:   *langFlag,
	})
	if err != nil {
		log.Fatalf("could not create co2 server: %+v", err)
	}

	log.Printf("serving %q...", *addrFlag)

	log.Fatalf("error serving co2-srv: %+v", http.ListenAndServe(*addrFlag, srv))
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
