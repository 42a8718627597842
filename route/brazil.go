// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package route // import "github.com/sbinet-lpc/co2/route"

import "github.com/sbinet-lpc/co2/geo"

var brazil = mustNew(brazilRoutes, brazilCities...)

// Default returns the built-in catalog of road distances between the main
// Brazilian cities.
func Default() *Catalog { return brazil }

var brazilRoutes = []Route{
	// capitals, south-east
	{"São Paulo, SP", "Rio de Janeiro, RJ", 430},
	{"São Paulo, SP", "Belo Horizonte, MG", 586},
	{"São Paulo, SP", "Vitória, ES", 882},
	{"Rio de Janeiro, RJ", "Belo Horizonte, MG", 434},
	{"Rio de Janeiro, RJ", "Vitória, ES", 521},
	{"Belo Horizonte, MG", "Vitória, ES", 524},

	// São Paulo
	{"São Paulo, SP", "Brasília, DF", 1015},
	{"São Paulo, SP", "Curitiba, PR", 408},
	{"São Paulo, SP", "Florianópolis, SC", 705},
	{"São Paulo, SP", "Porto Alegre, RS", 1125},
	{"São Paulo, SP", "Salvador, BA", 1962},
	{"São Paulo, SP", "Recife, PE", 2660},
	{"São Paulo, SP", "Fortaleza, CE", 3125},
	{"São Paulo, SP", "Belém, PA", 2933},
	{"São Paulo, SP", "Manaus, AM", 3935},

	// Rio de Janeiro
	{"Rio de Janeiro, RJ", "Brasília, DF", 1148},
	{"Rio de Janeiro, RJ", "Salvador, BA", 1649},
	{"Rio de Janeiro, RJ", "Curitiba, PR", 852},
	{"Rio de Janeiro, RJ", "Porto Alegre, RS", 1553},

	// Brasília
	{"Brasília, DF", "Goiânia, GO", 209},
	{"Brasília, DF", "Salvador, BA", 1446},
	{"Brasília, DF", "Belo Horizonte, MG", 716},
	{"Brasília, DF", "Cuiabá, MT", 1133},

	// south
	{"Curitiba, PR", "Florianópolis, SC", 300},
	{"Curitiba, PR", "Porto Alegre, RS", 711},
	{"Florianópolis, SC", "Porto Alegre, RS", 476},

	// north-east
	{"Salvador, BA", "Recife, PE", 839},
	{"Salvador, BA", "Fortaleza, CE", 1389},
	{"Recife, PE", "Fortaleza, CE", 800},
	{"Recife, PE", "Natal, RN", 297},
	{"Fortaleza, CE", "Natal, RN", 537},
	{"Salvador, BA", "Aracaju, SE", 356},

	// north
	{"Belém, PA", "Manaus, AM", 1294},
	{"Belém, PA", "São Luís, MA", 806},
	{"Manaus, AM", "Porto Velho, RO", 901},

	// São Paulo state
	{"São Paulo, SP", "Campinas, SP", 95},
	{"São Paulo, SP", "Santos, SP", 72},
	{"São Paulo, SP", "Ribeirão Preto, SP", 313},
	{"Campinas, SP", "Ribeirão Preto, SP", 228},

	// Rio de Janeiro state
	{"Rio de Janeiro, RJ", "Niterói, RJ", 13},
	{"Rio de Janeiro, RJ", "Petrópolis, RJ", 68},
}

var brazilCities = []City{
	{"Aracaju, SE", geo.Point{Lat: -10.9472, Lng: -37.0731}},
	{"Belo Horizonte, MG", geo.Point{Lat: -19.9167, Lng: -43.9345}},
	{"Belém, PA", geo.Point{Lat: -1.4558, Lng: -48.4902}},
	{"Brasília, DF", geo.Point{Lat: -15.7939, Lng: -47.8828}},
	{"Campinas, SP", geo.Point{Lat: -22.9099, Lng: -47.0626}},
	{"Cuiabá, MT", geo.Point{Lat: -15.6014, Lng: -56.0979}},
	{"Curitiba, PR", geo.Point{Lat: -25.4284, Lng: -49.2733}},
	{"Florianópolis, SC", geo.Point{Lat: -27.5954, Lng: -48.5480}},
	{"Fortaleza, CE", geo.Point{Lat: -3.7319, Lng: -38.5267}},
	{"Goiânia, GO", geo.Point{Lat: -16.6869, Lng: -49.2648}},
	{"Manaus, AM", geo.Point{Lat: -3.1190, Lng: -60.0217}},
	{"Natal, RN", geo.Point{Lat: -5.7945, Lng: -35.2110}},
	{"Niterói, RJ", geo.Point{Lat: -22.8832, Lng: -43.1034}},
	{"Petrópolis, RJ", geo.Point{Lat: -22.5112, Lng: -43.1779}},
	{"Porto Alegre, RS", geo.Point{Lat: -30.0346, Lng: -51.2177}},
	{"Porto Velho, RO", geo.Point{Lat: -8.7612, Lng: -63.9004}},
	{"Recife, PE", geo.Point{Lat: -8.0476, Lng: -34.8770}},
	{"Ribeirão Preto, SP", geo.Point{Lat: -21.1704, Lng: -47.8103}},
	{"Rio de Janeiro, RJ", geo.Point{Lat: -22.9068, Lng: -43.1729}},
	{"Salvador, BA", geo.Point{Lat: -12.9777, Lng: -38.5016}},
	{"Santos, SP", geo.Point{Lat: -23.9608, Lng: -46.3336}},
	{"São Luís, MA", geo.Point{Lat: -2.5307, Lng: -44.3068}},
	{"São Paulo, SP", geo.Point{Lat: -23.5505, Lng: -46.6333}},
	{"Vitória, ES", geo.Point{Lat: -20.3155, Lng: -40.3128}},
}
