// Copyright 2019 The lpc-eco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws the comparison of the CO2 emissions of all the
// transport modes.
package chart // import "github.com/sbinet-lpc/co2/chart"

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/sbinet-lpc/co2"
	"go-hep.org/x/hep/hplot"
	"golang.org/x/xerrors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default dimensions of a chart.
const (
	Width  = 15 * vg.Centimeter
	Height = 10 * vg.Centimeter
)

// Modes creates a bar chart of the emission of each transport mode over
// dist kilometres. The bar of the chosen mode is drawn with its own color,
// the other ones are greyed out.
func Modes(cmps []co2.Comparison, chosen co2.Mode, dist float64) (*hplot.Plot, error) {
	if len(cmps) == 0 {
		return nil, xerrors.Errorf("chart: no transport mode to display")
	}

	p := hplot.New()
	p.Title.Text = fmt.Sprintf("CO2 emission over %s km", strconv.FormatFloat(dist, 'f', -1, 64))
	p.Y.Label.Text = "Emission [kg CO2]"
	p.Y.Min = 0

	names := make([]string, len(cmps))
	for i, cmp := range cmps {
		names[i] = cmp.Mode.Label()

		bar, err := plotter.NewBarChart(plotter.Values{cmp.Kg}, vg.Points(30))
		if err != nil {
			return nil, xerrors.Errorf("could not create bar for %v: %w", cmp.Mode, err)
		}
		bar.XMin = float64(i)
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = grey
		if cmp.Mode == chosen {
			bar.Color = rgb(cmp.Mode.Color())
		}
		p.Add(bar)
	}
	p.NominalX(names...)
	p.Add(hplot.NewGrid())

	return p, nil
}

// WritePNG renders the plot as a PNG image of the provided dimensions.
func WritePNG(w io.Writer, p *hplot.Plot, width, height vg.Length) error {
	c := vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	p.Draw(draw.New(c))

	_, err := c.WriteTo(w)
	if err != nil {
		return xerrors.Errorf("could not write PNG canvas: %w", err)
	}
	return nil
}

var grey = color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}

// rgb decodes a #rrggbb color.
func rgb(hex string) color.Color {
	var c color.RGBA
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return grey
	}
	c.A = 0xff
	return c
}
