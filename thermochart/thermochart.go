// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermochart renders a recorded temperature series as a PNG strip
// chart. Samples are assumed to be evenly spaced in time.
package thermochart

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the chart.
type Opts struct {
	// W and H are the chart dimensions in pixels. Default to 640x240.
	W, H int
	// Title is drawn centered above the plot.
	Title string

	_ struct{}
}

const margin = 32.0

// Render draws the series and returns the image.
func Render(series []physic.Temperature, opts *Opts) (image.Image, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("thermochart: need at least two samples, got %d", len(series))
	}
	if opts == nil {
		opts = &Opts{}
	}
	w, h := opts.W, opts.H
	if w == 0 {
		w = 640
	}
	if h == 0 {
		h = 240
	}

	min, max := series[0], series[0]
	for _, t := range series[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	if min == max {
		// A flat series still needs a non-degenerate vertical scale.
		max = min + physic.Kelvin
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))

	x := func(i int) float64 {
		return margin + (float64(w)-2*margin)*float64(i)/float64(len(series)-1)
	}
	y := func(t physic.Temperature) float64 {
		return float64(h) - margin - (float64(h)-2*margin)*float64(t-min)/float64(max-min)
	}

	// Axes.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, float64(h)-margin)
	dc.DrawLine(margin, float64(h)-margin, float64(w)-margin, float64(h)-margin)
	dc.Stroke()

	// Series.
	dc.SetRGB(0.8, 0, 0)
	dc.SetLineWidth(1.5)
	dc.MoveTo(x(0), y(series[0]))
	for i, t := range series[1:] {
		dc.LineTo(x(i+1), y(t))
	}
	dc.Stroke()

	// Labels.
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(max.String(), margin-4, margin, 1, 0.5)
	dc.DrawStringAnchored(min.String(), margin-4, float64(h)-margin, 1, 0.5)
	if opts.Title != "" {
		dc.DrawStringAnchored(opts.Title, float64(w)/2, margin/2, 0.5, 0.5)
	}
	return dc.Image(), nil
}

// WritePNG renders the series and writes it to path.
func WritePNG(path string, series []physic.Temperature, opts *Opts) error {
	img, err := Render(series, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
