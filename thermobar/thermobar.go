// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermobar implements a temperature gauge that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful while watching a sensor settle during a calibration run: the bar
// redraws in place on every Render call.
package thermobar

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the gauge.
type Opts struct {
	// Width is the gauge width in terminal cells. Defaults to 40.
	Width int
	// Min and Max bound the displayed range. Default to 0°C and 100°C.
	Min, Max physic.Temperature
	// Palette maps colors to ANSI codes.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev draws a temperature gauge on the console.
type Dev struct {
	w        io.Writer
	width    int
	min, max physic.Temperature
	palette  ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console. The Opts can be nil.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	width := opts.Width
	if width == 0 {
		width = 40
	}
	min, max := opts.Min, opts.Max
	if min == 0 && max == 0 {
		min = physic.ZeroCelsius
		max = physic.ZeroCelsius + 100*physic.Kelvin
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		width:   width,
		min:     min,
		max:     max,
		palette: *p,
	}
}

func (d *Dev) String() string {
	return "ThermoBar"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not left colored.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Render redraws the gauge in place for the given temperature. Values
// outside [Min, Max] are clamped to the ends of the bar.
func (d *Dev) Render(t physic.Temperature) error {
	filled := d.width
	if t <= d.min {
		filled = 0
	} else if t < d.max {
		filled = int(int64(d.width) * int64(t-d.min) / int64(d.max-d.min))
	}
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < d.width; i++ {
		var c color.NRGBA
		if i < filled {
			// Cold-to-hot gradient across the bar.
			f := 0
			if d.width > 1 {
				f = i * 255 / (d.width - 1)
			}
			c = color.NRGBA{R: uint8(f), G: 0, B: uint8(255 - f), A: 255}
		} else {
			c = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, _ = fmt.Fprintf(&d.buf, "%s ", t)
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
