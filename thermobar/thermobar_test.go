// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermobar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/maruel/ansi256"
	"periph.io/x/conn/v3/physic"
)

func testDev(buf *bytes.Buffer, width int) *Dev {
	return &Dev{
		w:       buf,
		width:   width,
		min:     physic.ZeroCelsius,
		max:     physic.ZeroCelsius + 100*physic.Kelvin,
		palette: *ansi256.Default,
	}
}

func TestRender(t *testing.T) {
	buf := bytes.Buffer{}
	d := testDev(&buf, 10)
	if err := d.Render(physic.ZeroCelsius + 50*physic.Kelvin); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\r\033[0m") {
		t.Fatalf("missing cursor return and reset: %q", out)
	}
	if !strings.Contains(out, "50") {
		t.Fatalf("missing temperature text: %q", out)
	}
}

func TestRenderClamps(t *testing.T) {
	buf := bytes.Buffer{}
	d := testDev(&buf, 10)
	// Neither end of the range may panic or overflow the bar.
	if err := d.Render(physic.ZeroCelsius - 500*physic.Kelvin); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := d.Render(physic.ZeroCelsius + 500*physic.Kelvin); err != nil {
		t.Fatal(err)
	}
}

func TestHalt(t *testing.T) {
	buf := bytes.Buffer{}
	d := testDev(&buf, 10)
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\n\033[0m" {
		t.Fatalf("Halt wrote %q", got)
	}
}

func TestNewDefaults(t *testing.T) {
	d := New(nil)
	if d.width != 40 {
		t.Fatalf("width=%d want 40", d.width)
	}
	if d.min != physic.ZeroCelsius {
		t.Fatalf("min=%s want 0°C", d.min)
	}
}
