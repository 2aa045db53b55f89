// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermochart

import (
	"image"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestRender(t *testing.T) {
	series := []physic.Temperature{
		physic.ZeroCelsius + 20*physic.Kelvin,
		physic.ZeroCelsius + 22*physic.Kelvin,
		physic.ZeroCelsius + 21*physic.Kelvin,
		physic.ZeroCelsius + 25*physic.Kelvin,
	}
	img, err := Render(series, &Opts{W: 320, H: 120, Title: "warm-up"})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 320, 120) {
		t.Fatalf("bounds %v", b)
	}
}

func TestRenderFlatSeries(t *testing.T) {
	series := []physic.Temperature{physic.ZeroCelsius, physic.ZeroCelsius}
	if _, err := Render(series, nil); err != nil {
		t.Fatal(err)
	}
}

func TestRenderTooShort(t *testing.T) {
	if _, err := Render([]physic.Temperature{physic.ZeroCelsius}, nil); err == nil {
		t.Fatal("expected an error for a single sample")
	}
}
