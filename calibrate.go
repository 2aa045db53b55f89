// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chiptemp

import "fmt"

// CalPoint pairs a trusted reference temperature with the averaged raw
// reading observed at that temperature during a calibration run.
//
// The reference is stored in whole Kelvin regardless of the unit it was
// measured in; use the per-unit constructors.
type CalPoint struct {
	// TempK is the reference temperature measured by an external master
	// thermometer, in whole Kelvin.
	TempK uint16
	// Raw is the averaged raw reading (Dev.Raw) at TempK.
	Raw uint16
}

// CalPointKelvin returns a calibration point from a reference temperature in
// Kelvin.
func CalPointKelvin(tempK, raw uint16) CalPoint {
	return CalPoint{TempK: tempK, Raw: raw}
}

// CalPointCelsius returns a calibration point from a reference temperature
// in degrees Celsius.
func CalPointCelsius(tempC int, raw uint16) CalPoint {
	return CalPoint{TempK: CelsiusToKelvin(tempC), Raw: raw}
}

// CalPointFahrenheit returns a calibration point from a reference
// temperature in degrees Fahrenheit.
func CalPointFahrenheit(tempF int, raw uint16) CalPoint {
	return CalPoint{TempK: CelsiusToKelvin(FahrenheitToCelsius(tempF)), Raw: raw}
}

// calibration maps averaged raw readings to Kelvin. The zero value is the
// identity mapping (uncalibrated device).
type calibration struct {
	p1, p2   CalPoint
	twoPoint bool
}

func newCalibration(points []CalPoint) (calibration, error) {
	switch len(points) {
	case 0:
		return calibration{}, nil
	case 2:
		if points[0].Raw == points[1].Raw {
			return calibration{}, &InvalidCalibrationError{}
		}
		return calibration{p1: points[0], p2: points[1], twoPoint: true}, nil
	default:
		return calibration{}, fmt.Errorf("chiptemp: calibration takes exactly two points, got %d", len(points))
	}
}

// mapRaw interpolates linearly through the two calibration points.
//
// The numerator and denominator factors flip sign together when the points
// are swapped, so the result does not depend on point order. Intermediates
// are int64: full-range 16 bit spans would overflow a 32 bit product.
func (c calibration) mapRaw(raw uint16) uint16 {
	if !c.twoPoint {
		return raw
	}
	n := (int64(raw) - int64(c.p1.Raw)) * (int64(c.p2.TempK) - int64(c.p1.TempK))
	d := int64(c.p2.Raw) - int64(c.p1.Raw)
	return uint16(int64(c.p1.TempK) + n/d)
}
