// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chiptemp

// Unit conversions between the channel's native whole-Kelvin scale and the
// derived Celsius and Fahrenheit scales.
//
// All conversions are pure integer arithmetic with truncating division, the
// same fixed-point discipline as the calibration itself; no floating point
// is involved. Division truncates toward zero, so a Celsius value that does
// not convert exactly to Fahrenheit loses at most one degree toward zero on
// the round trip.

const (
	// zeroCelsiusK is 0°C in whole Kelvin. The fraction is dropped; the
	// sensor does not resolve it anyway.
	zeroCelsiusK = 273
	// fahrenheitZeroC is 0°C in Fahrenheit.
	fahrenheitZeroC = 32
	// 1°F = (fahrenheitNum/fahrenheitDenom)°C.
	fahrenheitNum   = 5
	fahrenheitDenom = 9
)

// KelvinToCelsius converts a whole-Kelvin temperature to degrees Celsius.
func KelvinToCelsius(kelvin uint16) int {
	return int(kelvin) - zeroCelsiusK
}

// CelsiusToKelvin converts degrees Celsius to whole Kelvin. The result is
// only meaningful for celsius >= -zeroCelsiusK.
func CelsiusToKelvin(celsius int) uint16 {
	return uint16(celsius + zeroCelsiusK)
}

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(celsius int) int {
	return (celsius*fahrenheitDenom)/fahrenheitNum + fahrenheitZeroC
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(fahrenheit int) int {
	return ((fahrenheit - fahrenheitZeroC) * fahrenheitNum) / fahrenheitDenom
}
