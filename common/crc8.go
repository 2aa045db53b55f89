// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains helpers shared by the chiptemp packages.
package common

// CRC8 calculates the 8-bit CRC of the byte slice parameter and returns the
// calculated value. Polynomial 0x31, initial value 0xFF, the variant used by
// the sample frames of TI and Sensirion style front ends.
func CRC8(bytes []byte) byte {
	var crc byte = 0xff
	for _, val := range bytes {
		crc ^= val
		for i := 0; i < 8; i++ {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (crc << 1) ^ 0x31
			}
		}
	}
	return crc
}
