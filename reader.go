// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chiptemp

import (
	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/chiptemp/common"
)

// RawReader takes one sample from the hardware temperature channel.
//
// Implementations must return a value in [0, RawMax] and complete within a
// bounded, documented worst-case time; Dev calls ReadRaw from its realtime
// update path. No averaging, no state.
type RawReader interface {
	ReadRaw() (uint16, error)
}

// regSample is the pointer of the sample register on the ADC front end.
const regSample byte = 0x00

// i2cReader reads sample frames from an ADC front end over I²C.
//
// A frame is the sample register pointer followed by a 3 byte response:
// value msb, value lsb, CRC-8 over the two value bytes. The upper 6 bits of
// the value are zero.
type i2cReader struct {
	d        *i2c.Dev
	validate bool
	w        [1]byte
	r        [3]byte
}

func newI2CReader(d *i2c.Dev, validate bool) *i2cReader {
	r := &i2cReader{d: d, validate: validate}
	r.w[0] = regSample
	return r
}

func (r *i2cReader) ReadRaw() (uint16, error) {
	if err := r.d.Tx(r.w[:], r.r[:]); err != nil {
		return 0, err
	}
	if r.validate && common.CRC8(r.r[:2]) != r.r[2] {
		return 0, &DataCorruptionError{}
	}
	return (uint16(r.r[0])<<8 | uint16(r.r[1])) & RawMax, nil
}

func (r *i2cReader) String() string {
	return r.d.String()
}
