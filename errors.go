// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chiptemp

// InvalidCalibrationError is returned by New when both calibration points
// carry the same raw reading, which would make the mapping divide by zero.
type InvalidCalibrationError struct{}

func (e *InvalidCalibrationError) Error() string {
	return "chiptemp: calibration points have identical raw readings"
}

// DataCorruptionError is returned by Update when a sample frame fails CRC-8
// validation.
type DataCorruptionError struct{}

func (e *DataCorruptionError) Error() string {
	return "chiptemp: sample frame failed CRC-8 validation"
}
