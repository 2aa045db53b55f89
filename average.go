// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chiptemp

// average keeps the last n raw samples in a fixed wraparound array and
// computes their truncating integer mean.
//
// The array starts out zero filled; mean() is well defined from the first
// push but under-reports the signal until n samples have been pushed.
type average struct {
	samples []uint16
	cursor  int
}

func newAverage(n int) *average {
	return &average{samples: make([]uint16, n)}
}

// push overwrites the oldest slot. It never fails and never allocates.
func (a *average) push(sample uint16) {
	a.samples[a.cursor] = sample
	a.cursor++
	if a.cursor == len(a.samples) {
		a.cursor = 0
	}
}

// mean returns the truncating integer average of all slots.
func (a *average) mean() uint16 {
	var sum uint64
	for _, s := range a.samples {
		sum += uint64(s)
	}
	return uint16(sum / uint64(len(a.samples)))
}

func (a *average) window() int {
	return len(a.samples)
}
