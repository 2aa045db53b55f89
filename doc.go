// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package chiptemp reads a raw on-chip temperature channel through an ADC
// front end and turns it into a stable, calibrated temperature.
//
// The raw reading is a 10 bit value in [0, RawMax]. It is linear with the
// real temperature and, as an undocumented empirical fact, close to whole
// Kelvin, but it can be off by ±10 K until calibrated against two reference
// points.
//
// Readings are smoothed over a fixed averaging window. The window starts out
// zero filled, so the value reported during the first Window-1 updates
// under-reports the real temperature. Use Warmed to detect the end of the
// warm-up period.
//
// No method of Dev sleeps or allocates after construction. The only place
// wall-clock time elapses is inside the RawReader implementation, which must
// document its worst-case latency.
package chiptemp
