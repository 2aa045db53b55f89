// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chiptemp

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// RawMax is the highest raw sample the channel can produce (10 bit ADC).
	RawMax uint16 = 0x3FF

	// DefaultWindow is the default averaging window size in samples.
	DefaultWindow = 5
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Window is the averaging window size in samples. 0 means DefaultWindow.
	Window int
	// CalPoints holds the two calibration points, in either order. Leave
	// empty for an uncalibrated device, where Kelvin() returns Raw()
	// unchanged. The two points must have distinct raw readings.
	CalPoints []CalPoint
	// ValidateData enables CRC-8 validation of sample frames read over I²C.
	// Ignored by New; it only applies to the reader built by NewI2C.
	ValidateData bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Window:       DefaultWindow,
	ValidateData: true,
}

// Dev is a calibrated, averaged temperature channel.
//
// It owns the averaging window and the calibration; the raw hardware access
// is delegated to a RawReader. Only Dev may call the reader.
type Dev struct {
	r RawReader

	mu   sync.Mutex
	avg  *average
	cal  calibration
	seen int
	stop chan struct{}
	wg   sync.WaitGroup
}

// New returns a Dev that takes raw samples from r. The Opts can be nil.
//
// With two calibration points in opts, Kelvin() reports the two-point
// calibrated temperature; without any, the device is uncalibrated and
// Kelvin() equals Raw().
func New(r RawReader, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	window := opts.Window
	if window == 0 {
		window = DefaultWindow
	}
	if window < 0 {
		return nil, fmt.Errorf("chiptemp: window must be positive, got %d", window)
	}
	cal, err := newCalibration(opts.CalPoints)
	if err != nil {
		return nil, err
	}
	return &Dev{r: r, avg: newAverage(window), cal: cal}, nil
}

// NewI2C returns a Dev that reads sample frames from an ADC front end on the
// specified bus and address. The Opts can be nil.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	return New(newI2CReader(&i2c.Dev{Bus: b, Addr: addr}, opts.ValidateData), opts)
}

// Update takes exactly one sample from the raw reader and folds it into the
// averaging window. It must be called once per control-loop iteration; it
// never calls the reader more than once.
func (d *Dev) Update() error {
	sample, err := d.r.ReadRaw()
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.avg.push(sample)
	if d.seen < d.avg.window() {
		d.seen++
	}
	d.mu.Unlock()
	return nil
}

// Raw returns the averaged raw reading.
//
// The value is linear with the real temperature and empirically close to
// whole Kelvin, with an error of up to ±10 K. Between two Update calls the
// result does not change.
func (d *Dev) Raw() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.avg.mean()
}

// Kelvin returns the averaged reading mapped through the calibration, in
// whole Kelvin. On an uncalibrated device it equals Raw().
func (d *Dev) Kelvin() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cal.mapRaw(d.avg.mean())
}

// Warmed reports whether the averaging window has been fully populated with
// real samples. Before that, Raw and Kelvin under-report because the window
// starts out zero filled.
func (d *Dev) Warmed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen >= d.avg.window()
}

// Sense implements physic.SenseEnv. It takes one sample and reports the
// calibrated averaged temperature. Readings taken during the warm-up window
// are valid but biased low.
func (d *Dev) Sense(e *physic.Env) error {
	if err := d.Update(); err != nil {
		return err
	}
	e.Temperature = physic.Temperature(d.Kelvin()) * physic.Kelvin
	return nil
}

// SenseContinuous implements physic.SenseEnv. It returns a channel that
// receives a measurement every interval until Halt is called. Measurements
// that cannot be delivered because the channel is full are dropped.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	if d.stop != nil {
		d.mu.Unlock()
		return nil, fmt.Errorf("chiptemp: already sensing continuously")
	}
	d.stop = make(chan struct{})
	stop := d.stop
	d.mu.Unlock()

	sensing := make(chan physic.Env, 16)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(sensing)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil {
					select {
					case sensing <- e:
					default:
					}
				}
			}
		}
	}()
	return sensing, nil
}

// Precision implements physic.SenseEnv. The channel resolves whole Kelvin.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin
	e.Pressure = 0
	e.Humidity = 0
}

// Halt stops a SenseContinuous operation, if one is in progress. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	if d.stop == nil {
		d.mu.Unlock()
		return nil
	}
	close(d.stop)
	d.stop = nil
	d.mu.Unlock()
	d.wg.Wait()
	return nil
}

func (d *Dev) String() string {
	if s, ok := d.r.(fmt.Stringer); ok {
		return fmt.Sprintf("chiptemp: %s", s)
	}
	return "chiptemp"
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
