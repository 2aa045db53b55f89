// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// chiptemp samples a calibrated temperature channel over I²C, draws a live
// gauge on the terminal and optionally writes a PNG strip chart on exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/chiptemp"
	"github.com/GermanBionicSystems/chiptemp/thermobar"
	"github.com/GermanBionicSystems/chiptemp/thermochart"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use (default: the first available)")
	addr := flag.Int("addr", 0x48, "I²C address of the ADC front end")
	interval := flag.Duration("i", time.Second, "sampling interval")
	window := flag.Int("w", chiptemp.DefaultWindow, "averaging window, in samples")
	cal1 := flag.String("cal1", "", "first calibration point, as kelvin:raw")
	cal2 := flag.String("cal2", "", "second calibration point, as kelvin:raw")
	chart := flag.String("chart", "", "write a PNG strip chart to this file on exit")
	bar := flag.Bool("bar", true, "draw a live terminal gauge instead of logging")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	opts := chiptemp.DefaultOpts
	opts.Window = *window
	if *cal1 != "" || *cal2 != "" {
		p1, err := parsePoint(*cal1)
		if err != nil {
			return err
		}
		p2, err := parsePoint(*cal2)
		if err != nil {
			return err
		}
		opts.CalPoints = []chiptemp.CalPoint{p1, p2}
	}
	dev, err := chiptemp.NewI2C(b, uint16(*addr), &opts)
	if err != nil {
		return err
	}

	env, err := dev.SenseContinuous(*interval)
	if err != nil {
		return err
	}
	gauge := thermobar.New(nil)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	var series []physic.Temperature
	for {
		select {
		case e := <-env:
			series = append(series, e.Temperature)
			if *bar {
				if err := gauge.Render(e.Temperature); err != nil {
					return err
				}
			} else {
				log.Printf("%s (raw %d)", e.Temperature, dev.Raw())
			}
		case <-sig:
			if err := dev.Halt(); err != nil {
				return err
			}
			if *bar {
				if err := gauge.Halt(); err != nil {
					return err
				}
			}
			if *chart != "" {
				return thermochart.WritePNG(*chart, series, nil)
			}
			return nil
		}
	}
}

// parsePoint parses a "kelvin:raw" pair, e.g. "295:301".
func parsePoint(s string) (chiptemp.CalPoint, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return chiptemp.CalPoint{}, fmt.Errorf("calibration point %q is not kelvin:raw", s)
	}
	k, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return chiptemp.CalPoint{}, fmt.Errorf("calibration point %q: %v", s, err)
	}
	raw, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return chiptemp.CalPoint{}, fmt.Errorf("calibration point %q: %v", s, err)
	}
	return chiptemp.CalPointKelvin(uint16(k), uint16(raw)), nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "chiptemp: %s.\n", err)
		os.Exit(1)
	}
}
