// go-em4102
// Copyright (c) 2025 The OpenLF Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-em4102.
//
// go-em4102 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-em4102 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-em4102; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package gpio drives a real tag coil and select switches through GPIO
// lines via periph.io.
//
// The coil hangs across two lines: driving both to ground presents a low
// impedance that attenuates the reader's field, releasing both to
// high-impedance inputs lets the field pass. Select switches are
// momentary buttons against ground with the internal pull-up enabled.
//
// A general-purpose OS cannot truly count carrier cycles, so Hold
// converts the cycle budget to wall-clock time (8µs per cycle at
// 125 kHz) and spins on an accumulated deadline. Accumulating from the
// previous deadline rather than from time.Now keeps long-run timing
// drift-free even though individual half-bits carry OS jitter. Call
// LockTiming before entering the emission loop to take page faults and
// thread migration out of that jitter.
package gpio

import (
	"fmt"
	"time"

	em4102 "github.com/openlf/go-em4102"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	_ em4102.Driver      = (*Coil)(nil)
	_ em4102.SelectInput = (*Select)(nil)
)

// Coil implements the em4102.Driver interface over two GPIO lines.
type Coil struct {
	deadline time.Time
	d1       gpio.PinIO
	d2       gpio.PinIO
}

// NewCoil opens the two coil lines by periph.io pin name (e.g. "GPIO17",
// "GPIO27") and releases them, letting the field pass.
func NewCoil(pin1, pin2 string) (*Coil, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	d1 := gpioreg.ByName(pin1)
	if d1 == nil {
		return nil, fmt.Errorf("no such pin: %s", pin1)
	}
	d2 := gpioreg.ByName(pin2)
	if d2 == nil {
		return nil, fmt.Errorf("no such pin: %s", pin2)
	}

	c := &Coil{d1: d1, d2: d2}
	if err := c.release(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetModulation shorts or releases the coil. Errors from the pin layer
// are ignored: the Driver contract has no failure path, and a pin that
// stops responding mid-frame is indistinguishable from field loss to the
// peer reader anyway.
func (c *Coil) SetModulation(on bool) {
	if on {
		_ = c.d1.Out(gpio.Low)
		_ = c.d2.Out(gpio.Low)
		return
	}
	_ = c.d1.In(gpio.Float, gpio.NoEdge)
	_ = c.d2.In(gpio.Float, gpio.NoEdge)
}

// Hold busy-waits until exactly cycles carrier cycles past the previous
// deadline. The first call anchors the deadline at the current time.
func (c *Coil) Hold(cycles uint) {
	if c.deadline.IsZero() {
		c.deadline = time.Now()
	}
	c.deadline = c.deadline.Add(time.Duration(cycles) * em4102.CarrierPeriod)
	for time.Now().Before(c.deadline) {
	}
}

// Close releases both coil lines.
func (c *Coil) Close() error {
	return c.release()
}

func (c *Coil) release() error {
	if err := c.d1.In(gpio.Float, gpio.NoEdge); err != nil {
		return fmt.Errorf("failed to release %s: %w", c.d1.Name(), err)
	}
	if err := c.d2.In(gpio.Float, gpio.NoEdge); err != nil {
		return fmt.Errorf("failed to release %s: %w", c.d2.Name(), err)
	}
	return nil
}

// Select implements the em4102.SelectInput interface over a GPIO line
// with the internal pull-up enabled; the input is asserted when the
// switch pulls it low.
type Select struct {
	pin gpio.PinIO
}

// NewSelect opens a select line by periph.io pin name.
func NewSelect(name string) (*Select, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %s", name)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("failed to configure %s as pulled-up input: %w", name, err)
	}
	return &Select{pin: pin}, nil
}

// Asserted reports whether the switch is pressed (line pulled low).
func (s *Select) Asserted() bool {
	return s.pin.Read() == gpio.Low
}
