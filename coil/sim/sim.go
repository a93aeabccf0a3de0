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

// Package sim provides a cycle-exact simulated coil for validating the
// emulator's timing offline, the way the original hardware was checked
// against an instruction-level simulator before ever meeting a reader.
//
// The simulated Coil advances an abstract carrier-cycle counter instead
// of waiting on a wall clock, and records every drive segment with its
// exact cycle cost. Timing bugs that a real reader would surface as a
// failure to lock therefore show up here as hard errors: a segment that
// is even one cycle off the half-bit budget fails HalfBits.
package sim

import (
	"errors"
	"fmt"
)

// Segment is one stretch of constant coil drive.
type Segment struct {
	// Modulated reports whether the coil was shorted (field attenuated)
	// during the segment.
	Modulated bool
	// Cycles is the exact carrier-cycle cost of the segment.
	Cycles uint
}

// Simulation errors.
var (
	// ErrRaggedSegment indicates a drive segment whose cycle cost is not
	// exactly the half-bit budget.
	ErrRaggedSegment = errors.New("segment off the half-bit budget")
	// ErrOddStream indicates a half-bit stream that does not pair up
	// into whole Manchester bits.
	ErrOddStream = errors.New("odd number of half-bits")
	// ErrMissingTransition indicates a Manchester bit without its
	// mid-bit transition.
	ErrMissingTransition = errors.New("missing mid-bit transition")
)

// Coil is a simulated tag coil implementing the em4102.Driver interface.
// The zero value is ready to use with the field passing undisturbed.
//
// Coil is not safe for concurrent use; like the physical pins it stands
// in for, it is owned by exactly one assembler at a time.
type Coil struct {
	segments []Segment
	cycle    uint64
	state    bool
}

// NewCoil creates an idle simulated coil.
func NewCoil() *Coil {
	return &Coil{}
}

// SetModulation sets the drive state for subsequent cycles.
func (c *Coil) SetModulation(on bool) {
	c.state = on
}

// Hold advances the simulation by exactly cycles carrier cycles,
// recording the drive segment. Unlike a hardware driver there is
// nothing to wait for; the counter is the clock.
func (c *Coil) Hold(cycles uint) {
	c.segments = append(c.segments, Segment{Modulated: c.state, Cycles: cycles})
	c.cycle += uint64(cycles)
}

// Cycles returns the total carrier cycles elapsed.
func (c *Coil) Cycles() uint64 {
	return c.cycle
}

// Segments returns the recorded drive segments in emission order.
func (c *Coil) Segments() []Segment {
	return c.segments
}

// Reset discards the recording and returns the coil to idle.
func (c *Coil) Reset() {
	c.segments = nil
	c.cycle = 0
	c.state = false
}

// HalfBits samples the recording into half-bit symbols, enforcing that
// every segment cost exactly budget cycles. true means the field was
// attenuated. This is the timing-symmetry check: any emission path that
// spends a different number of cycles for one bit value than the other
// surfaces here as ErrRaggedSegment.
func (c *Coil) HalfBits(budget uint) ([]bool, error) {
	halves := make([]bool, 0, len(c.segments))
	for i, s := range c.segments {
		if s.Cycles != budget {
			return nil, fmt.Errorf("%w: segment %d cost %d cycles, want %d",
				ErrRaggedSegment, i, s.Cycles, budget)
		}
		halves = append(halves, s.Modulated)
	}
	return halves, nil
}
