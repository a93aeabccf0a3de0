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

package em4102

import "time"

// Carrier timing. The reader's field is the only clock the tag has, so
// every duration in the protocol is expressed in carrier cycles.
const (
	// CarrierHz is the reader carrier frequency.
	CarrierHz = 125_000

	// CarrierPeriod is the wall-clock duration of one carrier cycle (8µs).
	CarrierPeriod = time.Second / CarrierHz

	// CyclesPerBit is the carrier budget of one logical bit. The EM4102
	// bit rate is carrier/64.
	CyclesPerBit = 64

	// HalfBitCycles is the carrier budget of one baseband half-bit.
	HalfBitCycles = CyclesPerBit / 2

	// FrameCycles is the carrier budget of one full frame.
	FrameCycles = FrameBits * CyclesPerBit
)

// Driver is the physical coil interface of the tag. Implementations live
// in the coil subpackages: coil/gpio for real hardware, coil/sim for the
// cycle-exact simulator.
//
// Neither method may fail or return early: the protocol has no notion of
// a recoverable transmit error, and Hold deadlines are what carry the
// frame timing.
type Driver interface {
	// SetModulation sets the coil drive state. true shorts the coil and
	// attenuates the reader's field; false releases it and lets the
	// field pass.
	SetModulation(on bool)

	// Hold blocks until exactly cycles carrier cycles have elapsed since
	// the previous Hold deadline. Accounting against the previous
	// deadline, not the call time, keeps the cost of the surrounding
	// code out of the air-interface timing.
	Hold(cycles uint)
}

// SelectInput is one identity-selection line. On hardware this is a
// momentary switch with an internal pull-up, asserted when pulled low.
type SelectInput interface {
	Asserted() bool
}
