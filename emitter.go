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

// BitEmitter turns logical bits into Manchester-coded coil drive.
//
// The invariant that everything else rests on: every half-bit costs
// exactly HalfBitCycles carrier cycles, for both drive states. There is
// one code path per half-bit regardless of the value emitted, so the
// symmetry cannot drift as the code changes.
type BitEmitter struct {
	drv Driver
}

// NewBitEmitter creates a bit emitter driving the given coil.
func NewBitEmitter(drv Driver) *BitEmitter {
	return &BitEmitter{drv: drv}
}

// EmitHalfBit drives the coil to the given state and holds it for one
// half-bit budget. It cannot fail; it unconditionally consumes its
// HalfBitCycles of carrier time.
func (e *BitEmitter) EmitHalfBit(modulated bool) {
	e.drv.SetModulation(modulated)
	e.drv.Hold(HalfBitCycles)
}

// EmitBit Manchester encodes one logical bit as two opposite half-bits.
// A 1 lets the field pass then attenuates it; a 0 is the mirror image.
// The mid-bit transition is what gives the reader its clock recovery.
func (e *BitEmitter) EmitBit(bit uint8) {
	e.EmitHalfBit(bit == 0)
	e.EmitHalfBit(bit != 0)
}

// EmitField emits the low width bits of value, most significant first,
// computing each bit by shift and mask. A zero width emits nothing and
// burns no carrier time.
func (e *BitEmitter) EmitField(value uint64, width uint) {
	for i := width; i > 0; i-- {
		e.EmitBit(uint8(value>>(i-1)) & 1)
	}
}
