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

import "context"

// Assembler is the frame state machine for one stored identifier:
// HEADER, ten row groups, column parity, stop, and back to HEADER,
// forever. It is a continuous broadcaster; nothing it emits is ever
// acknowledged and no state outlives the field that powers it.
//
// Both parity derivations happen once, here, at construction. Emission
// itself does no arithmetic beyond shift and mask, so the per-bit cycle
// budget is never at risk from parity math.
type Assembler struct {
	emitter *BitEmitter
	id      Identifier
	rows    [PayloadNibbles]uint8
	columns uint8
}

// NewAssembler creates an assembler bound to an identifier and a coil.
func NewAssembler(id Identifier, drv Driver) *Assembler {
	nibbles := id.Nibbles()
	return &Assembler{
		emitter: NewBitEmitter(drv),
		id:      id,
		rows:    rowGroups(id),
		columns: ColumnParity(nibbles[:]),
	}
}

// Identifier returns the identity this assembler broadcasts.
func (a *Assembler) Identifier() Identifier {
	return a.id
}

// EmitFrame emits exactly one 64-bit frame: 128 half-bits, FrameCycles
// carrier cycles.
func (a *Assembler) EmitFrame() {
	a.emitter.EmitField(headerValue, headerBits)
	for _, g := range a.rows {
		a.emitter.EmitField(uint64(g), rowGroupBits)
	}
	a.emitter.EmitField(uint64(a.columns), columnBits)
	a.emitter.EmitField(0, stopBits)
}

// Run broadcasts frames back to back until the context ends, which on a
// real tag only happens when the reader's field collapses. There is no
// other exit and no completion signal.
//
// The cancellation check sits on the frame boundary, after the stop bit.
// Hold deadlines accumulate from the previous deadline, so the check's
// cost is absorbed before the next header half-bit and the air interface
// stays gapless.
func (a *Assembler) Run(ctx context.Context) error {
	for {
		a.EmitFrame()
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}
