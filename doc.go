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

/*
Package em4102 emulates a passive 125 kHz EM4102 RFID tag.

An EM4102 tag has no oscillator of its own: the reader's carrier field both
powers it and clocks it. The tag answers by shorting its coil, which
attenuates the field in a pattern the reader demodulates. This package
reconstructs that behavior in software: a fixed 64-bit frame (9-bit header,
ten row groups of four data bits plus a row-parity bit, four column-parity
bits, one stop bit) is Manchester encoded into 128 half-bit symbols and
driven onto a coil, every half-bit lasting exactly 32 carrier cycles.

The physical coil sits behind the Driver interface. Two implementations are
provided:

  - coil/gpio: two GPIO lines tied to a resonant coil, via periph.io
  - coil/sim: a cycle-exact simulated coil for offline validation

Basic usage:

	import (
	    "github.com/openlf/go-em4102"
	    "github.com/openlf/go-em4102/coil/sim"
	)

	coil := sim.NewCoil()
	asm := em4102.NewAssembler(em4102.Identifier{Version: 0x12, Serial: 0x3456789A}, coil)
	asm.EmitFrame()

	halves, err := coil.HalfBits(em4102.HalfBitCycles)
	if err != nil {
	    log.Fatal(err)
	}

On hardware the tag runs forever once a slot is selected:

	sel := em4102.NewSelector(
	    em4102.Slot{Input: btn0, Assembler: asm0},
	    em4102.Slot{Input: btn1, Assembler: asm1},
	)
	err := sel.Run(ctx) // returns only when the field (context) is lost

Timing:

Every half-bit costs exactly HalfBitCycles carrier cycles, for both drive
states. The emitter has a single code path per half-bit, so the symmetry
holds by construction; coil/sim verifies it cycle by cycle. There is no
inter-frame gap: the stop bit of one frame is followed immediately by the
header of the next.

Frame integrity:

BuildFrame and DecodeFrame are exact inverses for every identifier.
DecodeFrame validates the header, the stop bit, all ten row parities and
the four column parities, returning a sentinel error for the first
violation found:

	if errors.Is(err, em4102.ErrRowParity) {
	    // corrupted row group
	}

The emulator is a continuous broadcaster. There is no command channel, no
acknowledgment and no retry: a receiver simply waits for the next of the
endlessly repeated frames.
*/
package em4102
