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

import "math/bits"

// RowParity expands a 4-bit nibble into its 5-bit row group: the nibble
// shifted left one position with an even-parity bit appended, so the
// group always carries an even number of set bits.
func RowParity(nibble uint8) uint8 {
	n := nibble & 0xF
	return n<<1 | uint8(bits.OnesCount8(n)&1)
}

// ColumnParity XOR-reduces each of the four bit positions across the
// given nibbles, yielding the 4-bit column-parity group transmitted
// just before the stop bit.
func ColumnParity(nibbles []uint8) uint8 {
	var p uint8
	for _, n := range nibbles {
		p ^= n & 0xF
	}
	return p
}

// rowGroups derives all ten row groups for an identifier.
func rowGroups(id Identifier) [PayloadNibbles]uint8 {
	nibbles := id.Nibbles()
	var groups [PayloadNibbles]uint8
	for i, n := range nibbles {
		groups[i] = RowParity(n)
	}
	return groups
}
