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

import "fmt"

// PayloadNibbles is the number of 4-bit payload nibbles in a frame:
// two for the version code and eight for the serial number.
const PayloadNibbles = 10

// Identifier is the 40-bit identity an EM4102 tag broadcasts: an 8-bit
// version (or manufacturer) code followed by a 32-bit serial number.
//
// Identifiers are immutable values fixed at build time. The emulator
// never mutates or persists them.
type Identifier struct {
	Version uint8
	Serial  uint32
}

// Nibbles returns the payload decomposed into its ten 4-bit nibbles,
// most significant first, in air-interface transmission order.
func (id Identifier) Nibbles() [PayloadNibbles]uint8 {
	var n [PayloadNibbles]uint8
	n[0] = id.Version >> 4
	n[1] = id.Version & 0xF
	for i := 0; i < 8; i++ {
		n[2+i] = uint8(id.Serial>>(4*(7-i))) & 0xF
	}
	return n
}

// String returns the identifier as hex, version then serial.
func (id Identifier) String() string {
	return fmt.Sprintf("%02X:%08X", id.Version, id.Serial)
}
