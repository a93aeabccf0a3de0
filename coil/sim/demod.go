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

package sim

import "fmt"

// Demodulate applies the single fixed de-Manchester rule a reader uses:
// each pair of half-bits must straddle a transition, and a bit whose
// second half attenuates the field is a logical 1. The stream must start
// on a bit boundary.
func Demodulate(halves []bool) ([]uint8, error) {
	if len(halves)%2 != 0 {
		return nil, fmt.Errorf("%w: %d half-bits", ErrOddStream, len(halves))
	}
	bits := make([]uint8, 0, len(halves)/2)
	for i := 0; i < len(halves); i += 2 {
		first, second := halves[i], halves[i+1]
		if first == second {
			return nil, fmt.Errorf("%w: bit %d", ErrMissingTransition, i/2)
		}
		if second {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return bits, nil
}
