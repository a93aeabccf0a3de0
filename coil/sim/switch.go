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

import "sync/atomic"

// Switch is a simulated select input implementing em4102.SelectInput.
// The zero value is released. It is safe to press and release from a
// different goroutine than the one polling it.
type Switch struct {
	pressed atomic.Bool
}

// Press asserts the input.
func (s *Switch) Press() {
	s.pressed.Store(true)
}

// Release deasserts the input.
func (s *Switch) Release() {
	s.pressed.Store(false)
}

// Asserted reports whether the input is pressed.
func (s *Switch) Asserted() bool {
	return s.pressed.Load()
}
