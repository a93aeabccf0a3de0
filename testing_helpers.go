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

// MockDriver is a Driver that records every call for test assertions.
// It performs no timing; coil/sim is the cycle-accounting counterpart.
type MockDriver struct {
	// States holds the SetModulation arguments in call order.
	States []bool
	// Holds holds the Hold arguments in call order.
	Holds []uint
}

// NewMockDriver creates an empty mock driver.
func NewMockDriver() *MockDriver {
	return &MockDriver{}
}

// SetModulation records the requested drive state.
func (m *MockDriver) SetModulation(on bool) {
	m.States = append(m.States, on)
}

// Hold records the requested cycle count.
func (m *MockDriver) Hold(cycles uint) {
	m.Holds = append(m.Holds, cycles)
}

// Reset clears the recorded calls.
func (m *MockDriver) Reset() {
	m.States = m.States[:0]
	m.Holds = m.Holds[:0]
}
