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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier_Nibbles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       Identifier
		expected [PayloadNibbles]uint8
	}{
		{
			name:     "Reference identifier",
			id:       Identifier{Version: 0x12, Serial: 0x3456789A},
			expected: [PayloadNibbles]uint8{0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xA},
		},
		{
			name:     "All zero",
			id:       Identifier{},
			expected: [PayloadNibbles]uint8{},
		},
		{
			name:     "All ones",
			id:       Identifier{Version: 0xFF, Serial: 0xFFFFFFFF},
			expected: [PayloadNibbles]uint8{0xF, 0xF, 0xF, 0xF, 0xF, 0xF, 0xF, 0xF, 0xF, 0xF},
		},
		{
			name:     "Version before serial, most significant first",
			id:       Identifier{Version: 0xAB, Serial: 0x01020304},
			expected: [PayloadNibbles]uint8{0xA, 0xB, 0x0, 0x1, 0x0, 0x2, 0x0, 0x3, 0x0, 0x4},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.id.Nibbles())
		})
	}
}

func TestIdentifier_String(t *testing.T) {
	t.Parallel()

	id := Identifier{Version: 0x12, Serial: 0x3456789A}
	assert.Equal(t, "12:3456789A", id.String())
}
