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
	"github.com/stretchr/testify/require"
)

// referenceID and referenceFrame were computed independently of this
// package (by hand and cross-checked with an offline script) from the
// row/column parity formulas.
var (
	referenceID    = Identifier{Version: 0x12, Serial: 0x3456789A}
	referenceFrame = Frame(0xFF8CA64A98F8CA96)
)

func TestBuildFrame_ReferenceVector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, referenceFrame, BuildFrame(referenceID))
	assert.Equal(t, "FF8CA64A98F8CA96", BuildFrame(referenceID).String())
}

func TestBuildFrame_HeaderAndStopShape(t *testing.T) {
	t.Parallel()

	ids := []Identifier{
		{},
		{Version: 0xFF, Serial: 0xFFFFFFFF},
		referenceID,
		{Version: 0x0B, Serial: 0x00016F81},
	}

	for _, id := range ids {
		f := BuildFrame(id)
		for i := 0; i < headerBits; i++ {
			assert.EqualValues(t, 1, f.Bit(i), "header bit %d of %s", i, f)
		}
		assert.EqualValues(t, 0, f.Bit(FrameBits-1), "stop bit of %s", f)
	}
}

func TestFrame_BitsRoundTrip(t *testing.T) {
	t.Parallel()

	f := BuildFrame(referenceID)
	b := f.Bits()

	back, err := FrameFromBits(b[:])
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestFrameFromBits_Length(t *testing.T) {
	t.Parallel()

	_, err := FrameFromBits(make([]uint8, 63))
	assert.ErrorIs(t, err, ErrFrameLength)

	_, err = FrameFromBits(make([]uint8, 65))
	assert.ErrorIs(t, err, ErrFrameLength)
}

func TestDecodeFrame_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   Identifier
	}{
		{name: "Reference identifier", id: referenceID},
		{name: "All zero", id: Identifier{}},
		{name: "All ones", id: Identifier{Version: 0xFF, Serial: 0xFFFFFFFF}},
		{name: "Second slot", id: Identifier{Version: 0x0B, Serial: 0x00016F81}},
		{name: "Third slot", id: Identifier{Version: 0x42, Serial: 0x1CEB00DA}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := DecodeFrame(BuildFrame(tt.id))
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestDecodeFrame_Corruption(t *testing.T) {
	t.Parallel()

	base := uint64(BuildFrame(referenceID))

	tests := []struct {
		expected error
		name     string
		frame    uint64
	}{
		{
			name:     "Cleared header bit",
			frame:    base &^ (1 << 60),
			expected: ErrHeader,
		},
		{
			name:     "Set stop bit",
			frame:    base | 1,
			expected: ErrStopBit,
		},
		{
			// One flipped bit inside a row group makes its parity odd.
			name:     "Flipped data bit",
			frame:    base ^ (1 << 52),
			expected: ErrRowParity,
		},
		{
			// Two flips in the same group keep its parity even but move
			// two columns, so only the column check can catch it.
			name:     "Double flip in one group",
			frame:    base ^ (0b11 << 53),
			expected: ErrColumnParity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeFrame(Frame(tt.frame))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
