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

package bridge

import (
	"io"
	"strings"
	"testing"

	em4102 "github.com/openlf/go-em4102"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testID = em4102.Identifier{Version: 0x12, Serial: 0x3456789A}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expected error
		name     string
		line     string
		id       em4102.Identifier
	}{
		{
			name: "Payload bytes with spaces",
			line: "12 34 56 78 9A",
			id:   testID,
		},
		{
			name: "Payload bytes packed",
			line: "123456789a",
			id:   testID,
		},
		{
			name: "Payload bytes with colons",
			line: "12:34:56:78:9A",
			id:   testID,
		},
		{
			name: "Raw frame word",
			line: "FF8CA64A98F8CA96",
			id:   testID,
		},
		{
			name:     "Wrong length",
			line:     "1234",
			expected: ErrBadLine,
		},
		{
			name:     "Not hex",
			line:     "tag not found!",
			expected: ErrBadLine,
		},
		{
			// A frame word with its stop bit set must fail the frame
			// checks, not silently yield an identifier.
			name:     "Corrupt frame word",
			line:     "FF8CA64A98F8CA97",
			expected: em4102.ErrStopBit,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := ParseLine(tt.line)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestReader_Next_SkipsNoise(t *testing.T) {
	t.Parallel()

	stream := strings.NewReader(
		"booting reader v1.2\n" +
			"\n" +
			"12 34 56 78 9A\n" +
			"garbage line\n" +
			"FF8CA64A98F8CA96\n")

	r, err := NewFromReader(stream)
	require.NoError(t, err)

	id, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, testID, id)

	id, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, testID, id)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_Next_Strict(t *testing.T) {
	t.Parallel()

	r, err := NewFromReader(strings.NewReader("garbage\n12 34 56 78 9A\n"), WithStrict())
	require.NoError(t, err)

	_, err = r.Next()
	assert.ErrorIs(t, err, ErrBadLine)
}

func TestWithBaudRate_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewFromReader(strings.NewReader(""), WithBaudRate(0))
	assert.Error(t, err)

	_, err = NewFromReader(strings.NewReader(""), WithBaudRate(115200))
	assert.NoError(t, err)
}

func TestReader_Close_NoPort(t *testing.T) {
	t.Parallel()

	r, err := NewFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.NoError(t, r.Close())
}
