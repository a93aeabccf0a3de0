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
	"errors"
	"fmt"
	"math/bits"
)

// Air-interface frame layout. The frame is always exactly FrameBits
// logical bits; its shape never varies at runtime.
const (
	headerValue  = 0x1FF // 9 consecutive 1 bits
	headerBits   = 9
	rowGroupBits = 5
	columnBits   = 4
	stopBits     = 1

	// FrameBits is the fixed logical length of a frame:
	// header + 10 row groups + column parity + stop.
	FrameBits = headerBits + PayloadNibbles*rowGroupBits + columnBits + stopBits
)

// Frame is a complete 64-bit air-interface frame, most significant bit
// transmitted first.
type Frame uint64

// Frame validation errors.
var (
	// ErrFrameLength indicates a bit stream that is not exactly FrameBits long.
	ErrFrameLength = errors.New("frame is not 64 bits")
	// ErrHeader indicates the frame does not start with nine 1 bits.
	ErrHeader = errors.New("invalid frame header")
	// ErrStopBit indicates a frame whose final bit is not 0.
	ErrStopBit = errors.New("invalid stop bit")
	// ErrRowParity indicates a row group with an odd number of set bits.
	ErrRowParity = errors.New("row parity check failed")
	// ErrColumnParity indicates a column-parity mismatch.
	ErrColumnParity = errors.New("column parity check failed")
)

// BuildFrame assembles the frame for an identifier: the all-ones header,
// ten parity-augmented row groups, the column-parity group and the stop
// bit, packed MSB-first.
func BuildFrame(id Identifier) Frame {
	f := uint64(headerValue)
	for _, g := range rowGroups(id) {
		f = f<<rowGroupBits | uint64(g)
	}
	nibbles := id.Nibbles()
	f = f<<columnBits | uint64(ColumnParity(nibbles[:]))
	f <<= stopBits // stop bit is 0
	return Frame(f)
}

// Bit returns logical bit i of the frame, where bit 0 is transmitted
// first (the MSB).
func (f Frame) Bit(i int) uint8 {
	return uint8(f>>(FrameBits-1-i)) & 1
}

// Bits returns all 64 logical bits in transmission order.
func (f Frame) Bits() [FrameBits]uint8 {
	var b [FrameBits]uint8
	for i := range b {
		b[i] = f.Bit(i)
	}
	return b
}

// String returns the frame as a 16-digit hex word.
func (f Frame) String() string {
	return fmt.Sprintf("%016X", uint64(f))
}

// FrameFromBits packs a 64-entry bit slice (transmission order, values
// 0 or 1) into a Frame.
func FrameFromBits(bitstream []uint8) (Frame, error) {
	if len(bitstream) != FrameBits {
		return 0, fmt.Errorf("%w: got %d bits", ErrFrameLength, len(bitstream))
	}
	var f uint64
	for _, b := range bitstream {
		f = f<<1 | uint64(b&1)
	}
	return Frame(f), nil
}

// DecodeFrame validates a frame and recovers its identifier. It is the
// exact inverse of BuildFrame: header, stop bit, all ten row parities
// and the column parities are checked, and the first violation is
// reported through one of the sentinel errors above.
func DecodeFrame(f Frame) (Identifier, error) {
	w := uint64(f)
	if w>>(FrameBits-headerBits) != headerValue {
		return Identifier{}, ErrHeader
	}
	if w&1 != 0 {
		return Identifier{}, ErrStopBit
	}

	var nibbles [PayloadNibbles]uint8
	for i := 0; i < PayloadNibbles; i++ {
		shift := uint(stopBits + columnBits + rowGroupBits*(PayloadNibbles-1-i))
		group := uint8(w>>shift) & 0x1F
		if bits.OnesCount8(group)%2 != 0 {
			return Identifier{}, fmt.Errorf("%w: group %d", ErrRowParity, i)
		}
		nibbles[i] = group >> 1
	}

	columns := uint8(w>>stopBits) & 0xF
	if ColumnParity(nibbles[:]) != columns {
		return Identifier{}, ErrColumnParity
	}

	id := Identifier{Version: nibbles[0]<<4 | nibbles[1]}
	for _, n := range nibbles[2:] {
		id.Serial = id.Serial<<4 | uint32(n)
	}
	return id, nil
}
