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

// Package bridge consumes the output of a serial reader sketch: a
// microcontroller listening to a tag's Manchester stream and printing
// one line of hex per decoded capture. The bridge parses those lines
// back into identifiers, re-running the frame integrity checks when the
// sketch prints raw frame words.
//
// Two line shapes are accepted, with spaces and colons ignored:
//
//	12 34 56 78 9A      five payload bytes (version + serial)
//	FF8CA64A98F8CA96    one raw 64-bit frame word
//
// Raw frame words go through em4102.DecodeFrame, so header, stop bit and
// both parity layers are verified against the live capture.
package bridge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	em4102 "github.com/openlf/go-em4102"
	"go.bug.st/serial"
)

const defaultBaudRate = 9600

// ErrBadLine indicates a reader line that is neither a payload dump nor
// a frame word.
var ErrBadLine = errors.New("unparseable reader line")

// Reader parses identifiers from a reader sketch's serial stream.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	baud    int
	strict  bool
}

// Option is a functional option for configuring a Reader.
type Option func(*Reader) error

// WithBaudRate sets the serial baud rate (default 9600, matching the
// reference sketch).
func WithBaudRate(baud int) Option {
	return func(r *Reader) error {
		if baud <= 0 {
			return fmt.Errorf("invalid baud rate %d", baud)
		}
		r.baud = baud
		return nil
	}
}

// WithStrict makes Next return ErrBadLine for malformed lines instead
// of silently skipping them.
func WithStrict() Option {
	return func(r *Reader) error {
		r.strict = true
		return nil
	}
}

// New opens the serial device at path and returns a Reader over it.
func New(path string, opts ...Option) (*Reader, error) {
	r := &Reader{baud: defaultBaudRate}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	port, err := serial.Open(path, &serial.Mode{BaudRate: r.baud})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}
	r.scanner = bufio.NewScanner(port)
	r.closer = port
	return r, nil
}

// NewFromReader returns a Reader over an arbitrary stream. Used by tests
// and by anything that captures sketch output to a file first.
func NewFromReader(rd io.Reader, opts ...Option) (*Reader, error) {
	r := &Reader{baud: defaultBaudRate}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.scanner = bufio.NewScanner(rd)
	return r, nil
}

// Next blocks until the stream yields the next decodable identifier.
// It returns io.EOF when the stream ends. In strict mode any malformed
// line is returned as an error wrapping ErrBadLine.
func (r *Reader) Next() (em4102.Identifier, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		id, err := ParseLine(line)
		if err != nil {
			if r.strict {
				return em4102.Identifier{}, err
			}
			continue
		}
		return id, nil
	}
	if err := r.scanner.Err(); err != nil {
		return em4102.Identifier{}, fmt.Errorf("failed to read serial stream: %w", err)
	}
	return em4102.Identifier{}, io.EOF
}

// Close closes the underlying serial port, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("failed to close serial port: %w", err)
	}
	return nil
}

// ParseLine decodes a single reader line into an identifier.
func ParseLine(line string) (em4102.Identifier, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == ':' || r == '\t' {
			return -1
		}
		return r
	}, line)

	switch len(clean) {
	case 10: // version byte + serial, as hex nibbles
		v, err := strconv.ParseUint(clean, 16, 64)
		if err != nil {
			return em4102.Identifier{}, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		return em4102.Identifier{
			Version: uint8(v >> 32),
			Serial:  uint32(v),
		}, nil
	case 16: // raw frame word, revalidated in full
		w, err := strconv.ParseUint(clean, 16, 64)
		if err != nil {
			return em4102.Identifier{}, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		id, err := em4102.DecodeFrame(em4102.Frame(w))
		if err != nil {
			return em4102.Identifier{}, fmt.Errorf("frame %016X: %w", w, err)
		}
		return id, nil
	default:
		return em4102.Identifier{}, fmt.Errorf("%w: %q", ErrBadLine, line)
	}
}

// Ports lists the serial ports available on the host.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}
	return ports, nil
}
