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
	"context"
	"runtime"
)

// Slot binds one select input to the assembler it dispatches.
type Slot struct {
	Input     SelectInput
	Assembler *Assembler
}

// Selector is the power-on dispatch loop: it polls the select inputs
// and hands control to the first asserted slot's assembler. Because the
// assembler never returns, selection is effectively one-shot — the tag
// commits to an identity until the field is lost.
type Selector struct {
	slots []Slot
}

// NewSelector creates a selector over the given slots.
func NewSelector(slots ...Slot) *Selector {
	return &Selector{slots: slots}
}

// Run polls until a slot is asserted, then runs that slot's assembler
// until the context ends. With no slot asserted it keeps polling and
// emits nothing.
//
// If several inputs are asserted at once, the first asserted slot in
// registration order wins. First-checked-wins is the policy the original
// hardware shipped with; it is kept here deliberately and pinned by
// tests rather than left to polling-order accident.
func (s *Selector) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for _, slot := range s.slots {
			if slot.Input.Asserted() {
				return slot.Assembler.Run(ctx)
			}
		}
		runtime.Gosched()
	}
}
