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

import (
	"fmt"
	"io"
	"time"
)

// WriteVCD dumps the recorded modulation line as a value-change-dump
// trace, one wire, suitable for GTKWave. cyclePeriod is the wall-clock
// length of one carrier cycle (em4102.CarrierPeriod for a 125 kHz
// field); timestamps are emitted in nanoseconds.
func (c *Coil) WriteVCD(w io.Writer, cyclePeriod time.Duration) error {
	if _, err := fmt.Fprintf(w, "$timescale 1 ns $end\n"+
		"$scope module em4102 $end\n"+
		"$var wire 1 m mod $end\n"+
		"$upscope $end\n"+
		"$enddefinitions $end\n"); err != nil {
		return fmt.Errorf("write vcd header: %w", err)
	}

	ns := cyclePeriod.Nanoseconds()
	var cycle uint64
	last := false
	if _, err := fmt.Fprintf(w, "#0 0m\n"); err != nil {
		return fmt.Errorf("write vcd sample: %w", err)
	}
	for _, s := range c.segments {
		if s.Modulated != last {
			if _, err := fmt.Fprintf(w, "#%d %dm\n", int64(cycle)*ns, boolBit(s.Modulated)); err != nil {
				return fmt.Errorf("write vcd sample: %w", err)
			}
			last = s.Modulated
		}
		cycle += uint64(s.Cycles)
	}
	if _, err := fmt.Fprintf(w, "#%d %dm\n", int64(cycle)*ns, boolBit(last)); err != nil {
		return fmt.Errorf("write vcd sample: %w", err)
	}
	return nil
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
