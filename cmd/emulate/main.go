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

// Command emulate runs the EM4102 tag emulator, either against the
// cycle-exact simulator (-sim) or on real GPIO hardware.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	em4102 "github.com/openlf/go-em4102"
	"github.com/openlf/go-em4102/coil/gpio"
	"github.com/openlf/go-em4102/coil/sim"
)

// The stored identities. Build-time constants by design: an EM4102 tag
// has no runtime programming interface.
var identifiers = [3]em4102.Identifier{
	{Version: 0x12, Serial: 0x3456789A},
	{Version: 0x0B, Serial: 0x00016F81},
	{Version: 0x42, Serial: 0x1CEB00DA},
}

type config struct {
	coilPins   *string
	selectPins *string
	vcdPath    *string
	slot       *int
	frames     *int
	simulate   *bool
}

func parseFlags() *config {
	cfg := &config{
		simulate: flag.Bool("sim", false, "Run against the cycle-exact simulator instead of hardware"),
		slot:     flag.Int("slot", 0, "Identity slot to select in simulation mode (0-2)"),
		frames:   flag.Int("frames", 3, "Number of frames to emit in simulation mode"),
		vcdPath:  flag.String("vcd", "", "Write a VCD trace of the modulation line to this file (simulation mode)"),
		coilPins: flag.String("coil", "GPIO17,GPIO27",
			"Comma-separated pin names of the two coil lines"),
		selectPins: flag.String("selects", "GPIO5,GPIO6,GPIO13",
			"Comma-separated pin names of the three select switches"),
	}
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	var err error
	if *cfg.simulate {
		err = runSim(cfg)
	} else {
		err = runHardware(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "emulate: %v\n", err)
		os.Exit(1)
	}
}

func runSim(cfg *config) error {
	if *cfg.slot < 0 || *cfg.slot >= len(identifiers) {
		return fmt.Errorf("slot %d out of range", *cfg.slot)
	}
	if *cfg.frames < 1 {
		return fmt.Errorf("frame count %d out of range", *cfg.frames)
	}

	coil := sim.NewCoil()
	asm := em4102.NewAssembler(identifiers[*cfg.slot], coil)
	for i := 0; i < *cfg.frames; i++ {
		asm.EmitFrame()
	}

	halves, err := coil.HalfBits(em4102.HalfBitCycles)
	if err != nil {
		return fmt.Errorf("timing check failed: %w", err)
	}
	bits, err := sim.Demodulate(halves)
	if err != nil {
		return fmt.Errorf("demodulation failed: %w", err)
	}

	fmt.Printf("emitted %d frames, %d carrier cycles, %d half-bits\n",
		*cfg.frames, coil.Cycles(), len(halves))
	for i := 0; i+em4102.FrameBits <= len(bits); i += em4102.FrameBits {
		frame, err := em4102.FrameFromBits(bits[i : i+em4102.FrameBits])
		if err != nil {
			return err
		}
		id, err := em4102.DecodeFrame(frame)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i/em4102.FrameBits, err)
		}
		fmt.Printf("frame %d: %s -> %s\n", i/em4102.FrameBits, frame, id)
	}

	if *cfg.vcdPath != "" {
		f, err := os.Create(*cfg.vcdPath)
		if err != nil {
			return fmt.Errorf("failed to create VCD file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := coil.WriteVCD(f, em4102.CarrierPeriod); err != nil {
			return err
		}
		fmt.Printf("wrote trace to %s\n", *cfg.vcdPath)
	}
	return nil
}

func runHardware(cfg *config) error {
	coilNames := strings.Split(*cfg.coilPins, ",")
	if len(coilNames) != 2 {
		return fmt.Errorf("expected two coil pins, got %q", *cfg.coilPins)
	}
	selectNames := strings.Split(*cfg.selectPins, ",")
	if len(selectNames) != len(identifiers) {
		return fmt.Errorf("expected %d select pins, got %q", len(identifiers), *cfg.selectPins)
	}

	coil, err := gpio.NewCoil(coilNames[0], coilNames[1])
	if err != nil {
		return err
	}
	defer func() { _ = coil.Close() }()

	slots := make([]em4102.Slot, 0, len(identifiers))
	for i, id := range identifiers {
		input, err := gpio.NewSelect(selectNames[i])
		if err != nil {
			return err
		}
		slots = append(slots, em4102.Slot{
			Input:     input,
			Assembler: em4102.NewAssembler(id, coil),
		})
	}

	if err := gpio.LockTiming(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("polling select switches; press one to start broadcasting")
	err = em4102.NewSelector(slots...).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
