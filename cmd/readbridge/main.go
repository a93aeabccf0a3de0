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

// Command readbridge tails a serial reader sketch and prints every
// identifier it captures from the air.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/openlf/go-em4102/bridge"
)

type config struct {
	devicePath *string
	baud       *int
	strict     *bool
	list       *bool
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "",
			"Serial device path (e.g. /dev/ttyUSB0 or COM3). Leave empty to list ports."),
		baud:   flag.Int("baud", 9600, "Serial baud rate of the reader sketch"),
		strict: flag.Bool("strict", false, "Fail on malformed reader lines instead of skipping them"),
		list:   flag.Bool("list", false, "List available serial ports and exit"),
	}
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	if *cfg.list || *cfg.devicePath == "" {
		if err := listPorts(); err != nil {
			fmt.Fprintf(os.Stderr, "readbridge: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "readbridge: %v\n", err)
		os.Exit(1)
	}
}

func listPorts() error {
	ports, err := bridge.Ports()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

func run(cfg *config) error {
	opts := []bridge.Option{bridge.WithBaudRate(*cfg.baud)}
	if *cfg.strict {
		opts = append(opts, bridge.WithStrict())
	}

	r, err := bridge.New(*cfg.devicePath, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	fmt.Printf("listening on %s\n", *cfg.devicePath)
	for {
		id, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("tag %s\n", id)
	}
}
