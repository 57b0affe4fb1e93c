// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// periphBus adapts a periph.io I2C bus to Bus. Every capability is a
// single Tx, so WriteRead uses a repeated start.
type periphBus struct {
	bus i2c.Bus
}

func (p periphBus) Write(addr uint16, w []byte) error {
	return p.bus.Tx(addr, w, nil)
}

func (p periphBus) Read(addr uint16, r []byte) error {
	return p.bus.Tx(addr, nil, r)
}

func (p periphBus) WriteRead(addr uint16, w, r []byte) error {
	return p.bus.Tx(addr, w, r)
}

// NewI2C discovers a LIS3MDL on a periph.io I2C bus. The bus must already
// be opened; it is not closed by Dev.Close.
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, bool, error) {
	return Discover(periphBus{bus: bus}, opts)
}

// Open initializes the periph host drivers, opens the named I2C bus ("" for
// the first one) and discovers a LIS3MDL on it. The returned Dev owns the
// bus; Close releases it. When no device answers the bus is closed again.
func Open(name string, opts *Opts) (*Dev, bool, error) {
	if _, err := host.Init(); err != nil {
		return nil, false, fmt.Errorf("lis3mdl: periph host init: %w", err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, false, fmt.Errorf("lis3mdl: i2c open %q: %w", name, err)
	}
	d, found, err := NewI2C(bus, opts)
	if err != nil || !found {
		bus.Close()
		return nil, false, err
	}
	d.closer = bus
	return d, true, nil
}
