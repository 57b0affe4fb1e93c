// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package lis3mdl drives the ST LIS3MDL 3-axis magnetometer over I2C.
//
// The driver locates the chip at one of its two SA1-selected addresses,
// reads and writes its configuration registers and decodes the signed
// 16-bit X, Y, Z output. It keeps no state besides the resolved address:
// every call is one blocking bus transaction (or two for read-modify-write
// setters).
//
// A Dev is not safe for concurrent use. A register read is an address
// write followed by a data read; callers sharing a Dev across goroutines
// must serialize access themselves.
//
// Datasheet: https://www.st.com/resource/en/datasheet/lis3mdl.pdf
package lis3mdl

import (
	"errors"
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3"
)

// Bus is the register-addressed channel the device sits on.
//
// WriteRead must present the write and the read to the device as one
// transaction (repeated start).
type Bus interface {
	Write(addr uint16, w []byte) error
	Read(addr uint16, r []byte) error
	WriteRead(addr uint16, w, r []byte) error
}

// ErrInvalidAddr is returned when Opts.Addr is not one of the two
// addresses the chip can answer at.
var ErrInvalidAddr = errors.New("lis3mdl: address must be 0x1C or 0x1E")

// Sample is one raw magnetometer reading in LSB. Divide by
// FullScale.Sensitivity to get gauss.
type Sample struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
	Z int16 `json:"z"`
}

// Dev is a handle to a discovered LIS3MDL.
type Dev struct {
	bus       Bus
	addr      uint16
	readyMask byte
	verbose   bool
	closer    io.Closer
}

// Discover probes AddrSA1High then AddrSA1Low and returns a Dev bound to
// the first address whose WHO_AM_I register reads WhoAmIValue.
//
// found is false, with a nil error, when no LIS3MDL answered. A bus error
// while probing is returned as is; the remaining address is not tried.
func Discover(bus Bus, opts *Opts) (*Dev, bool, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	candidates := []uint16{AddrSA1High, AddrSA1Low}
	switch opts.Addr {
	case 0:
	case AddrSA1High, AddrSA1Low:
		candidates = []uint16{opts.Addr}
	default:
		return nil, false, fmt.Errorf("%w, got 0x%02X", ErrInvalidAddr, opts.Addr)
	}

	for _, addr := range candidates {
		ok, err := probe(bus, addr)
		if err != nil {
			return nil, false, fmt.Errorf("lis3mdl: probe 0x%02X: %w", addr, err)
		}
		if !ok {
			if opts.Verbose {
				log.Printf("lis3mdl: no device at 0x%02X", addr)
			}
			continue
		}
		d := &Dev{
			bus:       bus,
			addr:      addr,
			readyMask: opts.ReadyMask,
			verbose:   opts.Verbose,
		}
		if d.readyMask == 0 {
			d.readyMask = StatusZYXDA
		}
		if opts.Verbose {
			log.Printf("lis3mdl: found device at 0x%02X", addr)
		}
		return d, true, nil
	}
	return nil, false, nil
}

// probe reports whether the chip at addr identifies as a LIS3MDL.
func probe(bus Bus, addr uint16) (bool, error) {
	// Anything but WhoAmIValue, so a read that leaves the buffer untouched
	// is not mistaken for a match.
	resp := []byte{WhoAmIValue + 1}
	if err := bus.WriteRead(addr, []byte{RegWhoAmI}, resp); err != nil {
		return false, err
	}
	return resp[0] == WhoAmIValue, nil
}

// Addr returns the address the device was found at.
func (d *Dev) Addr() uint16 {
	return d.addr
}

func (d *Dev) String() string {
	return fmt.Sprintf("LIS3MDL{0x%02x}", d.addr)
}

// WriteRegister sets reg to value.
func (d *Dev) WriteRegister(reg, value byte) error {
	if err := d.bus.Write(d.addr, []byte{reg, value}); err != nil {
		return fmt.Errorf("lis3mdl: write 0x%02X: %w", reg, err)
	}
	if d.verbose {
		log.Printf("lis3mdl: 0x%02X <- 0x%02X", reg, value)
	}
	return nil
}

// ReadRegister returns the content of reg.
func (d *Dev) ReadRegister(reg byte) (byte, error) {
	resp := []byte{0}
	if err := d.bus.WriteRead(d.addr, []byte{reg}, resp); err != nil {
		return 0, fmt.Errorf("lis3mdl: read 0x%02X: %w", reg, err)
	}
	return resp[0], nil
}

// ReadRegisters fills out with consecutive registers starting at reg.
// It relies on the chip auto-incrementing the register address.
func (d *Dev) ReadRegisters(reg byte, out []byte) error {
	if len(out) == 0 {
		return errors.New("lis3mdl: ReadRegisters: empty buffer")
	}
	if err := d.bus.WriteRead(d.addr, []byte{reg}, out); err != nil {
		return fmt.Errorf("lis3mdl: read 0x%02X+%d: %w", reg, len(out), err)
	}
	return nil
}

// Sense returns the latest sample. ready is false, with a nil error, when
// the status register does not flag new data yet; calling again right
// away is fine.
//
// The six output bytes are fetched in a single burst, which requires the
// chip to auto-increment the register address.
func (d *Dev) Sense() (s Sample, ready bool, err error) {
	status, err := d.ReadRegister(RegStatus)
	if err != nil {
		return Sample{}, false, err
	}
	if status&d.readyMask != d.readyMask {
		return Sample{}, false, nil
	}
	buf := make([]byte, 6)
	if err := d.ReadRegisters(RegOutXL, buf); err != nil {
		return Sample{}, false, err
	}
	return decodeSample(buf), true, nil
}

// decodeSample turns X low, X high, Y low, Y high, Z low, Z high into a
// Sample.
func decodeSample(b []byte) Sample {
	return Sample{
		X: int16(b[1])<<8 | int16(b[0]),
		Y: int16(b[3])<<8 | int16(b[2]),
		Z: int16(b[5])<<8 | int16(b[4]),
	}
}

// Halt powers the device down.
func (d *Dev) Halt() error {
	return d.PowerDown()
}

// Close releases the bus when the Dev was created by Open. It does not
// power the device down; call Halt first for that.
func (d *Dev) Close() error {
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	return c.Close()
}

var _ conn.Resource = &Dev{}
