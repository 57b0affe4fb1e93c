// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Opts holds the discovery and configuration options.
type Opts struct {
	// Addr restricts discovery to one address. 0 probes both, high first.
	Addr uint16

	XYMode   AxisMode
	ZMode    AxisMode
	DataRate DataRate
	Scale    FullScale
	Mode     OperatingMode

	// ReadyMask is the STATUS_REG flag Sense waits for. 0 means StatusZYXDA.
	ReadyMask byte

	// Verbose logs discovery and register writes.
	Verbose bool
}

// DefaultOpts matches Dev.InitDefaults with the ±4 gauss range.
var DefaultOpts = Opts{
	XYMode:    HighPerformance,
	ZMode:     HighPerformance,
	DataRate:  Rate10Hz,
	Scale:     Scale4Gauss,
	Mode:      ContinuousConversion,
	ReadyMask: StatusZYXDA,
}

// LoadOpts reads KEY=VALUE lines from configPath on top of DefaultOpts.
// Empty lines and lines starting with # are skipped.
func LoadOpts(configPath string) (*Opts, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	opts := DefaultOpts
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := opts.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// setValue sets an option based on the key.
func (o *Opts) setValue(key, value string) error {
	var err error
	switch key {
	case "LIS3MDL_ADDR":
		addr, perr := strconv.ParseUint(value, 0, 16)
		if perr != nil {
			return fmt.Errorf("invalid LIS3MDL_ADDR %q: %w", value, perr)
		}
		o.Addr = uint16(addr)
	case "LIS3MDL_XY_MODE":
		o.XYMode, err = ParseAxisMode(value)
	case "LIS3MDL_Z_MODE":
		o.ZMode, err = ParseAxisMode(value)
	case "LIS3MDL_DATA_RATE":
		o.DataRate, err = ParseDataRate(value)
	case "LIS3MDL_SCALE":
		o.Scale, err = ParseFullScale(value)
	case "LIS3MDL_MODE":
		o.Mode, err = ParseOperatingMode(value)
	case "LIS3MDL_READY_MASK":
		mask, perr := strconv.ParseUint(value, 0, 8)
		if perr != nil {
			return fmt.Errorf("invalid LIS3MDL_READY_MASK %q: %w", value, perr)
		}
		o.ReadyMask = byte(mask)
	case "LIS3MDL_VERBOSE":
		v, perr := strconv.ParseBool(value)
		if perr != nil {
			return fmt.Errorf("invalid LIS3MDL_VERBOSE %q: %w", value, perr)
		}
		o.Verbose = v
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func (o *Opts) validate() error {
	switch o.Addr {
	case 0, AddrSA1High, AddrSA1Low:
	default:
		return fmt.Errorf("%w, got 0x%02X", ErrInvalidAddr, o.Addr)
	}
	if o.ReadyMask == 0 {
		return fmt.Errorf("LIS3MDL_READY_MASK must not be 0")
	}
	return nil
}
