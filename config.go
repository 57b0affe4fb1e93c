// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

import "fmt"

// SetOperatingMode overwrites CTRL_REG3 with the mode bits.
func (d *Dev) SetOperatingMode(m OperatingMode) error {
	return d.WriteRegister(RegCtrl3, m.code())
}

// PowerDown puts the device in power-down mode.
func (d *Dev) PowerDown() error {
	return d.SetOperatingMode(PowerDown)
}

// SetFullScale overwrites CTRL_REG2 with the full scale bits.
func (d *Dev) SetFullScale(s FullScale) error {
	return d.WriteRegister(RegCtrl2, s.code())
}

// SetXYModeAndDataRate overwrites CTRL_REG1 with both the X/Y axis mode
// and the output data rate.
func (d *Dev) SetXYModeAndDataRate(m AxisMode, r DataRate) error {
	return d.WriteRegister(RegCtrl1, m.code()<<shiftXYMode|r.code()<<shiftDataRate)
}

// SetXYMode changes the X/Y axis mode and keeps the rest of CTRL_REG1.
func (d *Dev) SetXYMode(m AxisMode) error {
	return d.updateRegister(RegCtrl1, maskXYMode, m.code()<<shiftXYMode)
}

// SetDataRate changes the output data rate and keeps the rest of CTRL_REG1.
func (d *Dev) SetDataRate(r DataRate) error {
	return d.updateRegister(RegCtrl1, maskDataRate, r.code()<<shiftDataRate)
}

// SetZMode overwrites CTRL_REG4 with the Z axis mode bits.
func (d *Dev) SetZMode(m AxisMode) error {
	return d.WriteRegister(RegCtrl4, m.code()<<shiftZMode)
}

// InitDefaults configures high performance on all axes at 10 Hz in
// continuous conversion.
func (d *Dev) InitDefaults() error {
	if err := d.SetXYModeAndDataRate(HighPerformance, Rate10Hz); err != nil {
		return err
	}
	if err := d.SetZMode(HighPerformance); err != nil {
		return err
	}
	return d.SetOperatingMode(ContinuousConversion)
}

// Configure applies every setting of opts. The operating mode goes last so
// conversion starts with the final axis, rate and scale settings.
func (d *Dev) Configure(opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := d.SetXYModeAndDataRate(opts.XYMode, opts.DataRate); err != nil {
		return fmt.Errorf("lis3mdl: configure xy mode %s @ %s: %w", opts.XYMode, opts.DataRate, err)
	}
	if err := d.SetZMode(opts.ZMode); err != nil {
		return fmt.Errorf("lis3mdl: configure z mode %s: %w", opts.ZMode, err)
	}
	if err := d.SetFullScale(opts.Scale); err != nil {
		return fmt.Errorf("lis3mdl: configure scale %s: %w", opts.Scale, err)
	}
	if err := d.SetOperatingMode(opts.Mode); err != nil {
		return fmt.Errorf("lis3mdl: configure mode %s: %w", opts.Mode, err)
	}
	return nil
}

// updateRegister clears the mask bits of reg and sets bits in their place.
func (d *Dev) updateRegister(reg, mask, bits byte) error {
	cur, err := d.ReadRegister(reg)
	if err != nil {
		return err
	}
	return d.WriteRegister(reg, cur&^mask|bits&mask)
}
