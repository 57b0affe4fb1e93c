// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

// I2C addresses selected by the SA1 pin.
const (
	AddrSA1High uint16 = 0b0011110 // 0x1E
	AddrSA1Low  uint16 = 0b0011100 // 0x1C
)

// WhoAmIValue is the content of RegWhoAmI on a genuine LIS3MDL.
const WhoAmIValue = 0x3D

// Register map.
const (
	RegWhoAmI  = 0x0F
	RegCtrl1   = 0x20 // OM[6:5] XY axis mode, DO[4:2] + FAST_ODR[1] data rate
	RegCtrl2   = 0x21 // full scale
	RegCtrl3   = 0x22 // MD[1:0] operating mode
	RegCtrl4   = 0x23 // OMZ[3:2] Z axis mode
	RegCtrl5   = 0x24
	RegStatus  = 0x27
	RegOutXL   = 0x28 // X low, X high, Y low, Y high, Z low, Z high
	RegOutXH   = 0x29
	RegOutYL   = 0x2A
	RegOutYH   = 0x2B
	RegOutZL   = 0x2C
	RegOutZH   = 0x2D
	RegTempL   = 0x2E
	RegTempH   = 0x2F
	RegIntCfg  = 0x30
	RegIntSrc  = 0x31
	RegIntThsL = 0x32
	RegIntThsH = 0x33
)

// Data ready flags in RegStatus.
const (
	// StatusZYXDA is set when a new X, Y and Z sample is available.
	StatusZYXDA = 0b1000
	// StatusXYZDAGyro is the ready flag used by the gyroscope flavour of
	// this register layout.
	StatusXYZDAGyro = 0b10
)

// Field masks.
const (
	maskXYMode   = 0b0110_0000
	maskDataRate = 0b0001_1110

	shiftXYMode   = 5
	shiftDataRate = 1
	shiftZMode    = 2
)
