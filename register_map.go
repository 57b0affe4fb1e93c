// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

import (
	"fmt"
	"strconv"
)

// RegisterInfo describes one register for debugging tools.
type RegisterInfo struct {
	Address     string     `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"` // "R", "W", "RW"
	Default     string     `json:"default,omitempty"`
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// BitField describes a group of bits inside a register.
type BitField struct {
	Bits        string `json:"bits"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// RegisterMap returns metadata for all LIS3MDL registers.
func RegisterMap() []RegisterInfo {
	return []RegisterInfo{
		{Address: "0x0F", Name: "WHO_AM_I", Description: "Device ID (should be 0x3D)", Access: "R", Default: "0x3D"},

		// Control Registers
		{Address: "0x20", Name: "CTRL_REG1", Description: "X/Y performance and output data rate", Access: "RW", Default: "0x10",
			BitFields: []BitField{
				{Bits: "7", Name: "TEMP_EN", Description: "Temperature sensor", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6:5", Name: "OM", Description: "X/Y operative mode", Values: "0=Low-power, 1=Medium, 2=High, 3=Ultra-high"},
				{Bits: "4:2", Name: "DO", Description: "Output data rate", Values: "0=0.625Hz, 1=1.25Hz, 2=2.5Hz, 3=5Hz, 4=10Hz, 5=20Hz, 6=40Hz, 7=80Hz"},
				{Bits: "1", Name: "FAST_ODR", Description: "Data rates above 80Hz", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "ST", Description: "Self-test", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x21", Name: "CTRL_REG2", Description: "Full scale and reset", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6:5", Name: "FS", Description: "Full scale", Values: "0=±4G, 1=±8G, 2=±12G, 3=±16G"},
				{Bits: "3", Name: "REBOOT", Description: "Reboot memory content", Values: "1=Reboot"},
				{Bits: "2", Name: "SOFT_RST", Description: "Reset configuration and user registers", Values: "1=Reset"},
			}},
		{Address: "0x22", Name: "CTRL_REG3", Description: "Operating mode", Access: "RW", Default: "0x03",
			BitFields: []BitField{
				{Bits: "5", Name: "LP", Description: "Low-power mode", Values: "0=Off, 1=Data rate forced to 0.625Hz"},
				{Bits: "2", Name: "SIM", Description: "SPI interface mode", Values: "0=4-wire, 1=3-wire"},
				{Bits: "1:0", Name: "MD", Description: "Operating mode", Values: "0=Continuous, 1=Single, 2/3=Power-down"},
			}},
		{Address: "0x23", Name: "CTRL_REG4", Description: "Z performance and endianness", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "3:2", Name: "OMZ", Description: "Z operative mode", Values: "0=Low-power, 1=Medium, 2=High, 3=Ultra-high"},
				{Bits: "1", Name: "BLE", Description: "Big/little endian", Values: "0=Low byte at lower address, 1=High byte at lower address"},
			}},
		{Address: "0x24", Name: "CTRL_REG5", Description: "Data update", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "FAST_READ", Description: "Read only the high part of the output", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "BDU", Description: "Block data update", Values: "0=Continuous, 1=Until MSB and LSB read"},
			}},

		// Status
		{Address: "0x27", Name: "STATUS_REG", Description: "Data ready and overrun", Access: "R",
			BitFields: []BitField{
				{Bits: "7", Name: "ZYXOR", Description: "X, Y, Z overrun"},
				{Bits: "6", Name: "ZOR", Description: "Z overrun"},
				{Bits: "5", Name: "YOR", Description: "Y overrun"},
				{Bits: "4", Name: "XOR", Description: "X overrun"},
				{Bits: "3", Name: "ZYXDA", Description: "X, Y, Z new data available"},
				{Bits: "2", Name: "ZDA", Description: "Z new data available"},
				{Bits: "1", Name: "YDA", Description: "Y new data available"},
				{Bits: "0", Name: "XDA", Description: "X new data available"},
			}},

		// Output Registers (Read-Only)
		{Address: "0x28", Name: "OUT_X_L", Description: "X-Axis Low Byte", Access: "R"},
		{Address: "0x29", Name: "OUT_X_H", Description: "X-Axis High Byte", Access: "R"},
		{Address: "0x2A", Name: "OUT_Y_L", Description: "Y-Axis Low Byte", Access: "R"},
		{Address: "0x2B", Name: "OUT_Y_H", Description: "Y-Axis High Byte", Access: "R"},
		{Address: "0x2C", Name: "OUT_Z_L", Description: "Z-Axis Low Byte", Access: "R"},
		{Address: "0x2D", Name: "OUT_Z_H", Description: "Z-Axis High Byte", Access: "R"},
		{Address: "0x2E", Name: "TEMP_OUT_L", Description: "Temperature Low Byte", Access: "R"},
		{Address: "0x2F", Name: "TEMP_OUT_H", Description: "Temperature High Byte", Access: "R"},

		// Interrupt Configuration
		{Address: "0x30", Name: "INT_CFG", Description: "Interrupt configuration", Access: "RW", Default: "0xE8",
			BitFields: []BitField{
				{Bits: "7", Name: "XIEN", Description: "X-axis interrupt", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "YIEN", Description: "Y-axis interrupt", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "ZIEN", Description: "Z-axis interrupt", Values: "0=Disabled, 1=Enabled"},
				{Bits: "2", Name: "IEA", Description: "Interrupt active level", Values: "0=Low, 1=High"},
				{Bits: "1", Name: "LIR", Description: "Latch interrupt request", Values: "0=Latched, 1=Not latched"},
				{Bits: "0", Name: "IEN", Description: "Interrupt on INT pin", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x31", Name: "INT_SRC", Description: "Interrupt source", Access: "R"},
		{Address: "0x32", Name: "INT_THS_L", Description: "Interrupt threshold low byte", Access: "RW", Default: "0x00"},
		{Address: "0x33", Name: "INT_THS_H", Description: "Interrupt threshold high byte", Access: "RW", Default: "0x00"},
	}
}

// Dump reads every readable register of RegisterMap one at a time.
func (d *Dev) Dump() (map[byte]byte, error) {
	regs := make(map[byte]byte)
	for _, info := range RegisterMap() {
		if info.Access == "W" {
			continue
		}
		addr, err := strconv.ParseUint(info.Address, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("lis3mdl: bad register address %q: %w", info.Address, err)
		}
		v, err := d.ReadRegister(byte(addr))
		if err != nil {
			return nil, err
		}
		regs[byte(addr)] = v
	}
	return regs, nil
}
