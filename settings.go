// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

import (
	"fmt"
	"strings"

	"periph.io/x/conn/v3/physic"
)

// OperatingMode selects how the device converts samples (CTRL_REG3 MD).
type OperatingMode uint8

const (
	ContinuousConversion OperatingMode = iota
	SingleConversion
	PowerDown
)

func (m OperatingMode) code() byte {
	switch m {
	case ContinuousConversion:
		return 0b00
	case SingleConversion:
		return 0b01
	default:
		return 0b11
	}
}

func (m OperatingMode) String() string {
	switch m {
	case ContinuousConversion:
		return "continuous"
	case SingleConversion:
		return "single"
	case PowerDown:
		return "power-down"
	}
	return fmt.Sprintf("OperatingMode(%d)", uint8(m))
}

// ParseOperatingMode accepts the names returned by OperatingMode.String.
func ParseOperatingMode(s string) (OperatingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous":
		return ContinuousConversion, nil
	case "single":
		return SingleConversion, nil
	case "power-down", "powerdown":
		return PowerDown, nil
	}
	return 0, fmt.Errorf("unknown operating mode %q", s)
}

// FullScale is the measurement range in gauss.
type FullScale uint8

const (
	Scale4Gauss FullScale = iota
	Scale8Gauss
	Scale12Gauss
	Scale16Gauss
)

func (s FullScale) code() byte { return byte(s) & 0b11 }

// Gauss returns the magnitude of the range.
func (s FullScale) Gauss() int {
	return []int{4, 8, 12, 16}[s.code()]
}

// Sensitivity returns the number of LSB per gauss at this range.
func (s FullScale) Sensitivity() int {
	return []int{6842, 3421, 2281, 1711}[s.code()]
}

func (s FullScale) String() string {
	if s > Scale16Gauss {
		return fmt.Sprintf("FullScale(%d)", uint8(s))
	}
	return fmt.Sprintf("±%dG", s.Gauss())
}

// ParseFullScale accepts "4", "8", "12" or "16", with an optional "G" suffix.
func ParseFullScale(s string) (FullScale, error) {
	v := strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "G")
	switch strings.TrimPrefix(v, "±") {
	case "4":
		return Scale4Gauss, nil
	case "8":
		return Scale8Gauss, nil
	case "12":
		return Scale12Gauss, nil
	case "16":
		return Scale16Gauss, nil
	}
	return 0, fmt.Errorf("unknown full scale %q (4, 8, 12 or 16)", s)
}

// AxisMode is the performance/power trade-off of the X/Y or Z axis.
type AxisMode uint8

const (
	LowPower AxisMode = iota
	MediumPerformance
	HighPerformance
	UltraPerformance
)

func (m AxisMode) code() byte { return byte(m) & 0b11 }

func (m AxisMode) String() string {
	switch m {
	case LowPower:
		return "low-power"
	case MediumPerformance:
		return "medium"
	case HighPerformance:
		return "high"
	case UltraPerformance:
		return "ultra"
	}
	return fmt.Sprintf("AxisMode(%d)", uint8(m))
}

// ParseAxisMode accepts the names returned by AxisMode.String.
func ParseAxisMode(s string) (AxisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low-power", "low":
		return LowPower, nil
	case "medium":
		return MediumPerformance, nil
	case "high":
		return HighPerformance, nil
	case "ultra":
		return UltraPerformance, nil
	}
	return 0, fmt.Errorf("unknown axis mode %q", s)
}

// DataRate is the output data rate (CTRL_REG1 DO + FAST_ODR).
type DataRate uint8

const (
	RateFast DataRate = iota
	Rate0_625Hz
	Rate1_25Hz
	Rate2_5Hz
	Rate5Hz
	Rate10Hz
	Rate20Hz
	Rate40Hz
	Rate80Hz
)

var dataRates = []struct {
	code byte
	freq physic.Frequency
	name string
}{
	RateFast:    {0b0001, 0, "fast"},
	Rate0_625Hz: {0b0000, 625 * physic.MilliHertz, "0.625Hz"},
	Rate1_25Hz:  {0b0010, 1250 * physic.MilliHertz, "1.25Hz"},
	Rate2_5Hz:   {0b0100, 2500 * physic.MilliHertz, "2.5Hz"},
	Rate5Hz:     {0b0110, 5 * physic.Hertz, "5Hz"},
	Rate10Hz:    {0b1000, 10 * physic.Hertz, "10Hz"},
	Rate20Hz:    {0b1010, 20 * physic.Hertz, "20Hz"},
	Rate40Hz:    {0b1100, 40 * physic.Hertz, "40Hz"},
	Rate80Hz:    {0b1110, 80 * physic.Hertz, "80Hz"},
}

func (r DataRate) code() byte {
	if int(r) >= len(dataRates) {
		return dataRates[Rate10Hz].code
	}
	return dataRates[r].code
}

// Frequency returns the nominal rate. RateFast returns 0 since the fast
// rate depends on the X/Y axis mode (1000, 560, 300 or 155 Hz).
func (r DataRate) Frequency() physic.Frequency {
	if int(r) >= len(dataRates) {
		return 0
	}
	return dataRates[r].freq
}

func (r DataRate) String() string {
	if int(r) >= len(dataRates) {
		return fmt.Sprintf("DataRate(%d)", uint8(r))
	}
	return dataRates[r].name
}

// ParseDataRate accepts the names returned by DataRate.String, with or
// without the "Hz" suffix.
func ParseDataRate(s string) (DataRate, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(v, "hz")
	for i, r := range dataRates {
		if strings.TrimSuffix(strings.ToLower(r.name), "hz") == v {
			return DataRate(i), nil
		}
	}
	return 0, fmt.Errorf("unknown data rate %q", s)
}
