// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lis3mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func write(reg, value byte) i2ctest.IO {
	return i2ctest.IO{Addr: AddrSA1High, W: []byte{reg, value}}
}

func TestSetXYModeAndDataRate(t *testing.T) {
	want := HighPerformance.code()<<5 | Rate10Hz.code()<<1
	require.Equal(t, byte(0x50), want)

	d, bus := newPlaybackDev(t, write(RegCtrl1, want))
	require.NoError(t, d.SetXYModeAndDataRate(HighPerformance, Rate10Hz))
	require.NoError(t, bus.Close())
}

func TestPowerDownWritesOnlyCtrl3(t *testing.T) {
	d, bus := newPlaybackDev(t, write(RegCtrl3, 0b11))
	require.NoError(t, d.PowerDown())
	require.NoError(t, bus.Close())
}

func TestHaltPowersDown(t *testing.T) {
	d, bus := newPlaybackDev(t, write(RegCtrl3, 0b11))
	require.NoError(t, d.Halt())
	require.NoError(t, bus.Close())
}

func TestOverwriteSetters(t *testing.T) {
	d, bus := newPlaybackDev(t,
		write(RegCtrl3, 0b00),
		write(RegCtrl3, 0b01),
		write(RegCtrl2, 0b10),
		write(RegCtrl4, 0b11<<2),
		write(RegCtrl1, 0b00<<5|0b0001<<1),
	)

	require.NoError(t, d.SetOperatingMode(ContinuousConversion))
	require.NoError(t, d.SetOperatingMode(SingleConversion))
	require.NoError(t, d.SetFullScale(Scale12Gauss))
	require.NoError(t, d.SetZMode(UltraPerformance))
	require.NoError(t, d.SetXYModeAndDataRate(LowPower, RateFast))
	require.NoError(t, bus.Close())
}

func TestInitDefaults(t *testing.T) {
	d, bus := newPlaybackDev(t,
		write(RegCtrl1, 0x50),
		write(RegCtrl4, 0b10<<2),
		write(RegCtrl3, 0b00),
	)
	require.NoError(t, d.InitDefaults())
	require.NoError(t, bus.Close())
}

func TestSetXYModeKeepsOtherBits(t *testing.T) {
	bus := newFakeBus(AddrSA1High)
	d, _, err := Discover(bus, nil)
	require.NoError(t, err)
	regs := bus.regs[AddrSA1High]

	// TEMP_EN plus 10 Hz, low-power X/Y.
	regs[RegCtrl1] = 0x80 | Rate10Hz.code()<<1
	require.NoError(t, d.SetXYMode(UltraPerformance))
	assert.Equal(t, byte(0x80|0b11<<5|0b1000<<1), regs[RegCtrl1])

	require.NoError(t, d.SetXYMode(MediumPerformance))
	assert.Equal(t, byte(0x80|0b01<<5|0b1000<<1), regs[RegCtrl1])
}

func TestSetDataRateKeepsOtherBits(t *testing.T) {
	bus := newFakeBus(AddrSA1High)
	d, _, err := Discover(bus, nil)
	require.NoError(t, err)
	regs := bus.regs[AddrSA1High]

	// TEMP_EN, ultra-high X/Y, 0.625 Hz, self-test.
	regs[RegCtrl1] = 0x80 | 0b11<<5 | 0x01
	require.NoError(t, d.SetDataRate(Rate80Hz))
	assert.Equal(t, byte(0xFD), regs[RegCtrl1])

	require.NoError(t, d.SetDataRate(RateFast))
	assert.Equal(t, byte(0x80|0b11<<5|0b0001<<1|0x01), regs[RegCtrl1])
}

func TestReadModifyWriteReadError(t *testing.T) {
	bus := newFakeBus(AddrSA1High)
	d, _, err := Discover(bus, nil)
	require.NoError(t, err)
	bus.err = errBus
	n := len(bus.txs)

	assert.ErrorIs(t, d.SetXYMode(HighPerformance), errBus)
	assert.Len(t, bus.txs, n+1, "no write after a failed read")
}

func TestConfigure(t *testing.T) {
	bus := newFakeBus(AddrSA1High)
	d, _, err := Discover(bus, nil)
	require.NoError(t, err)

	opts := DefaultOpts
	opts.XYMode = UltraPerformance
	opts.DataRate = Rate40Hz
	opts.ZMode = MediumPerformance
	opts.Scale = Scale16Gauss
	opts.Mode = SingleConversion
	require.NoError(t, d.Configure(&opts))

	regs := bus.regs[AddrSA1High]
	assert.Equal(t, byte(0b11<<5|0b1100<<1), regs[RegCtrl1])
	assert.Equal(t, byte(0b01<<2), regs[RegCtrl4])
	assert.Equal(t, byte(0b11), regs[RegCtrl2])
	assert.Equal(t, byte(0b01), regs[RegCtrl3])

	last := bus.txs[len(bus.txs)-1]
	assert.Equal(t, []byte{RegCtrl3, 0b01}, last.w, "operating mode is written last")

	bus.err = errBus
	assert.ErrorIs(t, d.Configure(nil), errBus)
}
