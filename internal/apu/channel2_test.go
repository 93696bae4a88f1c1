package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChannel2(t *testing.T) {
	ch := NewChannel2()
	assert.NotNil(t, ch)
	assert.False(t, ch.enabled)
	assert.False(t, ch.dacEnabled)
}

func TestChannel2Trigger(t *testing.T) {
	ch := NewChannel2()

	ch.WriteRegister(1, 0xF0) // NR22: max volume, DAC on
	ch.frequency = 1500
	ch.lengthCounter = 0

	ch.trigger()

	assert.True(t, ch.enabled)
	assert.Equal(t, uint8(64), ch.lengthCounter)
	assert.Equal(t, uint16((2048-1500)*4), ch.period)
	assert.Equal(t, uint8(15), ch.currentVolume)
}

func TestChannel2TriggerWithDACDisabled(t *testing.T) {
	ch := NewChannel2()

	ch.WriteRegister(1, 0x00) // volume=0, DAC disabled
	ch.trigger()

	assert.False(t, ch.enabled)
}

func TestChannel2WavePositionAdvancesAcrossSmallUpdates(t *testing.T) {
	ch := NewChannel2()

	ch.WriteRegister(1, 0xF0)
	ch.frequency = 2044 // period = 16 cycles
	ch.dutyPattern = 2
	ch.trigger()

	startPosition := ch.wavePosition

	for i := 0; i < 20; i++ {
		ch.Update(4)
	}

	assert.NotEqual(t, startPosition, ch.wavePosition,
		"wave position should advance once enough small updates cross a full period")
}

func TestChannel2LengthCounter(t *testing.T) {
	ch := NewChannel2()

	ch.enabled = true
	ch.lengthEnabled = true
	ch.lengthCounter = 1

	ch.StepLength()

	assert.Equal(t, uint8(0), ch.lengthCounter)
	assert.False(t, ch.enabled, "channel should disable once length reaches 0")
}

func TestChannel2RegisterReadWriteRoundTrip(t *testing.T) {
	ch := NewChannel2()

	ch.WriteRegister(0, 0xC0) // NR21: 75% duty
	assert.Equal(t, uint8(3), ch.dutyPattern)

	ch.WriteRegister(2, 0xAB) // NR23: frequency low byte
	assert.Equal(t, uint16(0xAB), ch.frequency&0xFF)

	nr23Read := ch.ReadRegister(2)
	assert.Equal(t, uint8(0xFF), nr23Read, "NR23 is write-only")
}
