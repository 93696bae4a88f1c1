package apu

import (
	"fmt"
)

// APU is the DMG audio processing unit: four channels, an 8-step frame
// sequencer, a stereo mixer, and a fixed-capacity ring buffer of output
// frames drained by a host audio backend.
type APU struct {
	pulse1 *Channel1 // square wave with frequency sweep
	pulse2 *Channel2 // square wave
	wave   *Channel3 // user-defined wave pattern
	noise  *Channel4 // LFSR noise generator

	mixer   *Mixer
	enabled bool

	nr50 uint8 // master volume & VIN panning (0xFF24)
	nr51 uint8 // channel panning (0xFF25)
	nr52 uint8 // master on/off + channel status (0xFF26)

	frameSequencer uint8  // 0..7, advances every 8192 CPU cycles
	frameCounter   uint16 // cycles accumulated toward the next sequencer step
	cycles         uint64 // total CPU cycles processed, for diagnostics

	sampleRate     float64 // host-requested output sample rate in Hz
	sampleAcc      float64 // fractional-cycle accumulator for frame pacing
	ring           []float32 // stereo-interleaved ring buffer (2 floats/frame)
	ringHead       int       // next frame slot to write
	ringFrames     int       // frames currently buffered, <= capacity
	droppedFrames  uint64    // frames overwritten because the ring was full
}

const apuCPUFrequency = 4194304.0

// AudioInterface is the host-side sink an emulator frontend implements to
// play back the stereo frames the APU produces.
type AudioInterface interface {
	Initialize(sampleRate int, bufferSize int) error
	QueueAudio(samples []float32) error
	GetQueuedBytes() int
	Close() error
}

// NewAPU builds an APU with a default 44.1kHz, ~93ms (4096-frame) ring buffer.
func NewAPU() *APU {
	apu := &APU{
		pulse1:     NewChannel1(),
		pulse2:     NewChannel2(),
		wave:       NewChannel3(),
		noise:      NewChannel4(),
		mixer:      NewMixer(),
		sampleRate: 44100.0,
	}
	apu.setRingCapacityFrames(4096)
	apu.Reset()
	return apu
}

// setRingCapacityFrames allocates the ring buffer for the given number of
// stereo frames and clears it.
func (apu *APU) setRingCapacityFrames(frames int) {
	apu.ring = make([]float32, frames*2)
	apu.ringHead = 0
	apu.ringFrames = 0
}

// Reset restores DMG power-on register values and leaves the APU enabled
// with the frame-sequencer step at 0.
func (apu *APU) Reset() {
	apu.pulse1.Reset()
	apu.pulse2.Reset()
	apu.wave.Reset()
	apu.noise.Reset()

	apu.nr50 = 0x77
	apu.nr51 = 0xF3
	apu.nr52 = 0xF1

	apu.frameSequencer = 0
	apu.frameCounter = 0
	apu.cycles = 0
	apu.sampleAcc = 0

	apu.enabled = true
	apu.mixer.Reset()
}

// Update advances the frame sequencer, every channel, and sample generation
// by the given number of CPU cycles. A no-op while the APU is disabled.
func (apu *APU) Update(cycles uint8) {
	if !apu.enabled {
		return
	}

	apu.cycles += uint64(cycles)
	apu.frameCounter += uint16(cycles)

	if apu.frameCounter >= 8192 {
		apu.frameCounter -= 8192
		apu.stepFrameSequencer()
	}

	apu.pulse1.Update(cycles)
	apu.pulse2.Update(cycles)
	apu.wave.Update(cycles)
	apu.noise.Update(cycles)

	apu.generateSamples(cycles)
}

// stepFrameSequencer advances one step of the 512Hz length/sweep/envelope
// schedule: length on even steps, sweep additionally on steps 2 and 6,
// envelope only on step 7.
func (apu *APU) stepFrameSequencer() {
	switch apu.frameSequencer {
	case 0, 2, 4, 6:
		apu.pulse1.StepLength()
		apu.pulse2.StepLength()
		apu.wave.StepLength()
		apu.noise.StepLength()

		if apu.frameSequencer == 2 || apu.frameSequencer == 6 {
			apu.pulse1.StepSweep()
		}

	case 7:
		apu.pulse1.StepEnvelope()
		apu.pulse2.StepEnvelope()
		apu.noise.StepEnvelope()
	}

	apu.frameSequencer = (apu.frameSequencer + 1) % 8
}

// generateSamples mixes and buffers however many stereo frames the elapsed
// cycles are worth at the configured sample rate, using a fractional
// accumulator so fractional-frame remainders aren't lost between calls.
func (apu *APU) generateSamples(cycles uint8) {
	apu.sampleAcc += float64(cycles) * apu.sampleRate / apuCPUFrequency

	for apu.sampleAcc >= 1.0 {
		apu.sampleAcc -= 1.0

		left, right := apu.mixer.Mix(
			apu.pulse1.GetSample(),
			apu.pulse2.GetSample(),
			apu.wave.GetSample(),
			apu.noise.GetSample(),
			apu.nr50,
			apu.nr51,
		)
		apu.pushFrame(left, right)
	}
}

// pushFrame writes one stereo frame into the ring buffer. When the buffer
// is full, the oldest frame is overwritten and droppedFrames is
// incremented rather than blocking or growing unbounded.
func (apu *APU) pushFrame(left, right float32) {
	capacity := len(apu.ring) / 2
	if capacity == 0 {
		return
	}

	if apu.ringFrames == capacity {
		apu.droppedFrames++
	} else {
		apu.ringFrames++
	}

	apu.ring[apu.ringHead*2] = left
	apu.ring[apu.ringHead*2+1] = right
	apu.ringHead = (apu.ringHead + 1) % capacity
}

// GetSamples drains every buffered frame, oldest first, as an interleaved
// stereo slice, and empties the ring.
func (apu *APU) GetSamples() []float32 {
	if apu.ringFrames == 0 {
		return nil
	}

	capacity := len(apu.ring) / 2
	out := make([]float32, apu.ringFrames*2)
	start := (apu.ringHead - apu.ringFrames + capacity) % capacity

	for i := 0; i < apu.ringFrames; i++ {
		slot := (start + i) % capacity
		out[i*2] = apu.ring[slot*2]
		out[i*2+1] = apu.ring[slot*2+1]
	}

	apu.ringFrames = 0
	return out
}

// DroppedFrames returns the running count of frames overwritten because
// the host drained the ring slower than the APU filled it.
func (apu *APU) DroppedFrames() uint64 {
	return apu.droppedFrames
}

// ReadByte reads from an APU I/O register or wave RAM.
func (apu *APU) ReadByte(address uint16) uint8 {
	switch {
	case address >= 0xFF10 && address <= 0xFF14:
		return apu.pulse1.ReadRegister(uint8(address - 0xFF10))
	case address >= 0xFF16 && address <= 0xFF19:
		return apu.pulse2.ReadRegister(uint8(address - 0xFF16))
	case address >= 0xFF1A && address <= 0xFF1E:
		return apu.wave.ReadRegister(uint8(address - 0xFF1A))
	case address >= 0xFF20 && address <= 0xFF23:
		return apu.noise.ReadRegister(uint8(address - 0xFF20))
	case address == 0xFF24:
		return apu.nr50
	case address == 0xFF25:
		return apu.nr51
	case address == 0xFF26:
		return apu.nr52
	case address >= 0xFF30 && address <= 0xFF3F:
		return apu.wave.ReadWaveRAM(uint8(address - 0xFF30))
	default:
		return 0xFF
	}
}

// WriteByte writes an APU I/O register or wave RAM. While the master
// enable is off, only NR52 itself accepts writes.
func (apu *APU) WriteByte(address uint16, value uint8) {
	if !apu.enabled && address != 0xFF26 {
		return
	}

	switch {
	case address >= 0xFF10 && address <= 0xFF14:
		apu.pulse1.WriteRegister(uint8(address-0xFF10), value)
	case address >= 0xFF16 && address <= 0xFF19:
		apu.pulse2.WriteRegister(uint8(address-0xFF16), value)
	case address >= 0xFF1A && address <= 0xFF1E:
		apu.wave.WriteRegister(uint8(address-0xFF1A), value)
	case address >= 0xFF20 && address <= 0xFF23:
		apu.noise.WriteRegister(uint8(address-0xFF20), value)
	case address == 0xFF24:
		apu.nr50 = value
	case address == 0xFF25:
		apu.nr51 = value
	case address == 0xFF26:
		apu.writeNR52(value)
	case address >= 0xFF30 && address <= 0xFF3F:
		apu.wave.WriteWaveRAM(uint8(address-0xFF30), value)
	}
}

// writeNR52 handles the master enable bit: the 0->1 edge resets the frame
// sequencer step, the 1->0 edge clears every register except wave RAM.
func (apu *APU) writeNR52(value uint8) {
	wasEnabled := apu.enabled
	apu.enabled = (value & 0x80) != 0

	if wasEnabled && !apu.enabled {
		apu.clearRegisters()
	}
	if !wasEnabled && apu.enabled {
		apu.frameSequencer = 0
	}

	apu.updateNR52()
}

// clearRegisters resets every APU register except wave RAM, matching the
// real hardware's behavior on the master-enable falling edge.
func (apu *APU) clearRegisters() {
	apu.nr50 = 0
	apu.nr51 = 0

	waveRAM := apu.wave.waveRAM
	apu.pulse1.Reset()
	apu.pulse2.Reset()
	apu.wave.Reset()
	apu.wave.waveRAM = waveRAM
	apu.noise.Reset()
}

// updateNR52 recomputes NR52 from the master enable flag and each
// channel's current enabled state.
func (apu *APU) updateNR52() {
	apu.nr52 = 0
	if apu.enabled {
		apu.nr52 |= 0x80
	}

	if apu.pulse1.IsEnabled() {
		apu.nr52 |= 0x01
	}
	if apu.pulse2.IsEnabled() {
		apu.nr52 |= 0x02
	}
	if apu.wave.IsEnabled() {
		apu.nr52 |= 0x04
	}
	if apu.noise.IsEnabled() {
		apu.nr52 |= 0x08
	}
}

// IsEnabled reports the master enable bit (NR52 bit 7).
func (apu *APU) IsEnabled() bool {
	return apu.enabled
}

// GetChannelStatus reports each channel's current enabled state, in
// pulse1/pulse2/wave/noise order.
func (apu *APU) GetChannelStatus() (bool, bool, bool, bool) {
	return apu.pulse1.IsEnabled(),
		apu.pulse2.IsEnabled(),
		apu.wave.IsEnabled(),
		apu.noise.IsEnabled()
}

// SetSampleRate changes the target output sample rate used by
// generateSamples; takes effect on the next Update call.
func (apu *APU) SetSampleRate(rate float64) {
	apu.sampleRate = rate
}

func (apu *APU) String() string {
	return fmt.Sprintf("APU{enabled=%t, nr50=0x%02X, nr51=0x%02X, nr52=0x%02X, frame=%d, dropped=%d}",
		apu.enabled, apu.nr50, apu.nr51, apu.nr52, apu.frameSequencer, apu.droppedFrames)
}
