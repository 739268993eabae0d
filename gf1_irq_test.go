package main

import "testing"

type countingPIC struct {
	activations []int
}

func (p *countingPIC) ActivateIRQ(irq int) {
	p.activations = append(p.activations, irq)
}

func TestIrqAggregatorSetClear(t *testing.T) {
	pic := &countingPIC{}
	a := newIrqAggregator()
	a.pic = pic
	a.mixControl = MixCtrlEnableIrq
	a.setActiveVoices(16)

	a.setWave(1 << 3)
	if a.irqStatus&IrqStatusWave == 0 {
		t.Fatalf("wave bit should be set in irq_status")
	}
	if len(pic.activations) == 0 {
		t.Fatalf("PIC should have been notified")
	}

	a.clearWave(1 << 3)
	if a.irqStatus&IrqStatusWave != 0 {
		t.Fatalf("wave bit should be clear after clearWave")
	}
}

// TestActiveMaskInvariant checks invariant 4: active_mask has exactly
// active_voices low bits set.
func TestActiveMaskInvariant(t *testing.T) {
	for count := MinActiveVoices; count <= MaxActiveVoices; count++ {
		mask := activeMaskFor(count)
		popcount := 0
		for b := 0; b < 32; b++ {
			if mask&(1<<uint(b)) != 0 {
				popcount++
			}
		}
		if popcount != count {
			t.Errorf("count=%d: active_mask has %d bits set, want %d", count, popcount, count)
		}
	}
}

// TestIrqRoundRobin verifies recompute() advances irq_chan to a voice with
// a pending bit and readVoiceIrqSource drains it.
func TestIrqRoundRobin(t *testing.T) {
	a := newIrqAggregator()
	a.setActiveVoices(16)

	a.setWave(1 << 5)
	if chanIdx := a.readVoiceIrqSource(); chanIdx != 5 {
		t.Fatalf("irq_chan should land on voice 5, got %d", chanIdx)
	}
	if a.waveIrq&(1<<5) != 0 {
		t.Fatalf("readVoiceIrqSource should drain the wave bit")
	}
}

// TestIrqDrainInvariant is invariant 7: repeated reads with no new voice
// IRQs eventually yield irq_status with bits 5 and 6 clear.
func TestIrqDrainInvariant(t *testing.T) {
	a := newIrqAggregator()
	a.setActiveVoices(16)
	a.setWave(1 << 2)
	a.setRamp(1 << 9)

	for i := 0; i < 40; i++ {
		a.readVoiceIrqSource()
	}

	if a.irqStatus&(IrqStatusWave|IrqStatusRamp) != 0 {
		t.Fatalf("irq_status should have drained wave/ramp bits, got 0x%02X", a.irqStatus)
	}
}

func TestIrqResetPreservesCollaborators(t *testing.T) {
	pic := &countingPIC{}
	a := newIrqAggregator()
	a.pic = pic
	a.assignedLine = 5
	a.setWave(1)

	a.reset()

	if a.waveIrq != 0 || a.rampIrq != 0 {
		t.Fatalf("reset should clear pending bitmaps")
	}
	if a.pic != pic || a.assignedLine != 5 {
		t.Fatalf("reset should preserve collaborator wiring")
	}
}
