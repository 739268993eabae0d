// gf1_demo.go - reference playback harness exercising a real Mixer backend

package main

import (
	"fmt"
	"os"
	"time"
)

// demoPlayer is the narrow surface gf1_demo needs from either audio
// backend; both GusPlayer (oto) and AlsaPlayer expose it.
type demoPlayer interface {
	SetupPlayer(e *Engine)
	Start()
	Stop()
	Close()
}

// RunDemo builds an Engine wired to the requested backend, loads a test
// tone into SampleMemory, and plays it for the given duration. It is the
// entry point for -mode=demo, grounded in the teacher's own small
// self-test harness pattern of wiring a chip straight to an audio backend
// without a GUI in front of it.
func RunDemo(backend string, seconds int) error {
	pic := &loggingPIC{}
	dma := &LoopbackDMAChannel{}

	var player demoPlayer
	var mixer Mixer

	switch backend {
	case "alsa":
		ap, err := NewAlsaPlayer(44100)
		if err != nil {
			return fmt.Errorf("gf1demo: %w", err)
		}
		player, mixer = ap, ap
	default:
		gp, err := NewGusPlayer(44100)
		if err != nil {
			return fmt.Errorf("gf1demo: %w", err)
		}
		player, mixer = gp, gp
	}

	engine, err := NewEngine(mixer, pic, dma)
	if err != nil {
		return err
	}
	player.SetupPlayer(engine)

	loadTestTone(engine)

	player.Start()
	defer player.Close()

	if pumper, ok := player.(interface{ Pump() error }); ok {
		deadline := time.Now().Add(time.Duration(seconds) * time.Second)
		for time.Now().Before(deadline) {
			if err := pumper.Pump(); err != nil {
				return err
			}
		}
		return nil
	}

	time.Sleep(time.Duration(seconds) * time.Second)
	return nil
}

// loadTestTone writes a single cycle of an 8-bit sawtooth into sample
// memory and arms voice 0 to loop it forward, the minimal register
// sequence a DOS-era tracker driver would issue to start a note.
func loadTestTone(e *Engine) {
	const waveLen = 256
	for i := 0; i < waveLen; i++ {
		v := int8(i - waveLen/2)
		e.WritePort(PortDramIO, uint8(v))
		e.regs.dramAddr++
	}

	e.regs.setVoiceIndex(0)

	e.regs.setRegIndex(RegStartAddrHigh)
	e.executeRegister(0)
	e.regs.setRegIndex(RegStartAddrLow)
	e.executeRegister(0)

	end := uint32(waveLen) << PhaseFracBits
	e.regs.setRegIndex(RegEndAddrHigh)
	e.executeRegister(uint16(end >> 16))
	e.regs.setRegIndex(RegEndAddrLow)
	e.executeRegister(uint16(end & 0xFFFF))

	e.regs.setRegIndex(RegCurAddrHigh)
	e.executeRegister(0)
	e.regs.setRegIndex(RegCurAddrLow)
	e.executeRegister(0)

	e.regs.setRegIndex(RegFreqControl)
	e.executeRegister(0x2000)

	e.regs.setRegIndex(RegRampStart)
	e.executeRegister(3072)
	e.regs.setRegIndex(RegRampEnd)
	e.executeRegister(3072)
	e.regs.setRegIndex(RegRampCur)
	e.executeRegister(3072)

	e.regs.setRegIndex(RegPanPot)
	e.executeRegister(7)

	e.regs.setRegIndex(RegRampCtrl)
	e.executeRegister(0)

	e.regs.setRegIndex(RegWaveCtrl)
	e.executeRegister(CtrlLoop)

	if os.Getenv("GF1_DEMO_QUIET") == "" {
		fmt.Fprintln(os.Stderr, "gf1demo: voice 0 looping a 256-sample sawtooth")
	}
}
