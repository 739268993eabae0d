// gf1_interfaces.go - narrow collaborator contracts consumed by Engine

package main

// Mixer is the downstream collaborator that receives mixed stereo frames
// and controls sample rate and enable state. Engine never imports a
// concrete audio backend; gf1_backend_oto.go and gf1_backend_alsa.go each
// implement this for a real device, and tests use a trivial recorder.
type Mixer interface {
	Write(frames []int16) // N*2 interleaved stereo samples, N <= MaxMixFrames
	SetFrequency(hz int)
	Enable(enabled bool)
}

// PIC edges the given host IRQ line. Engine treats it as infallible.
type PIC interface {
	ActivateIRQ(irq int)
}

// DMAChannel is the host DMA channel backing an upload or download.
type DMAChannel interface {
	CurrentCount() int
	Is16Bit() bool
	Read(count int, dst []byte) int
	Write(count int, src []byte) int
	RegisterCallback(fn func())
}
