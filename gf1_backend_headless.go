//go:build headless

// gf1_backend_headless.go - no-op Mixer for headless builds/tests

package main

// GusPlayer is a stub standing in for the oto-backed player in headless
// builds, where no audio device is expected to exist.
type GusPlayer struct {
	started bool
	engine  *Engine
}

func NewGusPlayer(sampleRate int) (*GusPlayer, error) {
	return &GusPlayer{}, nil
}

func (p *GusPlayer) SetupPlayer(e *Engine) { p.engine = e }
func (p *GusPlayer) Write(frames []int16)  {}
func (p *GusPlayer) SetFrequency(hz int)   {}
func (p *GusPlayer) Enable(enabled bool)   {}
func (p *GusPlayer) Start()                { p.started = true }
func (p *GusPlayer) Stop()                 { p.started = false }
func (p *GusPlayer) Close()                { p.started = false }
func (p *GusPlayer) IsStarted() bool       { return p.started }

// AlsaPlayer mirrors GusPlayer's stub role for the ALSA backend in
// headless builds, where cgo/libasound is unavailable.
type AlsaPlayer struct {
	started bool
	engine  *Engine
}

func NewAlsaPlayer(sampleRate int) (*AlsaPlayer, error) {
	return &AlsaPlayer{}, nil
}

func (ap *AlsaPlayer) SetupPlayer(e *Engine) { ap.engine = e }
func (ap *AlsaPlayer) Write(frames []int16)  {}
func (ap *AlsaPlayer) SetFrequency(hz int)   {}
func (ap *AlsaPlayer) Enable(enabled bool)   {}
func (ap *AlsaPlayer) Pump() error           { return nil }
func (ap *AlsaPlayer) Start()                { ap.started = true }
func (ap *AlsaPlayer) Stop()                 { ap.started = false }
func (ap *AlsaPlayer) Close()                { ap.started = false }
func (ap *AlsaPlayer) IsStarted() bool       { return ap.started }
