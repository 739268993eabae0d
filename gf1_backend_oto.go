//go:build !headless

// gf1_backend_oto.go - oto/v3 audio output, driving Engine.Mix from Read()

package main

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// GusPlayer is a Mixer implementation that plays an Engine's output through
// the host's default audio device via oto. oto pulls bytes from Read() on
// its own goroutine; Read() calls Engine.Mix in MaxMixFrames chunks to
// refill a small ring buffer, the same atomic-pointer-plus-ring-buffer
// shape the teacher's OtoPlayer uses. The Engine pointer is loaded without
// a lock; the ring buffer itself is guarded by ringMu.
type GusPlayer struct {
	ctx    *oto.Context
	player *oto.Player

	engine atomic.Pointer[Engine]

	ringMu sync.Mutex
	ring   []int16

	mutex      sync.Mutex
	started    bool
	sampleRate int
}

func NewGusPlayer(sampleRate int) (*GusPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   4 * MaxMixFrames,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &GusPlayer{sampleRate: sampleRate, ctx: ctx}, nil
}

func (p *GusPlayer) SetupPlayer(e *Engine) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.engine.Store(e)
	p.player = p.ctx.NewPlayer(p)
}

// Write implements Mixer: Engine.Mix calls this with each finished block.
func (p *GusPlayer) Write(frames []int16) {
	p.ringMu.Lock()
	p.ring = append(p.ring, frames...)
	p.ringMu.Unlock()
}

// SetFrequency records the engine's requested base rate. oto's own sample
// rate is fixed at context construction, so the recorded value does not
// change the playback rate, and no message is emitted when they differ.
func (p *GusPlayer) SetFrequency(hz int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if hz != p.sampleRate {
		p.sampleRate = hz
	}
}

func (p *GusPlayer) Enable(enabled bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.started = enabled
}

// Read implements io.Reader for oto.Player. It keeps mixing MaxMixFrames
// blocks until the ring buffer has enough interleaved samples to satisfy
// the request, then drains exactly that many into out as little-endian
// signed 16-bit stereo.
func (p *GusPlayer) Read(out []byte) (int, error) {
	e := p.engine.Load()
	if e == nil {
		clear(out)
		return len(out), nil
	}

	needSamples := len(out) / 2
	for {
		p.ringMu.Lock()
		have := len(p.ring)
		p.ringMu.Unlock()
		if have >= needSamples {
			break
		}
		e.Mix(MaxMixFrames)
	}

	p.ringMu.Lock()
	chunk := p.ring[:needSamples]
	p.ring = p.ring[needSamples:]
	p.ringMu.Unlock()

	for i, s := range chunk {
		out[2*i] = byte(s)
		out[2*i+1] = byte(uint16(s) >> 8)
	}
	return len(out), nil
}

func (p *GusPlayer) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

func (p *GusPlayer) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.started && p.player != nil {
		p.player.Close()
		p.started = false
	}
}

func (p *GusPlayer) Close() {
	p.Stop()
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.player != nil {
		p.player.Close()
		p.player = nil
	}
}

func (p *GusPlayer) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}
