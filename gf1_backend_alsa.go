//go:build !headless

// gf1_backend_alsa.go - direct ALSA output for headless hosts avoiding oto

package main

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* gf1_openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int gf1_setupPCM(snd_pcm_t* handle, unsigned int rate) {
    snd_pcm_hw_params_t* params;
    int err;

    snd_pcm_hw_params_alloca(&params);
    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_format(handle, params, SND_PCM_FORMAT_S16_LE);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_channels(handle, params, 2);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) return err;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) return err;

    return snd_pcm_prepare(handle);
}

static int gf1_writePCM(snd_pcm_t* handle, short* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void gf1_closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"
import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// AlsaPlayer talks to ALSA directly through the same cgo binding the
// teacher uses for its own output path, for hosts that want to skip the
// oto dependency chain entirely.
type AlsaPlayer struct {
	handle  *C.snd_pcm_t
	engine  *Engine
	started bool
	playing bool
	mutex   sync.Mutex
	frames  []int16
}

func NewAlsaPlayer(sampleRate int) (*AlsaPlayer, error) {
	var cerr C.int
	handle := C.gf1_openPCM(C.CString("default"), &cerr)
	if cerr < 0 {
		return nil, fmt.Errorf("gf1: failed to open ALSA device: %s", C.GoString(C.snd_strerror(cerr)))
	}

	if cerr = C.gf1_setupPCM(handle, C.uint(sampleRate)); cerr < 0 {
		C.gf1_closePCM(handle)
		return nil, fmt.Errorf("gf1: failed to configure ALSA device: %s", C.GoString(C.snd_strerror(cerr)))
	}

	return &AlsaPlayer{
		handle: handle,
		frames: make([]int16, MaxMixFrames*2),
	}, nil
}

func (ap *AlsaPlayer) SetupPlayer(e *Engine) {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	ap.engine = e
}

// Write implements Mixer. ALSA write failures are logged rather than
// returned: the Mixer contract treats the downstream device as infallible,
// matching the teacher's own audio backends.
func (ap *AlsaPlayer) Write(frames []int16) {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()

	if !ap.playing || len(frames) == 0 {
		return
	}

	n := copy(ap.frames, frames)
	written := C.gf1_writePCM(ap.handle, (*C.short)(unsafe.Pointer(&ap.frames[0])), C.int(n/2))
	if written < 0 {
		if written == -C.EPIPE {
			C.snd_pcm_prepare(ap.handle)
			written = C.gf1_writePCM(ap.handle, (*C.short)(unsafe.Pointer(&ap.frames[0])), C.int(n/2))
		}
		if written < 0 {
			fmt.Fprintf(os.Stderr, "gf1: ALSA write failed: %s\n", C.GoString(C.snd_strerror(C.int(written))))
		}
	}
}

func (ap *AlsaPlayer) SetFrequency(hz int) {}

func (ap *AlsaPlayer) Enable(enabled bool) {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	ap.playing = enabled
}

// Pump drives playback on the caller's goroutine: it mixes one block at a
// time and writes it straight to ALSA. RunDemo runs this in a loop instead
// of relying on an OS-level pull callback, since ALSA's blocking write
// already provides the pacing oto's Read() callback provides.
func (ap *AlsaPlayer) Pump() error {
	ap.mutex.Lock()
	e := ap.engine
	ap.mutex.Unlock()
	if e == nil {
		return nil
	}
	e.Mix(MaxMixFrames)
	return nil
}

func (ap *AlsaPlayer) Start() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	if !ap.started {
		ap.started = true
		ap.playing = true
	}
}

func (ap *AlsaPlayer) Stop() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	if ap.playing {
		ap.playing = false
		ap.started = false
	}
}

func (ap *AlsaPlayer) Close() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	if ap.handle != nil {
		ap.playing = false
		ap.started = false
		C.gf1_closePCM(ap.handle)
		ap.handle = nil
	}
}

func (ap *AlsaPlayer) IsStarted() bool {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	return ap.started
}
