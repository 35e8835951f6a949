package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Engine owns the speaker and the pre-rendered cue buffers. A zero Engine
// (or one whose Init failed) is safe to use and plays nothing, so the rest
// of the game never has to care whether audio is available.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        [cueCount]floatBuffer
	muted       bool
	initialized bool
}

// NewEngine creates an engine with all cue buffers rendered. The speaker is
// not opened until Init.
func NewEngine() *Engine {
	e := &Engine{
		mixer: &beep.Mixer{},
	}
	for c := Cue(0); c < cueCount; c++ {
		e.cues[c] = renderCue(c)
	}
	return e
}

// Init opens the speaker and starts the mixer. On error the engine stays
// disabled and every Play call is a no-op.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close stops all sounds. The speaker itself cannot be closed by beep, so
// clearing the mixer is the best we can do.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// SetMuted toggles cue playback without touching the speaker.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Muted reports whether cue playback is suppressed.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Play queues a cue on the mixer. Safe to call from the game tick, on a
// disabled or muted engine it does nothing.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}
	if c < 0 || c >= cueCount {
		return
	}

	speaker.Lock()
	e.mixer.Add(newBufferStreamer(e.cues[c]))
	speaker.Unlock()
}
