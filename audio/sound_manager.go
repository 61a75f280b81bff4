package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and mixes cues over the engine hum
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	humStreamer *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
	// humOn is the director's request; the hum only plays while also unmuted
	humOn bool

	muted  atomic.Bool
	voices atomic.Int64
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds; beep has no speaker close, clearing the mixer silences it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.humStreamer = nil
	sm.initialized = false
}

// Play queues a one-shot cue
func (sm *SoundManager) Play(c Cue) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CueStreamer(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartHum starts the engine drone, pitched by the number of living cycles
func (sm *SoundManager) StartHum(voices int) {
	sm.voices.Store(int64(voices))

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.humOn = true
	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.humStreamer != nil {
		sm.humStreamer.Paused = sm.muted.Load()
		return
	}

	gen := newHumGenerator(sampleRate, func() int { return int(sm.voices.Load()) })
	sm.humStreamer = &beep.Ctrl{Streamer: gen, Paused: sm.muted.Load()}
	sm.mixer.Add(sm.humStreamer)
}

// SetVoices retunes a running hum; the generator reads the count on every buffer
func (sm *SoundManager) SetVoices(voices int) {
	sm.voices.Store(int64(voices))
}

func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.humOn = false
	sm.pauseHum(true)
}

// pauseHum must be called with sm.mu held
func (sm *SoundManager) pauseHum(paused bool) {
	if sm.humStreamer == nil {
		return
	}
	speaker.Lock()
	sm.humStreamer.Paused = paused
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new one; unmuting resumes a requested hum
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	sm.pauseHum(muted || !sm.humOn)
	return muted
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}
