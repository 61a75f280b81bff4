package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a one-shot sound tied to a round event
type Cue uint8

const (
	CueCountdown Cue = iota // each countdown step
	CueGo                   // round starts running
	CueCrash                // a cycle is eliminated
	CueVictory              // a round finished with a winner
	CueDraw                 // a round finished without one
)

func (c Cue) String() string {
	switch c {
	case CueCountdown:
		return "countdown"
	case CueGo:
		return "go"
	case CueCrash:
		return "crash"
	case CueVictory:
		return "victory"
	case CueDraw:
		return "draw"
	}
	return "unknown"
}

// note is one step of a cue
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
	attack   time.Duration
	release  time.Duration
}

var cueNotes = map[Cue][]note{
	CueCountdown: {{440, 120 * time.Millisecond, WaveSquare, 5 * time.Millisecond, 60 * time.Millisecond}},
	CueGo:        {{880, 300 * time.Millisecond, WaveSquare, 5 * time.Millisecond, 150 * time.Millisecond}},
	CueCrash: {
		{0, 350 * time.Millisecond, WaveNoise, 2 * time.Millisecond, 300 * time.Millisecond},
	},
	CueVictory: {
		{523.25, 150 * time.Millisecond, WaveSquare, 5 * time.Millisecond, 40 * time.Millisecond},
		{659.25, 150 * time.Millisecond, WaveSquare, 5 * time.Millisecond, 40 * time.Millisecond},
		{783.99, 400 * time.Millisecond, WaveSquare, 5 * time.Millisecond, 250 * time.Millisecond},
	},
	CueDraw: {
		{392, 200 * time.Millisecond, WaveSaw, 5 * time.Millisecond, 80 * time.Millisecond},
		{261.63, 450 * time.Millisecond, WaveSaw, 5 * time.Millisecond, 300 * time.Millisecond},
	},
}

var cueVolume = map[Cue]float64{
	CueCountdown: 0.3,
	CueGo:        0.35,
	CueCrash:     0.5,
	CueVictory:   0.3,
	CueDraw:      0.3,
}

// CueStreamer renders a cue as a finite stream, nil for unknown cues
func CueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, n.attack, n.release, rate))
	}
	return newVolume(beep.Seq(parts...), cueVolume[c])
}
