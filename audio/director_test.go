package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/lightcycle/engine"
)

type recorder struct {
	cues   []Cue
	hum    []int
	voices []int
	stop   int
}

func (r *recorder) Play(c Cue)           { r.cues = append(r.cues, c) }
func (r *recorder) StartHum(voices int)  { r.hum = append(r.hum, voices) }
func (r *recorder) SetVoices(voices int) { r.voices = append(r.voices, voices) }
func (r *recorder) StopHum()             { r.stop++ }

func TestDirectorRoundLifecycle(t *testing.T) {
	rec := &recorder{}
	d := NewDirector(rec)

	d.Reset(engine.Status{Phase: engine.PhaseCountdown, Countdown: 3, Alive: 3})
	d.Observe(engine.Status{Phase: engine.PhaseCountdown, Countdown: 2, Alive: 3})
	d.Observe(engine.Status{Phase: engine.PhaseCountdown, Countdown: 1, Alive: 3})
	d.Observe(engine.Status{Phase: engine.PhaseRunning, Alive: 3})
	d.Observe(engine.Status{Phase: engine.PhaseRunning, Tick: 1, Alive: 3})
	d.Observe(engine.Status{Phase: engine.PhaseRunning, Tick: 2, Alive: 2})
	d.Observe(engine.Status{Phase: engine.PhaseFinished, Outcome: engine.OutcomeWinner, Winner: 1, Tick: 3, Alive: 1})
	d.Observe(engine.Status{Phase: engine.PhaseFinished, Outcome: engine.OutcomeWinner, Winner: 1, Tick: 3, Alive: 1})

	assert.Equal(t, []Cue{
		CueCountdown, CueCountdown, CueCountdown,
		CueGo,
		CueCrash,
		CueCrash, CueVictory,
	}, rec.cues)
	assert.Equal(t, []int{3}, rec.hum, "hum starts once when the round starts running")
	assert.Equal(t, []int{2}, rec.voices, "an elimination retunes the running hum")
	assert.Equal(t, 2, rec.stop)
}

func TestDirectorDrawAndAbort(t *testing.T) {
	rec := &recorder{}
	d := NewDirector(rec)

	d.Reset(engine.Status{Phase: engine.PhaseRunning, Alive: 2})
	d.Observe(engine.Status{Phase: engine.PhaseFinished, Outcome: engine.OutcomeDraw, Timeout: true, Alive: 2})
	assert.Equal(t, []Cue{CueGo, CueDraw}, rec.cues)

	rec.cues = nil
	d.Reset(engine.Status{Phase: engine.PhaseRunning, Alive: 2})
	d.Observe(engine.Status{Phase: engine.PhaseFinished, Outcome: engine.OutcomeAborted})
	assert.Equal(t, []Cue{CueGo}, rec.cues)
}
