package audio

import (
	"github.com/lixenwraith/lightcycle/engine"
)

// Player is the sound sink driven by a Director; SoundManager implements it
type Player interface {
	Play(c Cue)
	StartHum(voices int)
	SetVoices(voices int)
	StopHum()
}

// Director turns round status changes into cues
type Director struct {
	player Player
	last   engine.Status
}

func NewDirector(p Player) *Director {
	return &Director{player: p}
}

// Reset starts following a new round from its initial status
func (d *Director) Reset(s engine.Status) {
	d.last = s
	switch s.Phase {
	case engine.PhaseCountdown:
		d.player.StopHum()
		d.player.Play(CueCountdown)
	case engine.PhaseRunning:
		d.player.Play(CueGo)
		d.player.StartHum(s.Alive)
	}
}

// Observe compares s with the previously seen status and plays what changed
func (d *Director) Observe(s engine.Status) {
	prev := d.last
	d.last = s

	switch {
	case s.Phase == engine.PhaseCountdown && s.Countdown < prev.Countdown:
		d.player.Play(CueCountdown)
	case s.Phase == engine.PhaseRunning && prev.Phase == engine.PhaseCountdown:
		d.player.Play(CueGo)
	}

	if s.Phase == engine.PhaseRunning {
		switch {
		case prev.Phase != engine.PhaseRunning:
			d.player.StartHum(s.Alive)
		case s.Alive != prev.Alive:
			d.player.SetVoices(s.Alive)
		}
	}

	if s.Alive < prev.Alive && s.Outcome != engine.OutcomeAborted {
		d.player.Play(CueCrash)
	}

	if s.Finished() && !prev.Finished() {
		d.player.StopHum()
		switch s.Outcome {
		case engine.OutcomeWinner:
			d.player.Play(CueVictory)
		case engine.OutcomeDraw:
			d.player.Play(CueDraw)
		}
	}
}
