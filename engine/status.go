package engine

import (
	"time"

	"github.com/lixenwraith/lightcycle/cycle"
)

// Phase is the round state machine position
type Phase uint8

const (
	PhaseCountdown Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Outcome is set once the round is finished
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWinner
	OutcomeDraw
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWinner:
		return "winner"
	case OutcomeDraw:
		return "draw"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}

// Status is returned by every Step
type Status struct {
	Phase   Phase
	Outcome Outcome
	// Winner is valid only with OutcomeWinner
	Winner cycle.ID
	// Timeout marks a draw caused by the round duration running out
	Timeout bool

	// Tick counts running ticks; countdown ticks are not included
	Tick      uint64
	Elapsed   time.Duration
	Countdown int
	Alive     int
}

func (s Status) Finished() bool { return s.Phase == PhaseFinished }
func (s Status) Draw() bool     { return s.Outcome == OutcomeDraw }
