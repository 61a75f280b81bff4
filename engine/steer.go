package engine

import "github.com/lixenwraith/lightcycle/cycle"

// Steer is the steering intent of one vehicle
type Steer = cycle.Steer

// SteerSource yields the current steering intent of one input modality,
// polled once at the start of every running tick
type SteerSource interface {
	Steer() Steer
}

// SteerFunc adapts a function to SteerSource
type SteerFunc func() Steer

func (f SteerFunc) Steer() Steer { return f() }
