package cycle

import (
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/vmath"
)

// ID identifies a vehicle within a round, assigned in registration order starting at 1
type ID int

// Steer is the per-tick steering command, both held cancel out
type Steer struct {
	Left, Right bool
}

// Direction is -1 for left, +1 for right, 0 for none or both
func (s Steer) Direction() float64 {
	d := 0.0
	if s.Right {
		d++
	}
	if s.Left {
		d--
	}
	return d
}

// Wrapper maps a moved position back into the world
type Wrapper interface {
	Wrap(p vmath.Vec2) vmath.Vec2
}

// Params are fixed for the lifetime of a round
type Params struct {
	Speed     float64 // world units per tick
	Radius    float64 // drawn head radius, the hit radius derives from it
	TurnRate  float64 // radians per tick
	GapChance float64
	MinGap    int
	MaxGap    int
	Color     core.RGB
}

// Vehicle is one light cycle: a moving head leaving an append-only trail
type Vehicle struct {
	Params

	ID           ID
	Position     vmath.Vec2
	Heading      float64
	Velocity     vmath.Vec2
	Trail        []vmath.Vec2
	Alive        bool
	GapRemaining int

	steer Steer
}

// New creates a living vehicle with an empty trail
func New(id ID, pos vmath.Vec2, heading float64, p Params) *Vehicle {
	return &Vehicle{
		Params:   p,
		ID:       id,
		Position: pos,
		Heading:  heading,
		Velocity: vmath.FromAngle(heading, p.Speed),
		Trail:    make([]vmath.Vec2, 0, 256),
		Alive:    true,
	}
}

// SetSteer latches the steering command used by subsequent ticks
func (v *Vehicle) SetSteer(s Steer) {
	v.steer = s
}

func (v *Vehicle) CurrentSteer() Steer {
	return v.steer
}

// Integrate advances the vehicle by dt ticks: turn, recompute velocity, extend the trail
// with the pre-move head, move and wrap. Dead vehicles are frozen.
// Returns true if a trail point was appended.
func (v *Vehicle) Integrate(dt float64, world Wrapper, gaps GapSource) bool {
	if !v.Alive {
		return false
	}

	if dir := v.steer.Direction(); dir != 0 {
		v.Heading = vmath.NormalizeAngle(v.Heading + v.TurnRate*dt*dir)
	}
	v.Velocity = vmath.FromAngle(v.Heading, v.Speed)

	appended := v.extendTrail(gaps)

	v.Position = world.Wrap(v.Position.Add(v.Velocity.Scale(dt)))
	return appended
}

// Kill marks the vehicle dead, returns false if it already was
func (v *Vehicle) Kill() bool {
	if !v.Alive {
		return false
	}
	v.Alive = false
	v.steer = Steer{}
	return true
}

// TrailView returns the trail with capacity clipped, so appends by a reader never alias
func (v *Vehicle) TrailView() []vmath.Vec2 {
	n := len(v.Trail)
	return v.Trail[:n:n]
}
