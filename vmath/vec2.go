package vmath

import (
	"math"
	"strconv"
)

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// Vec2 is a continuous 2D coordinate or displacement in world units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2  { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) MagSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).MagSq() }

// Dist is the Euclidean distance, no wrap-around shortcut
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// In reports whether v lies in [0,w) x [0,h)
func (v Vec2) In(w, h float64) bool { return v.X >= 0 && v.X < w && v.Y >= 0 && v.Y < h }

func (v Vec2) String() string {
	return "(" + strconv.FormatFloat(v.X, 'f', 2, 64) + ", " + strconv.FormatFloat(v.Y, 'f', 2, 64) + ")"
}

// FromAngle returns the vector of the given length pointing along heading
func FromAngle(heading, length float64) Vec2 {
	return Vec2{length * math.Cos(heading), length * math.Sin(heading)}
}

// NormalizeAngle maps a into [0, 2π)
// Only cos/sin consume headings, so this changes nothing observable beyond float drift
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod of a tiny negative number plus 2π can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// WrapAxis maps v back into [0, bound) the way the arena edges behave:
// leaving through the far edge re-enters at 0, leaving through 0 re-enters one unit short of the far edge
func WrapAxis(v, bound, unit float64) float64 {
	switch {
	case v >= bound:
		return 0
	case v < 0:
		return bound - unit
	}
	return v
}
