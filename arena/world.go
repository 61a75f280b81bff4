package arena

import (
	"github.com/lixenwraith/lightcycle/parameter"
	"github.com/lixenwraith/lightcycle/vmath"
)

// World is the rectangular wrap-around arena in world units
type World struct {
	Width, Height float64
	// Unit is how far short of the far edge a head re-enters after leaving through zero
	Unit float64
	Zoom float64
}

// NewWorld sizes the world from the display; zooming out enlarges the world
func NewWorld(displayWidth, displayHeight, zoom float64) World {
	return World{
		Width:  displayWidth / zoom,
		Height: displayHeight / zoom,
		Unit:   parameter.BlockSize,
		Zoom:   zoom,
	}
}

// Wrap maps each axis independently back into [0, Width) x [0, Height)
func (w World) Wrap(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.WrapAxis(p.X, w.Width, w.Unit),
		Y: vmath.WrapAxis(p.Y, w.Height, w.Unit),
	}
}

func (w World) Contains(p vmath.Vec2) bool {
	return p.In(w.Width, w.Height)
}

// Center of the arena
func (w World) Center() vmath.Vec2 {
	return vmath.Vec2{X: w.Width / 2, Y: w.Height / 2}
}
