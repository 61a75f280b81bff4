package engine

import (
	"github.com/lixenwraith/lightcycle/arena"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/cycle"
	"github.com/lixenwraith/lightcycle/vmath"
)

// VehicleView is the read-only state of one vehicle after a tick
type VehicleView struct {
	ID       cycle.ID
	Position vmath.Vec2
	Heading  float64
	// Trail shares storage with the live trail but is capacity-clipped; points already in it
	// never change, so renderers may keep it across frames
	Trail  []vmath.Vec2
	Alive  bool
	InGap  bool
	Color  core.RGB
	Radius float64
}

// Snapshot is what the presentation layer sees between ticks
type Snapshot struct {
	Status   Status
	World    arena.World
	Vehicles []VehicleView
}

// Vehicle looks up one view by ID
func (s Snapshot) Vehicle(id cycle.ID) (VehicleView, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return VehicleView{}, false
}
