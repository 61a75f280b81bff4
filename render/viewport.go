package render

import (
	"github.com/lixenwraith/lightcycle/arena"
	"github.com/lixenwraith/lightcycle/vmath"
)

// hudRows is the number of terminal rows above the arena
const hudRows = 1

// Viewport maps world coordinates onto the terminal cells below the HUD
type Viewport struct {
	World      arena.World
	Cols, Rows int
}

func NewViewport(world arena.World, screenWidth, screenHeight int) Viewport {
	return Viewport{
		World: world,
		Cols:  max(screenWidth, 1),
		Rows:  max(screenHeight-hudRows, 1),
	}
}

// Cell returns the screen cell for a world position
func (v Viewport) Cell(p vmath.Vec2) (int, int) {
	x := int(p.X / v.World.Width * float64(v.Cols))
	y := int(p.Y / v.World.Height * float64(v.Rows))
	return min(max(x, 0), v.Cols-1), min(max(y, 0), v.Rows-1) + hudRows
}

// line walks the cells from (x0,y0) to (x1,y1) inclusive, Bresenham style
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
