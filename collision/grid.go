package collision

import (
	"math"

	"github.com/lixenwraith/lightcycle/vmath"
)

// Grid is a dense spatial hash over the world.
// Cells are at least as large as the biggest hit radius, so a query touches a 3x3 block;
// larger radii widen the block so results always match Scan.
type Grid struct {
	cell       float64
	cols, rows int
	cells      [][]vmath.Vec2
	count      int
}

// NewGrid covers [0,width) x [0,height) with square cells of the given size
func NewGrid(width, height, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := max(1, int(math.Ceil(width/cellSize)))
	rows := max(1, int(math.Ceil(height/cellSize)))
	return &Grid{
		cell:  cellSize,
		cols:  cols,
		rows:  rows,
		cells: make([][]vmath.Vec2, cols*rows),
	}
}

func (g *Grid) cellOf(p vmath.Vec2) (int, int) {
	cx := int(math.Floor(p.X / g.cell))
	cy := int(math.Floor(p.Y / g.cell))
	return min(max(cx, 0), g.cols-1), min(max(cy, 0), g.rows-1)
}

// Track inserts a point, O(1) amortized
func (g *Grid) Track(p vmath.Vec2) {
	cx, cy := g.cellOf(p)
	idx := cy*g.cols + cx
	g.cells[idx] = append(g.cells[idx], p)
	g.count++
}

func (g *Grid) Hit(head vmath.Vec2, radius float64) (bool, int) {
	span := max(1, int(math.Ceil(radius/g.cell)))
	cx, cy := g.cellOf(head)

	compared := 0
	for y := max(cy-span, 0); y <= min(cy+span, g.rows-1); y++ {
		for x := max(cx-span, 0); x <= min(cx+span, g.cols-1); x++ {
			hit, n := HitPoints(head, radius, g.cells[y*g.cols+x])
			compared += n
			if hit {
				return true, compared
			}
		}
	}
	return false, compared
}

// Len is the number of tracked points
func (g *Grid) Len() int {
	return g.count
}
