package arena

import (
	"math"

	"github.com/lixenwraith/lightcycle/parameter"
	"github.com/lixenwraith/lightcycle/vmath"
)

// Start is a vehicle's initial head position and heading
type Start struct {
	Position vmath.Vec2
	Heading  float64
}

// Placement is the outcome of PlaceStarts
type Placement struct {
	Starts []Start
	// Fallback is set when rejection sampling gave up and the grid layout was used
	Fallback bool
	// Relaxed is set when the grid layout could not honor the minimum separation
	Relaxed bool
}

// axisHeadings are the four initial directions: east, west, south, north
var axisHeadings = [4]float64{0, math.Pi, math.Pi / 2, 3 * math.Pi / 2}

// PlaceStarts computes n pairwise-separated start positions.
// The first four players take the quarter points, further players are jittered around them;
// any position closer than minDist to an earlier one is re-rolled uniformly, at most
// maxAttempts times per player, after which every player is laid out on a deterministic grid.
func PlaceStarts(n int, w World, minDist float64, maxAttempts int, rng *vmath.FastRand) Placement {
	var p Placement
	if n <= 0 {
		return p
	}

	positions := make([]vmath.Vec2, 0, n)
	for i := 0; i < n; i++ {
		pos := quarterPoint(i, w)
		if i >= 4 {
			pos.X += float64(rng.IntRange(-parameter.StartJitter, parameter.StartJitter))
			pos.Y += float64(rng.IntRange(-parameter.StartJitter, parameter.StartJitter))
			pos = clampInside(pos, w)
		}

		attempts := 0
		for tooClose(pos, positions, minDist) {
			if attempts >= maxAttempts {
				p.Fallback = true
				break
			}
			pos = randomInside(w, rng)
			attempts++
		}
		if p.Fallback {
			break
		}
		positions = append(positions, pos)
	}

	if p.Fallback {
		var spacing float64
		positions, spacing = gridLayout(n, w)
		p.Relaxed = spacing < minDist
	}

	p.Starts = make([]Start, n)
	for i, pos := range positions {
		p.Starts[i] = Start{Position: pos, Heading: axisHeadings[rng.Intn(len(axisHeadings))]}
	}
	return p
}

func quarterPoint(i int, w World) vmath.Vec2 {
	qx := math.Floor(w.Width / 4)
	qy := math.Floor(w.Height / 4)
	switch i % 4 {
	case 0:
		return vmath.Vec2{X: qx, Y: qy}
	case 1:
		return vmath.Vec2{X: math.Floor(3 * w.Width / 4), Y: qy}
	case 2:
		return vmath.Vec2{X: qx, Y: math.Floor(3 * w.Height / 4)}
	default:
		return vmath.Vec2{X: math.Floor(3 * w.Width / 4), Y: math.Floor(3 * w.Height / 4)}
	}
}

func tooClose(pos vmath.Vec2, placed []vmath.Vec2, minDist float64) bool {
	for _, q := range placed {
		if pos.Dist(q) < minDist {
			return true
		}
	}
	return false
}

// randomInside samples integer coordinates at least one unit away from every edge
func randomInside(w World, rng *vmath.FastRand) vmath.Vec2 {
	u := int(w.Unit)
	return vmath.Vec2{
		X: float64(rng.IntRange(u, int(w.Width)-u)),
		Y: float64(rng.IntRange(u, int(w.Height)-u)),
	}
}

func clampInside(p vmath.Vec2, w World) vmath.Vec2 {
	p.X = math.Max(w.Unit, math.Min(p.X, w.Width-w.Unit))
	p.Y = math.Max(w.Unit, math.Min(p.Y, w.Height-w.Unit))
	return p
}

// gridLayout spreads n points over cell centers of a grid shaped after the world's aspect.
// Returns the positions and the smallest spacing between neighbours.
func gridLayout(n int, w World) ([]vmath.Vec2, float64) {
	cols := int(math.Ceil(math.Sqrt(float64(n) * w.Width / w.Height)))
	cols = max(1, min(cols, n))
	rows := (n + cols - 1) / cols

	cellW := w.Width / float64(cols)
	cellH := w.Height / float64(rows)

	out := make([]vmath.Vec2, 0, n)
	for i := 0; i < n; i++ {
		c, r := i%cols, i/cols
		out = append(out, vmath.Vec2{
			X: (float64(c) + 0.5) * cellW,
			Y: (float64(r) + 0.5) * cellH,
		})
	}

	spacing := math.Inf(1)
	if cols > 1 {
		spacing = cellW
	}
	if rows > 1 {
		spacing = math.Min(spacing, cellH)
	}
	return out, spacing
}
