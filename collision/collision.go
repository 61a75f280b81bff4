package collision

import (
	"iter"

	"github.com/lixenwraith/lightcycle/vmath"
)

// Detector answers head-versus-trail queries for one round
type Detector interface {
	// Track registers a newly appended trail point
	Track(p vmath.Vec2)
	// Hit reports whether any tracked point lies strictly closer than radius to head,
	// along with the number of points compared
	Hit(head vmath.Vec2, radius float64) (bool, int)
}

// HitPoints is the reference test: Euclidean distance strictly below radius
func HitPoints(head vmath.Vec2, radius float64, points []vmath.Vec2) (bool, int) {
	for i, p := range points {
		if head.Dist(p) < radius {
			return true, i + 1
		}
	}
	return false, len(points)
}

// Scan is the brute-force detector, walking every trail on every query
type Scan struct {
	trails iter.Seq[[]vmath.Vec2]
}

// NewScan reads trails through the sequence at query time, so Track is not needed
func NewScan(trails iter.Seq[[]vmath.Vec2]) *Scan {
	return &Scan{trails: trails}
}

func (s *Scan) Track(vmath.Vec2) {}

func (s *Scan) Hit(head vmath.Vec2, radius float64) (bool, int) {
	compared := 0
	for trail := range s.trails {
		hit, n := HitPoints(head, radius, trail)
		compared += n
		if hit {
			return true, compared
		}
	}
	return false, compared
}
