package cycle

// GapSource supplies the randomness behind trail gaps
type GapSource interface {
	// Float64 returns a uniform sample in [0, 1)
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi]
	IntRange(lo, hi int) int
}

// extendTrail runs one tick of the gap generator.
// An ongoing gap counts down; otherwise a new gap starts with GapChance, and only when
// neither applies is the current head appended.
func (v *Vehicle) extendTrail(gaps GapSource) bool {
	if v.GapRemaining > 0 {
		v.GapRemaining--
		return false
	}

	if gaps.Float64() < v.GapChance {
		v.GapRemaining = gaps.IntRange(v.MinGap, v.MaxGap)
		return false
	}

	v.Trail = append(v.Trail, v.Position)
	return true
}

// InGap reports whether the trail is currently not being extended
func (v *Vehicle) InGap() bool {
	return v.GapRemaining > 0
}
