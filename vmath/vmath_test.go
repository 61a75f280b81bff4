package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAxis(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		bound float64
		want  float64
	}{
		{"inside", 400, 800, 400},
		{"zero stays", 0, 800, 0},
		{"far edge wraps to zero", 800, 800, 0},
		{"past far edge wraps to zero", 815, 800, 0},
		{"below zero wraps one unit short", -5, 800, 780},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapAxis(tt.v, tt.bound, 20))
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.5, NormalizeAngle(0.5), 1e-12)
	assert.InDelta(t, TwoPi-0.5, NormalizeAngle(-0.5), 1e-12)
	assert.InDelta(t, 1.0, NormalizeAngle(1.0+3*TwoPi), 1e-9)

	a := NormalizeAngle(-1e-18)
	assert.GreaterOrEqual(t, a, 0.0)
	assert.Less(t, a, TwoPi)
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0, 20)
	assert.Equal(t, V2(20, 0), v)

	v = FromAngle(math.Pi/2, 20)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 20, v.Y, 1e-12)
}

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, V2(0, 0).Dist(V2(3, 4)))
	assert.Equal(t, 25.0, V2(0, 0).DistSq(V2(3, 4)))
	assert.True(t, V2(0, 599.9).In(800, 600))
	assert.False(t, V2(800, 0).In(800, 600))
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := r.IntRange(2, 4)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	assert.Len(t, seen, 3, "every value in [2,4] should appear")
	assert.Equal(t, 3, r.IntRange(3, 3))
	assert.Equal(t, 0, r.Intn(0))
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	assert.NotZero(t, r.Next())
}
