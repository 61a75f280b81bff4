package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Shading of a player's color on the arena
const (
	// DeadFade is the brightness left to the trail and head of an eliminated cycle
	DeadFade = 0.45
	// HeadGlow is how far a living head is pulled toward white
	HeadGlow = 0.35
)

// Trail is the color a cycle's trail is drawn in; eliminated cycles fade but stay visible
// since their trails remain lethal
func (c RGB) Trail(alive bool) RGB {
	if alive {
		return c
	}
	return c.Scale(DeadFade)
}

// Head is the color of the cycle's head glyph: brighter than the trail while alive,
// faded with it once eliminated
func (c RGB) Head(alive bool) RGB {
	if alive {
		return c.Blend(RGBWhite, HeadGlow)
	}
	return c.Scale(DeadFade)
}

// Blend mixes src over c: result = src*alpha + c*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	switch {
	case alpha <= 0:
		return c
	case alpha >= 1:
		return src
	}
	mix := func(s, d uint8) uint8 { return uint8(float64(s)*alpha + float64(d)*(1-alpha)) }
	return RGB{R: mix(src.R, c.R), G: mix(src.G, c.G), B: mix(src.B, c.B)}
}

// Scale multiplies each channel by factor, clamped to [0, 1]
func (c RGB) Scale(factor float64) RGB {
	switch {
	case factor <= 0:
		return RGBBlack
	case factor >= 1:
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
