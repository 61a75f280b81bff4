package parameter

import "time"

// Round timing
const (
	DefaultTickRate       = 15 // ticks per second
	DefaultCountdownTicks = 3
	MaxRoundDuration      = 15 * time.Minute
)

var TickRateOptions = []int{10, 15, 20, 25}

// Start placement
const (
	// MinStartDistance is the required pairwise separation of start positions
	MinStartDistance = 200.0
	// StartJitter displaces players beyond the fourth around their quarter region
	StartJitter = 100
	// MaxPlacementAttempts bounds rejection sampling per vehicle before the grid fallback
	MaxPlacementAttempts = 512
)

// Players
const (
	MinPlayers = 1
	MaxPlayers = 6
)

// Zoom bounds; the world is the display divided by zoom
const (
	MinZoom     = 0.5
	MaxZoom     = 1.0
	DefaultZoom = 1.0
)

// Display size in world units at zoom 1.0
const (
	DefaultDisplayWidth  = 1920
	DefaultDisplayHeight = 1080
)
