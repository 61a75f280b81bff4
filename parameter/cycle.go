package parameter

// Vehicle motion, in world units per tick
const (
	// BlockSize is the distance a head travels per tick and the wrap unit at the near edges
	BlockSize = 20.0
	Speed     = BlockSize

	// CollisionFactor shrinks the drawn head radius to the hit radius
	CollisionFactor = 0.8
)

// Cycle defaults, matching the middle entries of the option tables
const (
	DefaultWidth     = 10.0
	DefaultTurnRate  = 0.2 // radians per tick
	DefaultGapChance = 0.1
	DefaultMinGap    = 2
	DefaultMaxGap    = 4
)

// Selectable option tables, a setting outside a table snaps to the nearest entry
var (
	WidthOptions    = []float64{8, 10, 12, 14}
	TurnRateOptions = []float64{0.1, 0.2, 0.3, 0.4}
)
