package parameter

import (
	"time"

	"github.com/lixenwraith/lightcycle/core"
)

// Palette assigns colors to players by registration order
var Palette = []core.RGB{
	{R: 100, G: 255, B: 100}, // green
	{R: 255, G: 100, B: 100}, // red
	{R: 100, G: 100, B: 255}, // light blue
	{R: 255, G: 255, B: 100}, // yellow
	{R: 255, G: 100, B: 255}, // magenta
	{R: 100, G: 255, B: 255}, // cyan
}

var (
	RGBHudBackground = core.RGB{R: 50, G: 50, B: 50}
	RGBText          = core.RGB{R: 255, G: 255, B: 255}
	RGBBackground    = core.RGB{R: 0, G: 0, B: 0}
)

// TrailBreakDistance splits the drawn trail where consecutive points jump (wrap or gap)
const TrailBreakDistance = 2 * BlockSize

// Key hold window; terminals report presses but not releases
const DefaultKeyHold = 220 * time.Millisecond

// FrameInterval is the render cadence while the round is paused or finished
const FrameInterval = 50 * time.Millisecond
