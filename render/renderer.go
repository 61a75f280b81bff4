package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/engine"
	"github.com/lixenwraith/lightcycle/parameter"
	"github.com/lixenwraith/lightcycle/status"
)

const (
	trailGlyph = '█'
	headGlyph  = '●'
	hudSlot    = 8
)

// Frame is everything one draw needs besides the screen
type Frame struct {
	Snapshot engine.Snapshot
	Paused   bool
	Muted    bool
	// Match is optional; when set the end screen shows the tally
	Match *engine.Match
}

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer

	// stats, when set, are shown on the HUD row
	stats *status.Registry
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewBuffer(w, h),
	}
}

// ShowStats enables the metrics summary on the HUD row
func (r *Renderer) ShowStats(reg *status.Registry) {
	r.stats = reg
}

// Resize follows the screen size, call it on resize events
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)
}

// Buffer exposes the composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Draw composes and shows one frame
func (r *Renderer) Draw(f Frame) {
	r.buf.Clear(parameter.RGBBackground)
	w, h := r.buf.Size()
	if w == 0 || h <= hudRows {
		return
	}

	snap := f.Snapshot
	vp := NewViewport(snap.World, w, h)

	for _, v := range snap.Vehicles {
		r.drawTrail(vp, v)
	}
	for _, v := range snap.Vehicles {
		r.drawHead(vp, v)
	}

	r.drawHUD(w, f)

	switch {
	case snap.Status.Phase == engine.PhaseCountdown:
		r.center(h/2, fmt.Sprintf("%d", max(snap.Status.Countdown, 1)), parameter.RGBText, true)
	case snap.Status.Finished():
		r.drawEnd(h, f)
	case f.Paused:
		r.center(h/2, "PAUSED", parameter.RGBText, true)
		r.center(h/2+1, "p: resume", parameter.RGBText, false)
	}

	r.buf.Flush(r.screen)
	r.screen.Show()
}

// drawTrail connects consecutive trail points; jumps longer than TrailBreakDistance are wraps
// or gaps and stay open
func (r *Renderer) drawTrail(vp Viewport, v engine.VehicleView) {
	color := v.Color.Trail(v.Alive)
	plot := func(x, y int) { r.buf.SetFg(x, y, trailGlyph, color) }

	points := v.Trail
	if !v.InGap {
		points = append(points, v.Position)
	}

	for i, p := range points {
		x1, y1 := vp.Cell(p)
		if i == 0 || p.Dist(points[i-1]) > parameter.TrailBreakDistance {
			plot(x1, y1)
			continue
		}
		x0, y0 := vp.Cell(points[i-1])
		line(x0, y0, x1, y1, plot)
	}
}

func (r *Renderer) drawHead(vp Viewport, v engine.VehicleView) {
	x, y := vp.Cell(v.Position)
	r.buf.Set(x, y, Cell{Rune: headGlyph, Fg: v.Color.Head(v.Alive), Bg: parameter.RGBBackground, Bold: v.Alive})
}

// playerLabel is the HUD entry: S<n> while alive, G/O once eliminated
func playerLabel(v engine.VehicleView) string {
	if v.Alive {
		return fmt.Sprintf("S%d", v.ID)
	}
	return "G/O"
}

func (r *Renderer) drawHUD(w int, f Frame) {
	r.buf.Fill(0, 0, w, parameter.RGBHudBackground)

	x := 1
	for _, v := range f.Snapshot.Vehicles {
		r.buf.Text(x, 0, playerLabel(v), v.Color, true)
		x += hudSlot
	}

	if r.stats != nil {
		x = r.buf.Text(x+1, 0, r.stats.Summary(), parameter.RGBText.Scale(0.6), false)
	}

	right := fmt.Sprintf("Time: %ds", int(f.Snapshot.Status.Elapsed.Seconds()))
	if f.Muted {
		right = "muted  " + right
	}
	r.buf.Text(max(w-len(right)-1, x+1), 0, right, parameter.RGBText, false)
}

func (r *Renderer) drawEnd(h int, f Frame) {
	st := f.Snapshot.Status
	msg, color := EndMessage(f.Snapshot)
	r.center(h/2-1, msg, color, true)

	if f.Match != nil && st.Outcome != engine.OutcomeAborted {
		r.center(h/2, tally(f.Match, f.Snapshot), parameter.RGBText, false)
	}
	r.center(h/2+1, "Enter: next round   Esc: quit", parameter.RGBText, false)
}

// EndMessage is the headline of a finished round
func EndMessage(s engine.Snapshot) (string, core.RGB) {
	st := s.Status
	switch {
	case st.Outcome == engine.OutcomeWinner:
		color := parameter.RGBText
		if v, ok := s.Vehicle(st.Winner); ok {
			color = v.Color
		}
		return fmt.Sprintf("Player %d wins!", st.Winner), color
	case st.Timeout:
		return "Time up!", parameter.RGBText
	case st.Outcome == engine.OutcomeAborted:
		return "Round aborted", parameter.RGBText
	}
	return "Draw!", parameter.RGBText
}

func tally(m *engine.Match, s engine.Snapshot) string {
	parts := make([]string, 0, len(s.Vehicles)+1)
	for _, v := range s.Vehicles {
		parts = append(parts, fmt.Sprintf("P%d %d", v.ID, m.Wins(v.ID)))
	}
	parts = append(parts, fmt.Sprintf("draws %d", m.Draws()))
	return strings.Join(parts, "  ")
}

func (r *Renderer) center(y int, s string, fg core.RGB, bold bool) {
	w, _ := r.buf.Size()
	n := len([]rune(s))
	x := max((w-n)/2, 0)
	for i := x; i < x+n; i++ {
		r.buf.Set(i, y, Cell{Rune: ' ', Bg: parameter.RGBBackground})
	}
	r.buf.Text(x, y, s, fg, bold)
}
