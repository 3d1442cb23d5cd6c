package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the demo's 2D overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowGizmos   bool

	stats      func() gizmos.Stats
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden. stats feeds the gizmo
// overlay and may be nil.
func New(stats func() gizmos.Stats) *Debug {
	return &Debug{stats: stats}
}

// Lines returns the overlay text, recomputing it every updateInterval frames.
func (d *Debug) Lines() []string {
	d.frameCount++
	if d.frameCount%updateInterval != 0 && d.lines != nil {
		return d.lines
	}
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.ShowGizmos && d.stats != nil {
		d.lines = append(d.lines, FormatStats(d.stats())...)
	}
	return d.lines
}

// FormatStats renders gizmo stats as overlay lines.
func FormatStats(st gizmos.Stats) []string {
	return []string{
		fmt.Sprintf("Gizmos: %d/%d queued, %d overwritten", st.Active, st.Capacity, st.Overwritten),
		fmt.Sprintf("Last pass: %d drawn, %d culled, %d vertices", st.LastPass.Drawn, st.LastPass.Culled, st.LastPass.Vertices),
	}
}

// Draw renders the enabled overlays top-right in green. Call after the 3D scene.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines() {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
