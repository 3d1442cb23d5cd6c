package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos/internal/config"
	"github.com/popcron/gizmos/internal/cull"
	"github.com/popcron/gizmos/internal/dash"
	"github.com/popcron/gizmos/internal/queue"
)

// PassStats summarizes one render pass.
type PassStats struct {
	Drawn    int
	Culled   int
	Vertices int
}

// Driver drains a queue into a backend once per eligible camera.
type Driver struct {
	queue    *queue.Queue
	settings *config.Settings

	// scratch buffers, reused across elements and passes
	shifted []rl.Vector3
	dashed  []rl.Vector3
}

// NewDriver returns a driver for q configured by s.
func NewDriver(q *queue.Queue, s *config.Settings) *Driver {
	return &Driver{queue: q, settings: s}
}

// Run drains every active element in slot order. Each element is offset,
// culled against cam (when culling is on), dashed (when flagged) and emitted
// to b. A nil cam disables culling for the pass. now drives the dash phase.
func (d *Driver) Run(b Backend, cam *cull.Camera, now float64) PassStats {
	var st PassStats
	culling := d.settings.FrustumCulling() && cam != nil
	mode := d.settings.CullMode()
	gap := d.settings.DashGap()
	offset := d.settings.Offset()
	shift := offset != (rl.Vector3{})
	alt := dash.Phase(now)

	b.Begin()
	d.queue.Drain(func(el *queue.Element) {
		pts := el.Points[:len(el.Points)&^1]
		if shift {
			d.shifted = d.shifted[:0]
			for _, p := range pts {
				d.shifted = append(d.shifted, rl.Vector3Add(p, offset))
			}
			pts = d.shifted
		}
		if culling && !cull.Visible(pts, cam, mode) {
			st.Culled++
			return
		}
		if el.Dashed {
			d.dashed = dash.Subdivide(d.dashed[:0], pts, gap, alt)
			pts = d.dashed
		}
		for _, p := range pts {
			b.Vertex(p, el.Color)
		}
		st.Drawn++
		st.Vertices += len(pts)
	})
	b.End()
	return st
}
