package gizmos

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos/internal/cull"
)

// Render drains pending shapes into the backend for cam, rendered into a
// width×height viewport. Call it once per camera per frame, inside that
// camera's 3D mode. Cameras that are not eligible leave the queue untouched
// for the next one.
func (g *Gizmos) Render(cam *rl.Camera3D, width, height float32) PassStats {
	if cam == nil || !g.eligible(cam) {
		return PassStats{}
	}
	before := g.queue.Stats().Overwritten
	st := g.driver.Run(g.backend, cull.NewCamera(*cam, width, height), g.clock())

	g.mu.Lock()
	g.last = st
	g.mu.Unlock()

	log := Logger()
	if after := g.queue.Stats().Overwritten; after > before {
		log.Debug("gizmos: shapes overwritten before drawing", "count", after-before, "capacity", g.queue.Capacity())
	}
	log.Debug("gizmos: pass", "drawn", st.Drawn, "culled", st.Culled, "vertices", st.Vertices)
	return st
}

// eligible reports whether cam should drain the queue: the camera filter
// decides when set, otherwise only the main camera does.
func (g *Gizmos) eligible(cam *rl.Camera3D) bool {
	g.mu.Lock()
	filter, main := g.filter, g.camera
	g.mu.Unlock()
	if filter != nil {
		return filter(cam)
	}
	return main != nil && cam == main
}
