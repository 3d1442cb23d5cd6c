// Package gizmos draws debug lines, boxes, rings, spheres and cones over a
// 3D scene. Shapes are submitted from anywhere during a frame and drawn on the
// next eligible camera's render pass, then forgotten.
//
// Typical frame:
//
//	g := gizmos.Default()
//	g.SetCamera(&camera)
//	g.Update(rl.GetFrameTime())
//	g.Sphere(pos, 1, gizmos.WithColor(rl.Yellow), gizmos.Dashed())
//	rl.BeginMode3D(camera)
//	g.Render(&camera, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
//	rl.EndMode3D()
package gizmos

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hack-pad/hackpadfs"

	"github.com/popcron/gizmos/internal/config"
	"github.com/popcron/gizmos/internal/cull"
	"github.com/popcron/gizmos/internal/queue"
	"github.com/popcron/gizmos/internal/render"
)

// Backend receives the colored vertex stream of a render pass; every two
// consecutive vertices are one line segment.
type Backend interface {
	Begin()
	Vertex(pos rl.Vector3, color rl.Color)
	End()
}

// PassStats summarizes the last render pass.
type PassStats = render.PassStats

// Stats is a snapshot of queue occupancy and the last pass.
type Stats struct {
	Active      int
	Capacity    int
	Overwritten uint64
	LastPass    PassStats
}

// Config configures New. The zero value is usable: defaults are not
// persisted, lines are drawn with raylib and time starts at New.
type Config struct {
	// FS stores config.PrefsPath. Nil keeps prefs in memory only.
	FS hackpadfs.FS
	// Backend receives the vertex stream. Nil draws with raylib.
	Backend Backend
	// Clock returns seconds; it drives the dash animation.
	Clock func() float64
}

// Gizmos is the configuration context and submission surface. All methods
// are safe for concurrent use; Render and Update are expected on the frame thread.
type Gizmos struct {
	settings *config.Settings
	queue    *queue.Queue
	driver   *render.Driver
	backend  Backend
	fs       hackpadfs.FS
	clock    func() float64

	mu      sync.Mutex
	scratch []rl.Vector3
	camera  *rl.Camera3D
	filter  func(cam *rl.Camera3D) bool
	lasting []repeat
	last    PassStats

	// due is reused by Update; only touched on the frame thread.
	due []func()
}

// New returns a Gizmos initialised from the prefs stored in cfg.FS.
func New(cfg Config) *Gizmos {
	prefs := config.Default()
	if cfg.FS != nil {
		p, err := config.Load(cfg.FS)
		if err != nil {
			Logger().Warn("gizmos: load prefs", "err", err)
		} else {
			Logger().Info("gizmos: prefs loaded", "path", config.PrefsPath, "enabled", p.Enabled, "buffer_size", p.BufferSize)
		}
		prefs = p
	}
	settings := config.NewSettings(prefs)
	q := queue.New(settings.BufferSize())

	g := &Gizmos{
		settings: settings,
		queue:    q,
		driver:   render.NewDriver(q, settings),
		backend:  cfg.Backend,
		fs:       cfg.FS,
		clock:    cfg.Clock,
	}
	if g.backend == nil {
		g.backend = render.NewRaylib()
	}
	if g.clock == nil {
		start := time.Now()
		g.clock = func() float64 { return time.Since(start).Seconds() }
	}
	return g
}

var (
	defaultOnce sync.Once
	defaultG    *Gizmos
)

// Default returns the process-wide instance, created on first use with prefs
// stored under the working directory.
func Default() *Gizmos {
	defaultOnce.Do(func() {
		fsys, err := config.WorkingDirFS()
		if err != nil {
			Logger().Warn("gizmos: prefs store unavailable", "err", err)
			fsys = nil
		}
		defaultG = New(Config{FS: fsys})
	})
	return defaultG
}

// Load re-reads prefs from the store, replacing the current settings.
func (g *Gizmos) Load() error {
	if g.fs == nil {
		return nil
	}
	p, err := config.Load(g.fs)
	if err != nil {
		return err
	}
	g.settings.Apply(p)
	g.queue.Resize(g.settings.BufferSize())
	return nil
}

// Save writes the current settings to the store.
func (g *Gizmos) Save() error {
	if g.fs == nil {
		return nil
	}
	return config.Save(g.fs, g.settings.Prefs())
}

func (g *Gizmos) persist() {
	if err := g.Save(); err != nil {
		Logger().Warn("gizmos: save prefs", "err", err)
	}
}

// Enabled reports whether submissions are accepted.
func (g *Gizmos) Enabled() bool { return g.settings.Enabled() }

// SetEnabled toggles drawing. While disabled every submission is ignored.
func (g *Gizmos) SetEnabled(v bool) {
	if g.settings.Enabled() == v {
		return
	}
	g.settings.SetEnabled(v)
	g.persist()
}

// FrustumCulling reports whether shapes outside the camera are skipped.
func (g *Gizmos) FrustumCulling() bool { return g.settings.FrustumCulling() }

// SetFrustumCulling toggles skipping shapes outside the rendered camera.
func (g *Gizmos) SetFrustumCulling(v bool) {
	g.settings.SetFrustumCulling(v)
	g.persist()
}

// CullMode returns the visibility strategy name ("bounds" or "viewport").
func (g *Gizmos) CullMode() string { return g.settings.CullMode().String() }

// SetCullMode selects the visibility strategy by name.
func (g *Gizmos) SetCullMode(name string) error {
	m, err := cull.ParseMode(name)
	if err != nil {
		return err
	}
	g.settings.SetCullMode(m)
	g.persist()
	return nil
}

// DashGap is the length of one dash in world units.
func (g *Gizmos) DashGap() float32 { return g.settings.DashGap() }

// SetDashGap sets the dash length, clamped to [0.01, 32].
func (g *Gizmos) SetDashGap(gap float32) {
	g.settings.SetDashGap(gap)
	g.persist()
}

// Offset is added to every drawn vertex.
func (g *Gizmos) Offset() rl.Vector3 { return g.settings.Offset() }

// SetOffset sets the offset added to every drawn vertex.
func (g *Gizmos) SetOffset(v rl.Vector3) {
	g.settings.SetOffset(v)
	g.persist()
}

// BufferSize is the number of shapes that can be pending at once.
func (g *Gizmos) BufferSize() int { return g.settings.BufferSize() }

// SetBufferSize resizes the submission queue. Pending shapes beyond the new
// size are dropped.
func (g *Gizmos) SetBufferSize(n int) {
	g.settings.SetBufferSize(n)
	g.queue.Resize(g.settings.BufferSize())
	Logger().Info("gizmos: buffer resized", "capacity", g.settings.BufferSize())
	g.persist()
}

// SetCamera designates the main camera. Only it is drawn into unless a
// camera filter is set. It also drives ring resolution and circle billboarding.
func (g *Gizmos) SetCamera(cam *rl.Camera3D) {
	g.mu.Lock()
	g.camera = cam
	g.mu.Unlock()
}

// Camera returns the designated main camera, or nil.
func (g *Gizmos) Camera() *rl.Camera3D {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.camera
}

// SetCameraFilter replaces the main-camera check: a camera is drawn into when
// fn returns true. Nil restores the main-camera check.
func (g *Gizmos) SetCameraFilter(fn func(cam *rl.Camera3D) bool) {
	g.mu.Lock()
	g.filter = fn
	g.mu.Unlock()
}

// SetShader sets the shader lines are drawn with, when the backend supports one.
func (g *Gizmos) SetShader(s rl.Shader) {
	if ss, ok := g.backend.(interface{ SetShader(rl.Shader) }); ok {
		ss.SetShader(s)
	}
}

// Stats returns queue occupancy and the last pass summary.
func (g *Gizmos) Stats() Stats {
	qs := g.queue.Stats()
	g.mu.Lock()
	last := g.last
	g.mu.Unlock()
	return Stats{Active: qs.Active, Capacity: qs.Capacity, Overwritten: qs.Overwritten, LastPass: last}
}
