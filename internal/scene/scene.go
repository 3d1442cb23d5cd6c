package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos"
	"github.com/popcron/gizmos/internal/mathx"
	"github.com/popcron/gizmos/internal/physics"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	orbitRadius = 6
	orbitSpeed  = 0.6 // radians per second

	contactMarkerSeconds = 0.75
	maxStep              = 1.0 / 30
)

// dropHeights are the starting heights of the demo boxes, stacked over (3, _, 3).
var dropHeights = []float32{3, 5, 7.5}

// Scene holds a free-flying 3D camera and submits the demo gizmos. Update runs
// camera logic; Draw renders the gizmos between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	cursorDone  bool
	GridVisible bool

	time float32

	// grid vertices are built once and resubmitted every frame
	minor, major []rl.Vector3

	world    *physics.World
	touching map[[2]*physics.Body]bool
	fresh    []physics.Contact
}

// New returns a scene with a perspective camera looking at the origin.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 45°. Grid is visible by default.
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(10, 10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	s.minor, s.major = gridLines()
	s.Reset()
	return s
}

// Reset rebuilds the physics world: a static floor and a few boxes dropped
// onto it.
func (s *Scene) Reset() {
	s.world = physics.NewWorld()
	s.world.AddBody(physics.NewBody(rl.NewVector3(0, -0.5, 0), rl.NewVector3(2*gridExtent, 1, 2*gridExtent), 0, true))
	for i, h := range dropHeights {
		off := float32(i) * 0.3
		s.world.AddBody(physics.NewBody(rl.NewVector3(3+off, h, 3-off), rl.NewVector3(1, 1, 1), 1, false))
	}
	s.touching = make(map[[2]*physics.Body]bool)
	s.fresh = s.fresh[:0]
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the user can
// move the camera with mouse (zoom, pan) and keyboard. Cursor is disabled so the mouse
// is captured for camera control.
func (s *Scene) Update(dt float32) {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
	s.time += dt
	s.step(min(dt, maxStep))
}

// step advances the physics world and remembers contacts that began this frame.
func (s *Scene) step(dt float32) {
	s.fresh = s.fresh[:0]
	now := make(map[[2]*physics.Body]bool, len(s.touching))
	for _, c := range s.world.Step(dt) {
		key := [2]*physics.Body{c.A, c.B}
		now[key] = true
		if !s.touching[key] {
			s.fresh = append(s.fresh, c)
		}
	}
	s.touching = now
}

// Submit queues this frame's gizmos: the grid, an orbiting probe with its
// bounds, a spinning cube and a spot light cone.
func (s *Scene) Submit(g *gizmos.Gizmos) {
	if s.GridVisible {
		s.submitGrid(g)
	}

	angle := s.time * orbitSpeed
	probe := rl.NewVector3(math32.Cos(angle)*orbitRadius, 1.5, math32.Sin(angle)*orbitRadius)
	g.Sphere(probe, 1, gizmos.WithColor(rl.Yellow))
	g.Bounds(probe, rl.NewVector3(2, 2, 2), gizmos.WithColor(rl.Orange), gizmos.Dashed())
	g.Line(rl.NewVector3(0, 1.5, 0), probe, gizmos.WithColor(rl.Gray), gizmos.Dashed())
	g.Circle(probe, 1.4, gizmos.WithColor(rl.SkyBlue))

	spin := mathx.EulerDegrees(0, s.time*45, s.time*20)
	g.Cube(rl.NewVector3(0, 1.5, 0), spin, rl.NewVector3(1.5, 1.5, 1.5), gizmos.WithColor(rl.Green))

	down := mathx.EulerDegrees(90, 0, 0)
	g.Cone(rl.NewVector3(-4, 6, -4), down, 5, 25, gizmos.WithColor(rl.Magenta), gizmos.Dashed())
	g.Polygon(rl.NewVector3(4, 0.01, -4), 1.5, 6, gizmos.Rotated(down), gizmos.WithColor(rl.Purple))

	s.submitBodies(g)
}

// submitBodies outlines the dynamic bodies and marks new contacts for a moment.
func (s *Scene) submitBodies(g *gizmos.Gizmos) {
	for _, b := range s.world.Bodies {
		if b.Static {
			continue
		}
		g.BoundingBox(b.Box(), gizmos.WithColor(rl.White))
		if speed := rl.Vector3Length(b.Velocity); speed > 0.5 {
			g.Line(b.Position, rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, 0.2)), gizmos.WithColor(rl.Red))
		}
	}
	for _, c := range s.fresh {
		g.Sphere(c.Point, 0.15, gizmos.WithColor(rl.Red), gizmos.For(contactMarkerSeconds), gizmos.WithPoints(8))
		g.Line(c.Point, rl.Vector3Add(c.Point, c.Normal), gizmos.WithColor(rl.Red), gizmos.Dashed(), gizmos.For(contactMarkerSeconds))
	}
	s.fresh = s.fresh[:0]
}

// Draw renders the queued gizmos from the scene camera. Call after ClearBackground
// and before 2D overlays.
func (s *Scene) Draw(g *gizmos.Gizmos) gizmos.PassStats {
	rl.BeginMode3D(s.Camera)
	st := g.Render(&s.Camera, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.EndMode3D()
	return st
}

func (s *Scene) submitGrid(g *gizmos.Gizmos) {
	g.Lines(s.minor, gizmos.WithColor(rl.NewColor(128, 128, 128, gridMinorAlpha)))
	g.Lines(s.major, gizmos.WithColor(rl.NewColor(160, 160, 160, gridMajorAlpha)))

	// Axis lines through origin (X=red, Y=green, Z=blue)
	const e = gridExtent
	g.Line(rl.NewVector3(-e, 0, 0), rl.NewVector3(e, 0, 0), gizmos.WithColor(rl.NewColor(220, 80, 80, axisLineAlpha)))
	g.Line(rl.NewVector3(0, -e, 0), rl.NewVector3(0, e, 0), gizmos.WithColor(rl.NewColor(80, 220, 80, axisLineAlpha)))
	g.Line(rl.NewVector3(0, 0, -e), rl.NewVector3(0, 0, e), gizmos.WithColor(rl.NewColor(80, 80, 220, axisLineAlpha)))
}

// gridLines returns the minor and major grid segments on the XZ plane (Y=0),
// as consecutive point pairs.
func gridLines() (minor, major []rl.Vector3) {
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		f, e := float32(i), float32(gridExtent)
		pair := []rl.Vector3{
			rl.NewVector3(f, 0, -e), rl.NewVector3(f, 0, e),
			rl.NewVector3(-e, 0, f), rl.NewVector3(e, 0, f),
		}
		if i%gridMajorStep == 0 {
			major = append(major, pair...)
		} else {
			minor = append(minor, pair...)
		}
	}
	return minor, major
}
