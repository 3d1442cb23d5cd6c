package gizmos

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hack-pad/hackpadfs/mem"

	"github.com/popcron/gizmos/internal/render"
)

const eps = 1e-4

type harness struct {
	g   *Gizmos
	rec *render.Recorder
	cam *rl.Camera3D
	now float64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		rec: &render.Recorder{},
		cam: &rl.Camera3D{
			Position:   rl.NewVector3(0, 0, 10),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}
	h.g = New(Config{Backend: h.rec, Clock: func() float64 { return h.now }})
	h.g.SetCamera(h.cam)
	return h
}

func (h *harness) render() PassStats {
	h.rec.Reset()
	return h.g.Render(h.cam, 800, 600)
}

func TestLineRendersOnMainCamera(t *testing.T) {
	h := newHarness(t)
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0), WithColor(rl.Red))

	st := h.render()
	if st.Drawn != 1 || st.Vertices != 2 || len(h.rec.Vertices) != 2 {
		t.Fatalf("stats = %+v, want one line", st)
	}
	if h.rec.Vertices[0].Color != rl.Red {
		t.Errorf("color = %v, want red", h.rec.Vertices[0].Color)
	}
	if h.g.Stats().Active != 0 {
		t.Errorf("queue not drained after render")
	}
	if st := h.render(); st.Drawn != 0 {
		t.Errorf("second pass drew %d shapes, want 0", st.Drawn)
	}
}

func TestDashedLineAlternates(t *testing.T) {
	h := newHarness(t)
	a, b := rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0)

	h.now = 0.25
	h.g.Line(a, b, Dashed())
	h.render()
	first := append([]render.Vertex(nil), h.rec.Vertices...)

	h.now = 0.75
	h.g.Line(a, b, Dashed())
	h.render()
	second := h.rec.Vertices

	if len(first) != 10 || len(second) != 8 {
		t.Fatalf("dash vertices = %d / %d, want 10 / 8", len(first), len(second))
	}
	if first[0].Position != a {
		t.Errorf("first phase starts at %v, want %v", first[0].Position, a)
	}
	if second[0].Position == a {
		t.Errorf("second phase starts at %v, want the gap after it", second[0].Position)
	}
	// the end of each dash in one phase is the start of a dash in the other
	if d := rl.Vector3Distance(first[1].Position, second[0].Position); d > eps {
		t.Errorf("phases do not meet: %v vs %v", first[1].Position, second[0].Position)
	}
}

func TestSphereRings(t *testing.T) {
	h := newHarness(t)
	h.g.SetFrustumCulling(false)
	center := rl.NewVector3(1, 2, 3)
	h.g.Sphere(center, 2, WithPoints(16))

	st := h.render()
	if st.Vertices != 3*2*16 {
		t.Fatalf("vertices = %d, want %d", st.Vertices, 3*2*16)
	}
	for _, v := range h.rec.Vertices {
		if d := rl.Vector3Distance(v.Position, center); math32.Abs(d-2) > eps {
			t.Fatalf("vertex %v at distance %v, want 2", v.Position, d)
		}
	}
}

func TestRenderSkipsIneligibleCamera(t *testing.T) {
	h := newHarness(t)
	other := *h.cam
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))

	if st := h.g.Render(&other, 800, 600); st != (PassStats{}) {
		t.Errorf("other camera: stats = %+v, want none", st)
	}
	if h.g.Stats().Active != 1 {
		t.Fatalf("shape consumed by an ineligible camera")
	}
	if st := h.g.Render(nil, 800, 600); st != (PassStats{}) {
		t.Errorf("nil camera: stats = %+v, want none", st)
	}

	h.g.SetCamera(nil)
	if st := h.render(); st.Drawn != 0 {
		t.Errorf("no main camera: drew %d", st.Drawn)
	}

	h.g.SetCamera(h.cam)
	if st := h.render(); st.Drawn != 1 {
		t.Errorf("main camera: drew %d, want 1", st.Drawn)
	}
}

func TestCameraFilter(t *testing.T) {
	h := newHarness(t)
	other := *h.cam
	h.g.SetCameraFilter(func(cam *rl.Camera3D) bool { return cam == &other })
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))

	if st := h.render(); st.Drawn != 0 {
		t.Errorf("main camera drew %d with a filter rejecting it", st.Drawn)
	}
	if st := h.g.Render(&other, 800, 600); st.Drawn != 1 {
		t.Errorf("filtered camera drew %d, want 1", st.Drawn)
	}

	h.g.SetCameraFilter(nil)
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))
	if st := h.render(); st.Drawn != 1 {
		t.Errorf("after clearing filter: drew %d, want 1", st.Drawn)
	}
}

func TestDisabledIgnoresSubmissions(t *testing.T) {
	h := newHarness(t)
	h.g.SetEnabled(false)
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))
	h.g.Cube(rl.Vector3{}, rl.QuaternionIdentity(), rl.NewVector3(1, 1, 1))
	if n := h.g.Stats().Active; n != 0 {
		t.Errorf("active = %d while disabled, want 0", n)
	}

	h.g.SetEnabled(true)
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))
	if n := h.g.Stats().Active; n != 1 {
		t.Errorf("active = %d after enabling, want 1", n)
	}
}

func TestLastingShapes(t *testing.T) {
	h := newHarness(t)
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0), For(0.5))

	drawn := 0
	for frame := 0; frame < 5; frame++ {
		if frame > 0 {
			h.g.Update(0.2)
		}
		drawn += h.render().Drawn
	}
	if drawn != 3 {
		t.Errorf("lasting line drawn %d times, want 3", drawn)
	}
	if n := h.g.Lasting(); n != 0 {
		t.Errorf("lasting = %d after expiry, want 0", n)
	}
}

func TestOffsetShiftsVertices(t *testing.T) {
	h := newHarness(t)
	h.g.SetOffset(rl.NewVector3(0, 1, 0))
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))
	h.render()
	if len(h.rec.Vertices) != 2 {
		t.Fatalf("vertices = %d, want 2", len(h.rec.Vertices))
	}
	if got := h.rec.Vertices[1].Position; got != rl.NewVector3(1, 1, 0) {
		t.Errorf("end = %v, want (1,1,0)", got)
	}
}

func TestBufferSizeOverwrites(t *testing.T) {
	h := newHarness(t)
	h.g.SetBufferSize(4)
	for i := 0; i < 6; i++ {
		h.g.Line(rl.NewVector3(float32(i), 0, 0), rl.NewVector3(float32(i), 1, 0))
	}
	st := h.g.Stats()
	if st.Capacity != 4 || st.Active != 4 || st.Overwritten != 2 {
		t.Errorf("stats = %+v, want 4/4 with 2 overwritten", st)
	}
}

func TestPrefsPersist(t *testing.T) {
	fsys, err := mem.NewFS()
	if err != nil {
		t.Fatalf("mem.NewFS: %v", err)
	}
	rec := &render.Recorder{}
	g := New(Config{FS: fsys, Backend: rec})
	g.SetDashGap(0.5)
	g.SetOffset(rl.NewVector3(1, 2, 3))
	if err := g.SetCullMode("viewport"); err != nil {
		t.Fatalf("SetCullMode: %v", err)
	}
	if err := g.SetCullMode("nope"); err == nil {
		t.Errorf("SetCullMode(nope) succeeded")
	}

	g2 := New(Config{FS: fsys, Backend: rec})
	if g2.DashGap() != 0.5 || g2.Offset() != rl.NewVector3(1, 2, 3) || g2.CullMode() != "viewport" {
		t.Errorf("reloaded gap=%v offset=%v mode=%v", g2.DashGap(), g2.Offset(), g2.CullMode())
	}
}

func TestCircleFacesCamera(t *testing.T) {
	h := newHarness(t)
	h.cam.Position = rl.NewVector3(10, 0, 0)
	h.g.SetFrustumCulling(false)
	h.g.Circle(rl.Vector3{}, 1, WithPoints(8))

	h.render()
	if len(h.rec.Vertices) != 16 {
		t.Fatalf("vertices = %d, want 16", len(h.rec.Vertices))
	}
	for _, v := range h.rec.Vertices {
		if math32.Abs(v.Position.X) > eps {
			t.Fatalf("vertex %v not on the plane facing the camera", v.Position)
		}
	}

	h.g.Circle(rl.Vector3{}, 1, WithPoints(8), Rotated(rl.QuaternionIdentity()))
	h.render()
	for _, v := range h.rec.Vertices {
		if math32.Abs(v.Position.Z) > eps {
			t.Fatalf("rotated circle vertex %v off the XY plane", v.Position)
		}
	}
}

func TestShapeVertexCounts(t *testing.T) {
	h := newHarness(t)
	h.g.SetFrustumCulling(false)

	tests := []struct {
		name string
		draw func()
		want int
	}{
		{"square", func() { h.g.Square(rl.Vector2{}, rl.NewVector2(1, 2)) }, 8},
		{"cube", func() { h.g.Cube(rl.Vector3{}, rl.QuaternionIdentity(), rl.NewVector3(1, 1, 1)) }, 24},
		{"bounding box", func() {
			h.g.BoundingBox(rl.NewBoundingBox(rl.NewVector3(-1, -1, -1), rl.NewVector3(1, 1, 1)))
		}, 24},
		{"polygon", func() { h.g.Polygon(rl.Vector3{}, 1, 5) }, 10},
		{"cone", func() { h.g.Cone(rl.Vector3{}, rl.QuaternionIdentity(), 2, 30, WithPoints(8)) }, 2*8 + 8},
		{"lines", func() { h.g.Lines([]rl.Vector3{{}, {X: 1}, {Y: 1}, {Z: 1}}) }, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.draw()
			if st := h.render(); st.Vertices != tt.want {
				t.Errorf("vertices = %d, want %d", st.Vertices, tt.want)
			}
		})
	}
}

func TestSphereDefaultResolution(t *testing.T) {
	rec := &render.Recorder{}
	g := New(Config{Backend: rec})
	g.SetFrustumCulling(false)
	g.SetCameraFilter(func(*rl.Camera3D) bool { return true })

	g.Sphere(rl.Vector3{}, 1)
	st := g.Render(&rl.Camera3D{Position: rl.NewVector3(0, 0, 5), Up: rl.NewVector3(0, 1, 0), Fovy: 45}, 640, 480)
	if st.Drawn != 1 || st.Vertices != 3*2*16 {
		t.Errorf("stats = %+v, want one sphere of 3 rings × 16 points", st)
	}
}

func TestClearDropsPendingAndLasting(t *testing.T) {
	h := newHarness(t)
	h.g.Line(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))
	h.g.Sphere(rl.Vector3{}, 1, For(5))
	h.g.Clear()

	if st := h.g.Stats(); st.Active != 0 {
		t.Errorf("active = %d after Clear, want 0", st.Active)
	}
	if n := h.g.Lasting(); n != 0 {
		t.Errorf("lasting = %d after Clear, want 0", n)
	}
	h.g.Update(0.1)
	if st := h.render(); st.Drawn != 0 {
		t.Errorf("drew %d shapes after Clear, want 0", st.Drawn)
	}
}

func TestSquareDiameter(t *testing.T) {
	h := newHarness(t)
	h.g.SetFrustumCulling(false)
	h.g.SquareDiameter(rl.NewVector2(1, 1), 2)

	h.render()
	if len(h.rec.Vertices) != 8 {
		t.Fatalf("vertices = %d, want 8", len(h.rec.Vertices))
	}
	for _, v := range h.rec.Vertices {
		p := v.Position
		onX := math32.Abs(p.X-0) < eps || math32.Abs(p.X-2) < eps
		onY := math32.Abs(p.Y-0) < eps || math32.Abs(p.Y-2) < eps
		if !onX || !onY || math32.Abs(p.Z) > eps {
			t.Errorf("corner %v not on the 2×2 square around (1,1)", p)
		}
	}
}
