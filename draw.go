package gizmos

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos/internal/shapes"
)

// Option customizes one submission.
type Option func(*drawOptions)

type drawOptions struct {
	color    rl.Color
	dashed   bool
	duration float32

	rotation    rl.Quaternion
	hasRotation bool
	points      int
	angleOffset float32
}

func collect(opts []Option) drawOptions {
	o := drawOptions{color: rl.White}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColor sets the line color. The default is opaque white.
func WithColor(c rl.Color) Option {
	return func(o *drawOptions) { o.color = c }
}

// Dashed draws the shape as marching dashes of DashGap length.
func Dashed() Option {
	return func(o *drawOptions) { o.dashed = true }
}

// For keeps re-submitting the shape on every Update until seconds have elapsed.
func For(seconds float32) Option {
	return func(o *drawOptions) { o.duration = seconds }
}

// Rotated orients squares, circles and polygons. Circles without a rotation
// face the main camera.
func Rotated(q rl.Quaternion) Option {
	return func(o *drawOptions) {
		o.rotation = q
		o.hasRotation = true
	}
}

// WithPoints fixes the ring resolution of circles, spheres and cones instead
// of deriving it from the distance to the main camera.
func WithPoints(n int) Option {
	return func(o *drawOptions) { o.points = n }
}

// WithAngleOffset rotates the first vertex of a ring by deg degrees.
func WithAngleOffset(deg float32) Option {
	return func(o *drawOptions) { o.angleOffset = deg }
}

// Line draws a segment from a to b.
func (g *Gizmos) Line(a, b rl.Vector3, opts ...Option) {
	g.drawShape(collect(opts), shapes.Line{A: a, B: b})
}

// Lines draws a list of segments given as consecutive point pairs.
func (g *Gizmos) Lines(points []rl.Vector3, opts ...Option) {
	o := collect(opts)
	if o.duration > 0 {
		points = append([]rl.Vector3(nil), points...)
	}
	g.draw(o, func(dst []rl.Vector3) []rl.Vector3 {
		return append(dst, points...)
	})
}

// Square draws a size.X × size.Y rectangle on the XY plane centered at center.
func (g *Gizmos) Square(center, size rl.Vector2, opts ...Option) {
	o := collect(opts)
	g.drawShape(o, shapes.Square{
		Center:      center,
		Rotation:    o.rotation,
		HalfExtents: rl.NewVector2(size.X/2, size.Y/2),
	})
}

// SquareDiameter draws a square with sides of length diameter.
func (g *Gizmos) SquareDiameter(center rl.Vector2, diameter float32, opts ...Option) {
	g.Square(center, rl.NewVector2(diameter, diameter), opts...)
}

// Cube draws an oriented box of the given full size.
func (g *Gizmos) Cube(center rl.Vector3, rotation rl.Quaternion, size rl.Vector3, opts ...Option) {
	g.drawShape(collect(opts), shapes.Cube{
		Center:      center,
		Rotation:    rotation,
		HalfExtents: rl.Vector3Scale(size, 0.5),
	})
}

// Bounds draws an axis-aligned box of the given full size.
func (g *Gizmos) Bounds(center, size rl.Vector3, opts ...Option) {
	g.Cube(center, rl.QuaternionIdentity(), size, opts...)
}

// BoundingBox draws box.
func (g *Gizmos) BoundingBox(box rl.BoundingBox, opts ...Option) {
	center := rl.Vector3Scale(rl.Vector3Add(box.Min, box.Max), 0.5)
	g.Bounds(center, rl.Vector3Subtract(box.Max, box.Min), opts...)
}

// Sphere draws three orthogonal rings of the given radius around center.
func (g *Gizmos) Sphere(center rl.Vector3, radius float32, opts ...Option) {
	o := collect(opts)
	g.drawShape(o, shapes.Sphere{Center: center, Radius: radius, Points: g.ringPoints(o, center, radius)})
}

// Circle draws a ring. Without Rotated it faces the main camera, or lies on
// the XY plane when there is none.
func (g *Gizmos) Circle(center rl.Vector3, radius float32, opts ...Option) {
	o := collect(opts)
	rot := o.rotation
	if !o.hasRotation {
		rot = g.billboard(center)
	}
	g.drawShape(o, shapes.Polygon{
		Center:        center,
		Rotation:      rot,
		Points:        g.ringPoints(o, center, radius),
		Radius:        radius,
		OffsetDegrees: o.angleOffset,
	})
}

// Polygon draws a regular polygon with the given number of sides on the local
// XY plane of Rotated (identity by default).
func (g *Gizmos) Polygon(center rl.Vector3, radius float32, sides int, opts ...Option) {
	o := collect(opts)
	g.drawShape(o, shapes.Polygon{
		Center:        center,
		Rotation:      o.rotation,
		Points:        sides,
		Radius:        radius,
		OffsetDegrees: o.angleOffset,
	})
}

// Cone draws a cone opening from apex along rotation's +Z axis, like a spot light.
func (g *Gizmos) Cone(apex rl.Vector3, rotation rl.Quaternion, length, halfAngleDegrees float32, opts ...Option) {
	o := collect(opts)
	if rotation == (rl.Quaternion{}) {
		rotation = rl.QuaternionIdentity()
	}
	radius := shapes.ConeRadius(length, halfAngleDegrees)
	end := rl.Vector3Add(apex, rl.Vector3Scale(rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, 1), rotation), length))
	g.drawShape(o, shapes.Cone{
		Apex:             apex,
		Rotation:         rotation,
		Length:           length,
		HalfAngleDegrees: halfAngleDegrees,
		Points:           g.ringPoints(o, end, radius),
	})
}

func (g *Gizmos) drawShape(o drawOptions, s shapes.Shape) {
	g.draw(o, func(dst []rl.Vector3) []rl.Vector3 {
		return shapes.Append(dst, s)
	})
}

// draw submits build's output now and, for lasting shapes, on every Update
// until the duration runs out.
func (g *Gizmos) draw(o drawOptions, build func(dst []rl.Vector3) []rl.Vector3) {
	if !g.settings.Enabled() {
		return
	}
	emit := func() {
		g.mu.Lock()
		g.scratch = build(g.scratch[:0])
		g.queue.Submit(g.scratch, o.color, o.dashed)
		g.mu.Unlock()
	}
	emit()
	if o.duration > 0 {
		g.mu.Lock()
		g.lasting = append(g.lasting, repeat{emit: emit, remaining: o.duration})
		g.mu.Unlock()
	}
}

// ringPoints picks the resolution for a ring of radius at center.
func (g *Gizmos) ringPoints(o drawOptions, center rl.Vector3, radius float32) int {
	if o.points > 0 {
		return o.points
	}
	g.mu.Lock()
	cam := g.camera
	g.mu.Unlock()
	if cam == nil {
		return shapes.DefaultPoints
	}
	return shapes.PointsFor(cam.Position, true, center, radius)
}

// billboard returns the rotation that turns a ring at center toward the main camera.
func (g *Gizmos) billboard(center rl.Vector3) rl.Quaternion {
	g.mu.Lock()
	cam := g.camera
	g.mu.Unlock()
	if cam == nil {
		return rl.QuaternionIdentity()
	}
	dir := rl.Vector3Subtract(center, cam.Position)
	if rl.Vector3Length(dir) == 0 {
		return rl.QuaternionIdentity()
	}
	dir = rl.Vector3Normalize(dir)
	forward := rl.NewVector3(0, 0, 1)
	if rl.Vector3DotProduct(forward, dir) < -0.9999 {
		return rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), rl.Pi)
	}
	return rl.QuaternionFromVector3ToVector3(forward, dir)
}
