package shapes

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape is one of the parameter structs in this package. The set is closed:
// Append dispatches on it with a single type switch.
type Shape interface {
	shape()
}

// Line is a single segment from A to B.
type Line struct {
	A, B rl.Vector3
}

// Square is a rectangle on the XY plane (z = 0), rotated about its center.
type Square struct {
	Center      rl.Vector2
	Rotation    rl.Quaternion
	HalfExtents rl.Vector2
}

// Cube is an oriented box given by its center and half extents.
type Cube struct {
	Center      rl.Vector3
	Rotation    rl.Quaternion
	HalfExtents rl.Vector3
}

// Polygon is a regular closed ring on the local XY plane of Rotation.
// Points below MinPolygonPoints is raised to MinPolygonPoints.
type Polygon struct {
	Center        rl.Vector3
	Rotation      rl.Quaternion
	Points        int
	Radius        float32
	OffsetDegrees float32
}

// Sphere is approximated by three orthogonal great-circle rings.
type Sphere struct {
	Center rl.Vector3
	Radius float32
	Points int
}

// Cone has its apex at Apex and opens along the local +Z axis of Rotation.
type Cone struct {
	Apex             rl.Vector3
	Rotation         rl.Quaternion
	Length           float32
	HalfAngleDegrees float32
	Points           int
}

func (Line) shape()    {}
func (Square) shape()  {}
func (Cube) shape()    {}
func (Polygon) shape() {}
func (Sphere) shape()  {}
func (Cone) shape()    {}

const (
	// MinPolygonPoints is the smallest ring that still encloses an area.
	MinPolygonPoints = 3
	// minRadius keeps rings from collapsing to a single point.
	minRadius = 1e-4
	// maxConeHalfAngle keeps tan() finite.
	maxConeHalfAngle = 89
)

var (
	axisX   = rl.NewVector3(1, 0, 0)
	axisY   = rl.NewVector3(0, 1, 0)
	axisZ   = rl.NewVector3(0, 0, 1)
	forward = axisZ
)

// sphereRings are the ring orientations for Sphere: identity, 90° about X,
// and 90° about Z followed by 90° about Y. Their normals are Z, -Y and X.
var sphereRings = [3]rl.Quaternion{
	rl.QuaternionIdentity(),
	rl.QuaternionFromAxisAngle(axisX, 90*rl.Deg2rad),
	rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(axisY, 90*rl.Deg2rad),
		rl.QuaternionFromAxisAngle(axisZ, 90*rl.Deg2rad),
	),
}

// SphereRotations returns the orientation of each ring emitted for a Sphere, in emission order.
func SphereRotations() [3]rl.Quaternion {
	return sphereRings
}

// Append generates s as a list of segment endpoints (consecutive pairs) and appends them to dst.
// Pass a reused buffer as dst to avoid per-call allocation.
func Append(dst []rl.Vector3, s Shape) []rl.Vector3 {
	switch s := s.(type) {
	case Line:
		return append(dst, s.A, s.B)
	case Square:
		return appendSquare(dst, s)
	case Cube:
		return appendCube(dst, s)
	case Polygon:
		return appendPolygon(dst, s)
	case Sphere:
		for _, rot := range sphereRings {
			dst = appendPolygon(dst, Polygon{Center: s.Center, Rotation: rot, Points: s.Points, Radius: s.Radius})
		}
		return dst
	case Cone:
		return appendCone(dst, s)
	default:
		return dst
	}
}

// Generate is Append into a fresh slice.
func Generate(s Shape) []rl.Vector3 {
	return Append(nil, s)
}

// VertexCount reports how many vertices Append emits for s.
func VertexCount(s Shape) int {
	switch s := s.(type) {
	case Line:
		return 2
	case Square:
		return 8
	case Cube:
		return 24
	case Polygon:
		return 2 * ringPoints(s.Points)
	case Sphere:
		return 6 * ringPoints(s.Points)
	case Cone:
		return 2*ringPoints(s.Points) + 8
	default:
		return 0
	}
}

// rotation treats the zero quaternion as identity so zero-value parameter structs stay usable.
func rotation(q rl.Quaternion) rl.Quaternion {
	if q == (rl.Quaternion{}) {
		return rl.QuaternionIdentity()
	}
	return q
}

func ringPoints(n int) int {
	return max(n, MinPolygonPoints)
}

// rotateAbout rotates p about center.
func rotateAbout(p, center rl.Vector3, q rl.Quaternion) rl.Vector3 {
	return rl.Vector3Add(center, rl.Vector3RotateByQuaternion(rl.Vector3Subtract(p, center), q))
}

func appendSquare(dst []rl.Vector3, s Square) []rl.Vector3 {
	q := rotation(s.Rotation)
	c := rl.NewVector3(s.Center.X, s.Center.Y, 0)
	hx, hy := s.HalfExtents.X, s.HalfExtents.Y

	p1 := rotateAbout(rl.NewVector3(c.X-hx, c.Y-hy, 0), c, q)
	p2 := rotateAbout(rl.NewVector3(c.X+hx, c.Y-hy, 0), c, q)
	p3 := rotateAbout(rl.NewVector3(c.X+hx, c.Y+hy, 0), c, q)
	p4 := rotateAbout(rl.NewVector3(c.X-hx, c.Y+hy, 0), c, q)

	return append(dst,
		p1, p2,
		p2, p3,
		p3, p4,
		p4, p1,
	)
}

func appendCube(dst []rl.Vector3, s Cube) []rl.Vector3 {
	q := rotation(s.Rotation)
	c, h := s.Center, s.HalfExtents

	var p [8]rl.Vector3
	p[0] = rl.NewVector3(c.X-h.X, c.Y-h.Y, c.Z-h.Z)
	p[1] = rl.NewVector3(c.X+h.X, c.Y-h.Y, c.Z-h.Z)
	p[2] = rl.NewVector3(c.X+h.X, c.Y+h.Y, c.Z-h.Z)
	p[3] = rl.NewVector3(c.X-h.X, c.Y+h.Y, c.Z-h.Z)
	p[4] = rl.NewVector3(c.X-h.X, c.Y-h.Y, c.Z+h.Z)
	p[5] = rl.NewVector3(c.X+h.X, c.Y-h.Y, c.Z+h.Z)
	p[6] = rl.NewVector3(c.X+h.X, c.Y+h.Y, c.Z+h.Z)
	p[7] = rl.NewVector3(c.X-h.X, c.Y+h.Y, c.Z+h.Z)
	for i := range p {
		p[i] = rotateAbout(p[i], c, q)
	}

	return append(dst,
		// near face
		p[0], p[1], p[1], p[2], p[2], p[3], p[3], p[0],
		// far face
		p[4], p[5], p[5], p[6], p[6], p[7], p[7], p[4],
		// connectors
		p[0], p[4], p[1], p[5], p[2], p[6], p[3], p[7],
	)
}

func polygonPoint(center rl.Vector3, q rl.Quaternion, radius, degrees float32) rl.Vector3 {
	a := degrees * rl.Deg2rad
	local := rl.NewVector3(math32.Cos(a)*radius, math32.Sin(a)*radius, 0)
	return rl.Vector3Add(center, rl.Vector3RotateByQuaternion(local, q))
}

func appendPolygon(dst []rl.Vector3, p Polygon) []rl.Vector3 {
	n := ringPoints(p.Points)
	radius := max(p.Radius, minRadius)
	q := rotation(p.Rotation)
	step := 360 / float32(n)

	first := polygonPoint(p.Center, q, radius, p.OffsetDegrees)
	prev := first
	for i := 1; i < n; i++ {
		next := polygonPoint(p.Center, q, radius, float32(i)*step+p.OffsetDegrees)
		dst = append(dst, prev, next)
		prev = next
	}
	return append(dst, prev, first)
}

// ConeRadius is the radius of the cone's far ring.
func ConeRadius(length, halfAngleDegrees float32) float32 {
	half := min(max(halfAngleDegrees, 0), maxConeHalfAngle)
	return math32.Tan(half*rl.Deg2rad) * length
}

func appendCone(dst []rl.Vector3, c Cone) []rl.Vector3 {
	q := rotation(c.Rotation)
	radius := ConeRadius(c.Length, c.HalfAngleDegrees)
	dir := rl.Vector3RotateByQuaternion(forward, q)
	end := rl.Vector3Add(c.Apex, rl.Vector3Scale(dir, c.Length))

	dst = appendPolygon(dst, Polygon{Center: end, Rotation: q, Points: c.Points, Radius: radius})
	for i := 0; i < 4; i++ {
		dst = append(dst, c.Apex, polygonPoint(end, q, max(radius, minRadius), float32(i)*90))
	}
	return dst
}
