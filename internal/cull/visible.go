package cull

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode selects the visibility strategy.
type Mode int

const (
	// Bounds tests the points' axis-aligned box against the six frustum planes.
	Bounds Mode = iota
	// Viewport accepts a shape when any point projects inside the viewport in front of the camera.
	Viewport
)

func (m Mode) String() string {
	switch m {
	case Bounds:
		return "bounds"
	case Viewport:
		return "viewport"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounds", "":
		return Bounds, nil
	case "viewport":
		return Viewport, nil
	default:
		return Bounds, fmt.Errorf("unknown cull mode %q", s)
	}
}

// Visible reports whether points may be visible from c. A nil camera or an
// empty point list is always visible: culling is only an optimization.
func Visible(points []rl.Vector3, c *Camera, mode Mode) bool {
	if c == nil || len(points) == 0 {
		return true
	}
	if mode == Viewport {
		return c.anyInViewport(points)
	}
	return c.boxInFrustum(BoundingBox(points))
}

// BoundingBox returns the axis-aligned box enclosing points.
func BoundingBox(points []rl.Vector3) rl.BoundingBox {
	if len(points) == 0 {
		return rl.BoundingBox{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, lo.Y, lo.Z = min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z)
		hi.X, hi.Y, hi.Z = max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z)
	}
	return rl.NewBoundingBox(lo, hi)
}

func (c *Camera) boxInFrustum(box rl.BoundingBox) bool {
	for _, pl := range c.planes {
		// Corner furthest along the plane normal.
		px, py, pz := box.Min.X, box.Min.Y, box.Min.Z
		if pl.X >= 0 {
			px = box.Max.X
		}
		if pl.Y >= 0 {
			py = box.Max.Y
		}
		if pl.Z >= 0 {
			pz = box.Max.Z
		}
		if pl.X*px+pl.Y*py+pl.Z*pz+pl.W < 0 {
			return false
		}
	}
	return true
}

func (c *Camera) anyInViewport(points []rl.Vector3) bool {
	for _, p := range points {
		v, depth, ok := c.Project(p)
		if !ok || depth < -1 || depth > 1 {
			continue
		}
		if v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1 {
			return true
		}
	}
	return false
}
