package cull

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip distances match raylib's BeginMode3D defaults so culling agrees with what is drawn.
const (
	NearPlane = 0.01
	FarPlane  = 1000
)

// Camera is the per-pass view of the camera being rendered: its matrices,
// viewport size and frustum planes. It is built once per render pass and not retained.
type Camera struct {
	Position       rl.Vector3
	View           rl.Matrix
	Projection     rl.Matrix
	ViewProjection rl.Matrix
	Width, Height  float32

	// planes are left, right, bottom, top, near, far as (normal, d); inside is dot(n, p)+d >= 0.
	planes [6]rl.Vector4
}

// NewCamera builds the culling context for cam rendered into a width×height viewport.
// It returns nil when the camera is degenerate (empty viewport, zero fovy, or
// position equal to target); callers then treat every shape as visible.
func NewCamera(cam rl.Camera3D, width, height float32) *Camera {
	if width <= 0 || height <= 0 || cam.Fovy <= 0 {
		return nil
	}
	if rl.Vector3Length(rl.Vector3Subtract(cam.Target, cam.Position)) == 0 {
		return nil
	}
	up := cam.Up
	if rl.Vector3Length(up) == 0 {
		up = rl.NewVector3(0, 1, 0)
	}
	aspect := width / height

	var proj rl.Matrix
	if cam.Projection == rl.CameraOrthographic {
		top := cam.Fovy / 2
		right := top * aspect
		proj = rl.MatrixOrtho(-right, right, -top, top, NearPlane, FarPlane)
	} else {
		// fovy is in degrees here. MatrixFrustum leaves stray M8/M9 terms,
		// which are zero for a symmetric frustum.
		proj = rl.MatrixPerspective(cam.Fovy, aspect, NearPlane, FarPlane)
		proj.M8, proj.M9 = 0, 0
	}
	// MatrixLookAt stores its translation in M3/M7/M11; clip wants it in M12/M13/M14.
	view := rl.MatrixTranspose(rl.MatrixLookAt(cam.Position, cam.Target, up))

	c := &Camera{
		Position:   cam.Position,
		View:       view,
		Projection: proj,
		// raylib's MatrixMultiply(a, b) applies a first, then b.
		ViewProjection: rl.MatrixMultiply(view, proj),
		Width:          width,
		Height:         height,
	}
	c.planes = extractPlanes(c.ViewProjection)
	return c
}

// clip transforms p by m as a column vector with w = 1.
func clip(m rl.Matrix, p rl.Vector3) rl.Vector4 {
	return rl.NewVector4(
		m.M0*p.X+m.M4*p.Y+m.M8*p.Z+m.M12,
		m.M1*p.X+m.M5*p.Y+m.M9*p.Z+m.M13,
		m.M2*p.X+m.M6*p.Y+m.M10*p.Z+m.M14,
		m.M3*p.X+m.M7*p.Y+m.M11*p.Z+m.M15,
	)
}

// extractPlanes derives the six frustum planes from the rows of a view-projection matrix.
func extractPlanes(m rl.Matrix) [6]rl.Vector4 {
	r0 := rl.NewVector4(m.M0, m.M4, m.M8, m.M12)
	r1 := rl.NewVector4(m.M1, m.M5, m.M9, m.M13)
	r2 := rl.NewVector4(m.M2, m.M6, m.M10, m.M14)
	r3 := rl.NewVector4(m.M3, m.M7, m.M11, m.M15)

	add := func(a, b rl.Vector4) rl.Vector4 { return rl.NewVector4(a.X+b.X, a.Y+b.Y, a.Z+b.Z, a.W+b.W) }
	sub := func(a, b rl.Vector4) rl.Vector4 { return rl.NewVector4(a.X-b.X, a.Y-b.Y, a.Z-b.Z, a.W-b.W) }

	return [6]rl.Vector4{
		add(r3, r0), sub(r3, r0),
		add(r3, r1), sub(r3, r1),
		add(r3, r2), sub(r3, r2),
	}
}

// Project maps p to normalized viewport coordinates, where (0,0) is the
// bottom-left corner and (1,1) the top-right, and returns its normalized depth
// (-1 at the near plane, 1 at the far plane). ok is false for points behind the camera.
func (c *Camera) Project(p rl.Vector3) (v rl.Vector2, depth float32, ok bool) {
	h := clip(c.ViewProjection, p)
	if h.W <= 0 {
		return rl.Vector2{}, 0, false
	}
	return rl.NewVector2((h.X/h.W+1)/2, (h.Y/h.W+1)/2), h.Z / h.W, true
}
