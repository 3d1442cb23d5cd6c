package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is an axis-aligned box. Static bodies do not move and are not affected by gravity.
type Body struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Size     rl.Vector3
	Mass     float32
	Static   bool
}

// NewBody returns a resting body. mass <= 0 is treated as 1.
func NewBody(position, size rl.Vector3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{Position: position, Size: size, Mass: mass, Static: static}
}

// Box returns the body's bounds.
func (b *Body) Box() rl.BoundingBox {
	half := rl.Vector3Scale(b.Size, 0.5)
	return rl.NewBoundingBox(rl.Vector3Subtract(b.Position, half), rl.Vector3Add(b.Position, half))
}

// Contact is one resolved overlap from the last Step.
type Contact struct {
	A, B   *Body
	Point  rl.Vector3 // center of the overlap region
	Normal rl.Vector3 // from A towards B
	Depth  float32
}

// World holds a set of bodies and runs a simple step: gravity, integration, AABB collision.
type World struct {
	Gravity rl.Vector3
	Bodies  []*Body

	contacts []Contact
}

// NewWorld returns an empty world with gravity (0, -9.8, 0).
func NewWorld() *World {
	return &World{Gravity: rl.NewVector3(0, -9.8, 0)}
}

// AddBody appends a body to the world.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum
// penetration, or axis -1 when a and b do not overlap.
func penetration(a, b rl.BoundingBox) (depth float32, axis int) {
	overlap := [3]float32{
		min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X),
		min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y),
		min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z),
	}
	axis = -1
	for i, o := range overlap {
		if o <= 0 {
			return 0, -1
		}
		if axis < 0 || o < depth {
			depth, axis = o, i
		}
	}
	return depth, axis
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func unit(axis int, sign float32) rl.Vector3 {
	var v rl.Vector3
	switch axis {
	case 0:
		v.X = sign
	case 1:
		v.Y = sign
	default:
		v.Z = sign
	}
	return v
}

// Step advances the simulation by dt seconds and returns the contacts it
// resolved. The returned slice is reused by the next Step.
func (w *World) Step(dt float32) []Contact {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(w.Gravity, dt))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	}

	w.contacts = w.contacts[:0]
	for i, a := range w.Bodies {
		for _, b := range w.Bodies[i+1:] {
			if a.Static && b.Static {
				continue
			}
			boxA, boxB := a.Box(), b.Box()
			depth, axis := penetration(boxA, boxB)
			if axis < 0 {
				continue
			}
			sign := float32(1)
			if component(b.Position, axis) < component(a.Position, axis) {
				sign = -1
			}
			normal := unit(axis, sign)

			shareA, shareB := b.Mass/(a.Mass+b.Mass), a.Mass/(a.Mass+b.Mass)
			switch {
			case a.Static:
				shareA, shareB = 0, 1
			case b.Static:
				shareA, shareB = 1, 0
			}
			a.Position = rl.Vector3Subtract(a.Position, rl.Vector3Scale(normal, depth*shareA))
			b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(normal, depth*shareB))
			for _, body := range []*Body{a, b} {
				if body.Static {
					continue
				}
				// drop the velocity component along the contact normal
				along := rl.Vector3DotProduct(body.Velocity, normal)
				body.Velocity = rl.Vector3Subtract(body.Velocity, rl.Vector3Scale(normal, along))
			}

			lo := rl.NewVector3(max(boxA.Min.X, boxB.Min.X), max(boxA.Min.Y, boxB.Min.Y), max(boxA.Min.Z, boxB.Min.Z))
			hi := rl.NewVector3(min(boxA.Max.X, boxB.Max.X), min(boxA.Max.Y, boxB.Max.Y), min(boxA.Max.Z, boxB.Max.Z))
			w.contacts = append(w.contacts, Contact{
				A:      a,
				B:      b,
				Point:  rl.Vector3Lerp(lo, hi, 0.5),
				Normal: normal,
				Depth:  depth,
			})
		}
	}
	return w.contacts
}
