package mathx

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/constraints"
)

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec3 converts a [3]float32 (the form used in JSON/YAML files) to a raylib vector.
func Vec3(a [3]float32) rl.Vector3 {
	return rl.NewVector3(a[0], a[1], a[2])
}

// Array3 converts a raylib vector back to a [3]float32.
func Array3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// EulerDegrees builds a rotation from pitch/yaw/roll given in degrees.
func EulerDegrees(pitch, yaw, roll float32) rl.Quaternion {
	return rl.QuaternionFromEuler(pitch*rl.Deg2rad, yaw*rl.Deg2rad, roll*rl.Deg2rad)
}
