package shapes

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos/internal/mathx"
)

const (
	// DefaultPoints is the ring resolution used when no camera is available.
	DefaultPoints = 16
	// MinAdaptivePoints and MaxAdaptivePoints bound the camera-driven resolution.
	MinAdaptivePoints = 6
	MaxAdaptivePoints = 42
	// resolutionScale tunes how quickly rings coarsen with distance.
	resolutionScale = 16
)

// AdaptivePoints derives a ring resolution from apparent angular size: close or
// large rings get more points, far or small rings fewer.
func AdaptivePoints(distance, radius float32) int {
	if radius <= 0 {
		return MinAdaptivePoints
	}
	if distance <= 0 {
		return MaxAdaptivePoints
	}
	deg := math32.Atan(resolutionScale/(distance/radius)) * rl.Rad2deg
	return mathx.Clamp(int(math32.Floor(deg+0.5)), MinAdaptivePoints, MaxAdaptivePoints)
}

// PointsFor returns AdaptivePoints for a ring at center seen from eye, or
// DefaultPoints when hasEye is false.
func PointsFor(eye rl.Vector3, hasEye bool, center rl.Vector3, radius float32) int {
	if !hasEye {
		return DefaultPoints
	}
	return AdaptivePoints(rl.Vector3Distance(eye, center), radius)
}
