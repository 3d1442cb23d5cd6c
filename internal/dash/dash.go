package dash

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos/internal/mathx"
)

const (
	// DefaultGap is the dash length used when none is configured.
	DefaultGap = 0.1
	// MinGap and MaxGap bound the gap so length/gap never degenerates.
	MinGap = 0.01
	MaxGap = 32
)

// ClampGap limits gap to [MinGap, MaxGap].
func ClampGap(gap float32) float32 {
	if math32.IsNaN(gap) {
		return DefaultGap
	}
	return mathx.Clamp(gap, MinGap, MaxGap)
}

// Phase returns the animation parity bit for time t (seconds). It flips every
// half second so dashes appear to march along their segments.
func Phase(t float64) bool {
	frac := t - float64(int64(t))
	if frac < 0 {
		frac++
	}
	return frac > 0.5
}

// Subdivide appends the visible dashes of points to dst. points is read as
// consecutive (A, B) segment pairs; a trailing unpaired vertex is ignored.
// Segments no longer than 2*gap are kept whole. Longer segments are cut into
// round(length/gap)-1 equal pieces and every other piece is kept, starting
// with the odd pieces when alt is set.
func Subdivide(dst, points []rl.Vector3, gap float32, alt bool) []rl.Vector3 {
	gap = ClampGap(gap)
	parity := 0
	if alt {
		parity = 1
	}
	for i := 0; i+1 < len(points); i += 2 {
		a, b := points[i], points[i+1]
		length := rl.Vector3Length(rl.Vector3Subtract(b, a))
		if length <= 2*gap {
			dst = append(dst, a, b)
			continue
		}
		steps := int(math32.Floor(length/gap + 0.5))
		pieces := float32(steps - 1)
		for p := 0; p < steps-1; p++ {
			if p%2 != parity {
				continue
			}
			dst = append(dst,
				rl.Vector3Lerp(a, b, float32(p)/pieces),
				rl.Vector3Lerp(a, b, float32(p+1)/pieces),
			)
		}
	}
	return dst
}
