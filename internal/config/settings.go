package config

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos/internal/cull"
	"github.com/popcron/gizmos/internal/dash"
	"github.com/popcron/gizmos/internal/mathx"
	"github.com/popcron/gizmos/internal/queue"
)

// Settings holds the live values of Prefs. Every field is read during the
// render pass and may be written from any goroutine, so all access is atomic.
type Settings struct {
	enabled    atomic.Bool
	culling    atomic.Bool
	mode       atomic.Int32
	gap        atomic.Uint32
	offset     atomic.Pointer[rl.Vector3]
	bufferSize atomic.Int64
}

// NewSettings returns settings initialised from p.
func NewSettings(p Prefs) *Settings {
	s := &Settings{}
	s.Apply(p)
	return s
}

// Apply overwrites every setting with the values in p.
func (s *Settings) Apply(p Prefs) {
	p = p.Normalize()
	mode, _ := cull.ParseMode(p.CullMode)
	s.enabled.Store(p.Enabled)
	s.culling.Store(p.FrustumCulling)
	s.mode.Store(int32(mode))
	s.gap.Store(math.Float32bits(p.DashGap))
	off := mathx.Vec3(p.Offset)
	s.offset.Store(&off)
	s.bufferSize.Store(int64(p.BufferSize))
}

// Prefs returns a snapshot suitable for Save.
func (s *Settings) Prefs() Prefs {
	return Prefs{
		Enabled:        s.Enabled(),
		FrustumCulling: s.FrustumCulling(),
		CullMode:       s.CullMode().String(),
		DashGap:        s.DashGap(),
		Offset:         mathx.Array3(s.Offset()),
		BufferSize:     s.BufferSize(),
	}
}

func (s *Settings) Enabled() bool     { return s.enabled.Load() }
func (s *Settings) SetEnabled(v bool) { s.enabled.Store(v) }

func (s *Settings) FrustumCulling() bool     { return s.culling.Load() }
func (s *Settings) SetFrustumCulling(v bool) { s.culling.Store(v) }

func (s *Settings) CullMode() cull.Mode     { return cull.Mode(s.mode.Load()) }
func (s *Settings) SetCullMode(m cull.Mode) { s.mode.Store(int32(m)) }

// DashGap returns the dash length in world units.
func (s *Settings) DashGap() float32 { return math.Float32frombits(s.gap.Load()) }

// SetDashGap stores gap clamped to the supported range.
func (s *Settings) SetDashGap(gap float32) {
	s.gap.Store(math.Float32bits(dash.ClampGap(gap)))
}

// Offset is added to every emitted vertex.
func (s *Settings) Offset() rl.Vector3 {
	if p := s.offset.Load(); p != nil {
		return *p
	}
	return rl.Vector3{}
}

func (s *Settings) SetOffset(v rl.Vector3) { s.offset.Store(&v) }

// BufferSize is the submission queue capacity.
func (s *Settings) BufferSize() int { return int(s.bufferSize.Load()) }

// SetBufferSize stores n, or queue.DefaultCapacity when n <= 0.
func (s *Settings) SetBufferSize(n int) {
	if n <= 0 {
		n = queue.DefaultCapacity
	}
	s.bufferSize.Store(int64(n))
}
