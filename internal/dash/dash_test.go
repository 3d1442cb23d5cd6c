package dash

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func totalLength(pairs []rl.Vector3) float32 {
	var sum float32
	for i := 0; i+1 < len(pairs); i += 2 {
		sum += rl.Vector3Distance(pairs[i], pairs[i+1])
	}
	return sum
}

func TestSubdivideShortSegmentUnchanged(t *testing.T) {
	a, b := rl.NewVector3(0, 0, 0), rl.NewVector3(0.15, 0, 0)
	for _, alt := range []bool{false, true} {
		got := Subdivide(nil, []rl.Vector3{a, b}, 0.1, alt)
		if len(got) != 2 || got[0] != a || got[1] != b {
			t.Errorf("alt=%v: Subdivide = %v, want [%v %v]", alt, got, a, b)
		}
	}
}

func TestSubdivideHalfLength(t *testing.T) {
	tests := []struct {
		name   string
		a, b   rl.Vector3
		gap    float32
		length float32
	}{
		{"unit x", rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0), 0.1, 1},
		{"diagonal", rl.NewVector3(1, 1, 1), rl.NewVector3(4, 5, 1), 0.25, 5},
		{"long", rl.NewVector3(0, -10, 0), rl.NewVector3(0, 10, 0), 0.5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, alt := range []bool{false, true} {
				got := totalLength(Subdivide(nil, []rl.Vector3{tt.a, tt.b}, tt.gap, alt))
				if math32.Abs(got-tt.length/2) > tt.gap {
					t.Errorf("alt=%v: on-length = %v, want %v ± %v", alt, got, tt.length/2, tt.gap)
				}
			}
		})
	}
}

func TestSubdividePhasesComplement(t *testing.T) {
	seg := []rl.Vector3{rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0)}
	off := Subdivide(nil, seg, 0.1, false)
	on := Subdivide(nil, seg, 0.1, true)
	if len(off) == 0 || len(on) == 0 {
		t.Fatalf("expected dashes in both phases, got %d and %d vertices", len(off), len(on))
	}
	if len(off) == len(on) && off[0] == on[0] {
		t.Fatalf("phases produced identical dashes: %v", off)
	}
	if sum := totalLength(off) + totalLength(on); math32.Abs(sum-1) > 1e-4 {
		t.Errorf("phases cover %v of the segment, want 1", sum)
	}
	for i := 0; i < len(off); i += 2 {
		for j := 0; j < len(on); j += 2 {
			if off[i].X < on[j+1].X-1e-5 && on[j].X < off[i+1].X-1e-5 {
				t.Errorf("dash [%v,%v] overlaps [%v,%v]", off[i].X, off[i+1].X, on[j].X, on[j+1].X)
			}
		}
	}
}

func TestSubdivideMultipleSegments(t *testing.T) {
	pts := []rl.Vector3{
		rl.NewVector3(0, 0, 0), rl.NewVector3(0.1, 0, 0),
		rl.NewVector3(0, 0, 0), rl.NewVector3(0, 2, 0),
		rl.NewVector3(5, 5, 5),
	}
	got := Subdivide(nil, pts, 0.1, false)
	if got[0] != pts[0] || got[1] != pts[1] {
		t.Errorf("short first segment altered: %v", got[:2])
	}
	if len(got)%2 != 0 {
		t.Errorf("odd vertex count %d", len(got))
	}
	for _, v := range got {
		if v == pts[4] {
			t.Errorf("unpaired trailing vertex emitted")
		}
	}
}

func TestClampGap(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, MinGap},
		{-1, MinGap},
		{0.5, 0.5},
		{100, MaxGap},
		{math32.NaN(), DefaultGap},
	}
	for _, tt := range tests {
		if got := ClampGap(tt.in); got != tt.want {
			t.Errorf("ClampGap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		t    float64
		want bool
	}{
		{0, false},
		{0.25, false},
		{0.75, true},
		{10.6, true},
		{10.4, false},
		{-0.25, true},
	}
	for _, tt := range tests {
		if got := Phase(tt.t); got != tt.want {
			t.Errorf("Phase(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
