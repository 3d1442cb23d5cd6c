package scene

import (
	"testing"
)

func TestGridLines(t *testing.T) {
	minor, major := gridLines()
	// -20..20 has 41 positions, 5 of them on a major step
	if len(major) != 5*4 || len(minor) != 36*4 {
		t.Errorf("grid = %d minor, %d major vertices; want 144, 20", len(minor), len(major))
	}
	for i := 0; i+1 < len(major); i += 2 {
		a, b := major[i], major[i+1]
		if a.Y != 0 || b.Y != 0 {
			t.Fatalf("segment %v-%v off the ground plane", a, b)
		}
	}
}

func TestStepReportsContactsOnce(t *testing.T) {
	s := &Scene{}
	s.Reset()

	total := 0
	for i := 0; i < 600; i++ {
		s.step(1.0 / 60)
		total += len(s.fresh)
	}
	// each box lands once; the stack may add box-on-box contacts
	if total < len(dropHeights) {
		t.Errorf("%d new contacts, want at least %d", total, len(dropHeights))
	}
	if len(s.touching) == 0 {
		t.Error("nothing resting after 10 seconds")
	}
}
