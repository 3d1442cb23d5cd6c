package debug

import (
	"strings"
	"testing"

	"github.com/popcron/gizmos"
)

func TestFormatStats(t *testing.T) {
	lines := FormatStats(gizmos.Stats{
		Active:      3,
		Capacity:    512,
		Overwritten: 7,
		LastPass:    gizmos.PassStats{Drawn: 2, Culled: 1, Vertices: 48},
	})
	want := []string{"3/512 queued", "7 overwritten", "2 drawn", "1 culled", "48 vertices"}
	joined := strings.Join(lines, "\n")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("%q missing %q", joined, w)
		}
	}
}

func TestLinesGizmosOnly(t *testing.T) {
	calls := 0
	d := New(func() gizmos.Stats { calls++; return gizmos.Stats{Capacity: 8} })
	if got := d.Lines(); len(got) != 0 {
		t.Errorf("all overlays off: lines = %v", got)
	}
	d.ShowGizmos = true
	d.lines = nil
	if got := d.Lines(); len(got) != 2 || calls != 1 {
		t.Errorf("lines = %v after %d stats calls", got, calls)
	}
}
