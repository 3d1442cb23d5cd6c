package queue

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func point(i int) []rl.Vector3 {
	return []rl.Vector3{rl.NewVector3(float32(i), 0, 0), rl.NewVector3(float32(i), 1, 0)}
}

func TestSubmitOverflowOverwritesOldest(t *testing.T) {
	const capacity = 8
	q := New(capacity)
	for i := 0; i <= capacity; i++ {
		q.Submit(point(i), rl.White, false)
	}
	st := q.Stats()
	if st.Active != capacity {
		t.Errorf("Active = %d, want %d", st.Active, capacity)
	}
	if st.Overwritten != 1 {
		t.Errorf("Overwritten = %d, want 1", st.Overwritten)
	}
	if got := q.Slot(0).Points[0].X; got != capacity {
		t.Errorf("slot 0 holds element %v, want newest (%d)", got, capacity)
	}
}

func TestDrainVisitsSlotOrderAndClears(t *testing.T) {
	q := New(4)
	for i := 0; i < 6; i++ {
		q.Submit(point(i), rl.White, i%2 == 0)
	}
	var order []float32
	q.Drain(func(el *Element) {
		order = append(order, el.Points[0].X)
	})
	want := []float32{4, 5, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("drained %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("drain[%d] = %v, want %v", i, order[i], want[i])
		}
	}
	if st := q.Stats(); st.Active != 0 {
		t.Errorf("Active after drain = %d, want 0", st.Active)
	}
	calls := 0
	q.Drain(func(*Element) { calls++ })
	if calls != 0 {
		t.Errorf("second drain visited %d elements, want 0", calls)
	}
}

func TestSubmitCopiesPoints(t *testing.T) {
	q := New(2)
	buf := point(1)
	q.Submit(buf, rl.Red, true)
	buf[0] = rl.NewVector3(99, 99, 99)

	el := q.Slot(0)
	if el.Points[0].X != 1 {
		t.Errorf("queued point changed with caller buffer: %v", el.Points[0])
	}
	if el.Color != rl.Red || !el.Dashed || !el.Active {
		t.Errorf("slot = %+v, want active red dashed", el)
	}
}

func TestSlotStorageReused(t *testing.T) {
	q := New(1)
	q.Submit(make([]rl.Vector3, 64), rl.White, false)
	q.Drain(func(*Element) {})
	q.Submit(point(0), rl.White, false)
	if c := cap(q.slots[0].Points); c < 64 {
		t.Errorf("slot storage cap = %d, want reuse of 64", c)
	}
	if n := len(q.slots[0].Points); n != 2 {
		t.Errorf("slot len = %d, want 2", n)
	}
}

func TestResize(t *testing.T) {
	q := New(4)
	for i := 0; i < 4; i++ {
		q.Submit(point(i), rl.White, false)
	}
	q.Resize(2)
	st := q.Stats()
	if st.Capacity != 2 || st.Active != 2 || st.Overwritten != 2 {
		t.Errorf("Stats after shrink = %+v, want capacity 2, active 2, overwritten 2", st)
	}
	q.Resize(8)
	q.Submit(point(9), rl.White, false)
	if st := q.Stats(); st.Capacity != 8 || st.Active != 3 {
		t.Errorf("Stats after grow = %+v, want capacity 8, active 3", st)
	}
}

func TestNewDefaultCapacity(t *testing.T) {
	if c := New(0).Capacity(); c != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", c, DefaultCapacity)
	}
}
