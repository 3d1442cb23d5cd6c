package queue

import (
	"sync"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultCapacity is the number of slots in a queue created with capacity <= 0.
const DefaultCapacity = 512

// Element is one queued shape. Points is owned by the queue: it is reused
// for the next submission that lands in the same slot.
type Element struct {
	Active bool
	Points []rl.Vector3
	Color  rl.Color
	Dashed bool
}

// Stats is a snapshot of queue occupancy.
type Stats struct {
	Active      int
	Capacity    int
	Overwritten uint64
}

// Queue is a fixed-capacity ring of pending elements. Producers call Submit
// during the frame; one render pass per frame calls Drain.
//
// When producers outrun the capacity, the write index wraps and overwrites
// slots that were never drained. Those elements are lost and counted in
// Stats.Overwritten.
type Queue struct {
	mu          sync.Mutex
	slots       []Element
	next        int
	overwritten atomic.Uint64
}

// New returns a queue with the given number of slots.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{slots: make([]Element, capacity)}
}

// Submit copies points into the next slot. The caller keeps ownership of points.
func (q *Queue) Submit(points []rl.Vector3, color rl.Color, dashed bool) {
	q.mu.Lock()
	el := &q.slots[q.next]
	if el.Active {
		q.overwritten.Add(1)
	}
	el.Active = true
	el.Points = append(el.Points[:0], points...)
	el.Color = color
	el.Dashed = dashed
	q.next = (q.next + 1) % len(q.slots)
	q.mu.Unlock()
}

// Drain calls fn for every active element in slot order, then marks it inactive.
// fn must not retain el or el.Points after it returns.
func (q *Queue) Drain(fn func(el *Element)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.slots {
		el := &q.slots[i]
		if !el.Active {
			continue
		}
		fn(el)
		el.Active = false
	}
}

// Clear discards every pending element without visiting it.
func (q *Queue) Clear() {
	q.mu.Lock()
	for i := range q.slots {
		q.slots[i].Active = false
	}
	q.mu.Unlock()
}

// Resize changes the capacity. Pending elements are kept in slot order up to
// the new capacity; the rest are counted as overwritten.
func (q *Queue) Resize(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if capacity == len(q.slots) {
		return
	}
	slots := make([]Element, capacity)
	n := 0
	for _, el := range q.slots {
		if !el.Active {
			continue
		}
		if n == capacity {
			q.overwritten.Add(1)
			continue
		}
		slots[n] = el
		n++
	}
	q.slots = slots
	q.next = n % capacity
}

// Slot returns a copy of slot i, for inspection.
func (q *Queue) Slot(i int) Element {
	q.mu.Lock()
	defer q.mu.Unlock()
	el := q.slots[i]
	el.Points = append([]rl.Vector3(nil), el.Points...)
	return el
}

// Capacity returns the number of slots.
func (q *Queue) Capacity() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.slots)
}

// Stats returns the current occupancy.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	active := 0
	for i := range q.slots {
		if q.slots[i].Active {
			active++
		}
	}
	capacity := len(q.slots)
	q.mu.Unlock()
	return Stats{Active: active, Capacity: capacity, Overwritten: q.overwritten.Load()}
}
