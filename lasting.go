package gizmos

// repeat is a lasting submission: emit runs on every Update until remaining reaches zero.
type repeat struct {
	emit      func()
	remaining float32
}

// Update advances lasting shapes by dt seconds and re-submits those that have
// not expired. Call it once per frame before submitting the frame's shapes.
func (g *Gizmos) Update(dt float32) {
	g.mu.Lock()
	kept := g.lasting[:0]
	g.due = g.due[:0]
	for _, r := range g.lasting {
		r.remaining -= dt
		if r.remaining <= 0 {
			continue
		}
		kept = append(kept, r)
		g.due = append(g.due, r.emit)
	}
	for i := len(kept); i < len(g.lasting); i++ {
		g.lasting[i] = repeat{}
	}
	g.lasting = kept
	g.mu.Unlock()

	if !g.settings.Enabled() {
		return
	}
	for _, emit := range g.due {
		emit()
	}
}

// Lasting returns how many lasting shapes are still scheduled.
func (g *Gizmos) Lasting() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.lasting)
}

// Clear drops every pending shape and cancels lasting ones.
func (g *Gizmos) Clear() {
	g.mu.Lock()
	clear(g.lasting)
	g.lasting = g.lasting[:0]
	g.mu.Unlock()
	g.queue.Clear()
}
