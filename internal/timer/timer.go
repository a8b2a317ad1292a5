// Package timer provides a fixed-capacity pool of delayed and periodic
// callbacks keyed by expiry tick. The registry is polled once per frame,
// ahead of the active state's update, on the single frame goroutine.
package timer

// Capacity is the number of timer slots in a registry.
const Capacity = 128

// Callback is invoked when a timer expires. Returning true keeps the timer
// running and reschedules it Duration ticks after now; the callback may
// change Duration first to vary the rate. Returning false stops it.
type Callback func(t *Timer, now uint32) bool

// Timer is one pooled slot.
type Timer struct {
	ID       uint8
	Active   bool
	User     any
	Duration uint32
	Expiry   uint32

	callback Callback
	gen      uint32 // bumped by every Start of this slot
}

// Registry owns the timer pool.
type Registry struct {
	timers [Capacity]Timer
	used   int // slots handed out at least once
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset deactivates every timer and forgets the high-water mark.
func (r *Registry) Reset() {
	r.used = 0
	for i := range r.timers {
		r.timers[i] = Timer{ID: uint8(i), gen: r.timers[i].gen}
	}
}

// findFree reuses an inactive slot before growing into a fresh one.
func (r *Registry) findFree() *Timer {
	for i := 0; i < r.used; i++ {
		if !r.timers[i].Active {
			return &r.timers[i]
		}
	}
	if r.used < Capacity {
		t := &r.timers[r.used]
		r.used++
		return t
	}
	return nil
}

// Start schedules cb to run duration ticks after now.
// It returns nil when the pool is exhausted; callers treat that as the
// timer simply never firing.
func (r *Registry) Start(now, duration uint32, cb Callback, user any) *Timer {
	t := r.findFree()
	if t == nil {
		return nil
	}

	t.gen++
	t.User = user
	t.Active = true
	t.callback = cb
	t.Duration = duration
	t.Expiry = now + duration
	return t
}

// Stop deactivates the timer. It is safe to call with nil.
func (r *Registry) Stop(t *Timer) {
	if t == nil {
		return
	}
	t.Active = false
}

// Update fires every active timer whose expiry has been reached.
func (r *Registry) Update(now uint32) {
	for i := 0; i < r.used; i++ {
		t := &r.timers[i]
		if !t.Active || now < t.Expiry {
			continue
		}

		if t.callback == nil {
			t.Active = false
			continue
		}

		gen := t.gen
		keep := t.callback(t, now)
		// A callback that stopped its timer and started another may have
		// been handed this same slot; leave the new timer alone.
		if t.gen != gen {
			continue
		}
		if !keep {
			t.Active = false
			continue
		}
		// The callback may have stopped its own timer.
		if t.Active {
			t.Expiry = now + t.Duration
		}
	}
}

// Active returns the number of running timers.
func (r *Registry) Active() int {
	n := 0
	for i := 0; i < r.used; i++ {
		if r.timers[i].Active {
			n++
		}
	}
	return n
}
