package timer

import "testing"

func TestTimerFiresAfterDuration(t *testing.T) {
	r := NewRegistry()
	var fired []uint32

	r.Start(1000, 250, func(tm *Timer, now uint32) bool {
		fired = append(fired, now)
		return true
	}, nil)

	for now := uint32(1000); now <= 1800; now += 10 {
		r.Update(now)
	}

	expected := []uint32{1250, 1500, 1750}
	if len(fired) != len(expected) {
		t.Fatalf("fired %d times (%v), expected %d", len(fired), fired, len(expected))
	}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Errorf("fire %d at %d, expected %d", i, fired[i], expected[i])
		}
	}
}

func TestTimerStopsWhenCallbackReturnsFalse(t *testing.T) {
	r := NewRegistry()
	calls := 0

	tm := r.Start(0, 100, func(tm *Timer, now uint32) bool {
		calls++
		return false
	}, nil)

	r.Update(100)
	r.Update(200)
	r.Update(100000)

	if calls != 1 {
		t.Errorf("callback invoked %d times, expected 1", calls)
	}
	if tm.Active {
		t.Error("timer should be inactive after returning false")
	}
}

func TestTimerCallbackMutatesDuration(t *testing.T) {
	r := NewRegistry()
	var fired []uint32

	// visible 1000, hidden 5000
	r.Start(0, 1000, func(tm *Timer, now uint32) bool {
		fired = append(fired, now)
		if tm.Duration == 1000 {
			tm.Duration = 5000
		} else {
			tm.Duration = 1000
		}
		return true
	}, nil)

	for now := uint32(0); now <= 8000; now += 100 {
		r.Update(now)
	}

	expected := []uint32{1000, 6000, 7000}
	if len(fired) != len(expected) {
		t.Fatalf("fired at %v, expected %v", fired, expected)
	}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Errorf("fire %d at %d, expected %d", i, fired[i], expected[i])
		}
	}
}

func TestTimerNilCallbackStopsImmediately(t *testing.T) {
	r := NewRegistry()
	tm := r.Start(0, 10, nil, nil)

	r.Update(10)
	if tm.Active {
		t.Error("timer with nil callback should stop at expiry")
	}
}

func TestTimerPoolExhaustion(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < Capacity; i++ {
		if r.Start(0, 10, nil, i) == nil {
			t.Fatalf("Start() returned nil at slot %d", i)
		}
	}

	if r.Start(0, 10, nil, nil) != nil {
		t.Error("Start() should return nil when the pool is exhausted")
	}
	if r.Active() != Capacity {
		t.Errorf("Active() = %d, expected %d", r.Active(), Capacity)
	}

	// Expiring frees the slots for reuse
	r.Update(10)
	tm := r.Start(10, 10, nil, "reused")
	if tm == nil {
		t.Fatal("Start() should reuse an inactive slot")
	}
	if tm.ID != 0 {
		t.Errorf("reused ID = %d, expected 0", tm.ID)
	}
}

func TestTimerStopNilIsSafe(t *testing.T) {
	r := NewRegistry()
	r.Stop(nil)

	tm := r.Start(0, 10, func(*Timer, uint32) bool { return true }, nil)
	r.Stop(tm)
	r.Stop(tm)
	if r.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", r.Active())
	}
}

func TestTimerCallbackRestartsSlot(t *testing.T) {
	tests := []struct {
		name string
		keep bool
	}{
		{"returns false", false},
		{"returns true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			var second []uint32

			var first *Timer
			first = r.Start(0, 100, func(tm *Timer, now uint32) bool {
				r.Stop(first)
				next := r.Start(now, 50, func(tm *Timer, now uint32) bool {
					second = append(second, now)
					return false
				}, nil)
				if next != first {
					t.Fatalf("Start() did not reuse the freed slot")
				}
				return tt.keep
			}, nil)

			r.Update(100)
			if got := r.Active(); got != 1 {
				t.Fatalf("Active() = %d after restart, expected 1", got)
			}
			if first.Expiry != 150 {
				t.Errorf("Expiry = %d, expected 150", first.Expiry)
			}

			r.Update(150)
			if len(second) != 1 || second[0] != 150 {
				t.Errorf("second timer fired at %v, expected [150]", second)
			}
			if got := r.Active(); got != 0 {
				t.Errorf("Active() = %d, expected 0", got)
			}
		})
	}
}
