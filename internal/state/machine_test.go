package state

import (
	"errors"
	"reflect"
	"testing"
)

type recorder struct {
	events []string
}

type recState struct {
	name string
	rec  *recorder
}

func (s recState) Enter(*recorder)  { s.rec.events = append(s.rec.events, s.name+".enter") }
func (s recState) Update(*recorder) { s.rec.events = append(s.rec.events, s.name+".update") }
func (s recState) Leave(*recorder)  { s.rec.events = append(s.rec.events, s.name+".leave") }

func newTestMachine(rec *recorder) *Machine[*recorder] {
	m := New[*recorder](nil)
	for i, name := range []string{"P1", "P2", "P3"} {
		m.Register(ID(i+1), name, recState{name: name, rec: rec})
	}
	return m
}

func TestLIFODiscipline(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(rec)

	for id := ID(1); id <= 3; id++ {
		if err := m.Push(rec, id); err != nil {
			t.Fatalf("Push(%d) error = %v", id, err)
		}
	}
	if m.Depth() != 3 {
		t.Fatalf("Depth() = %d, expected 3", m.Depth())
	}

	rec.events = nil
	for i := 0; i < 3; i++ {
		if err := m.Pop(rec); err != nil {
			t.Fatalf("Pop() error = %v", err)
		}
	}
	expected := []string{"P3.leave", "P2.enter", "P2.leave", "P1.enter", "P1.leave"}
	if !reflect.DeepEqual(rec.events, expected) {
		t.Errorf("events = %v, expected %v", rec.events, expected)
	}

	rec.events = nil
	if err := m.Pop(rec); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop() on empty = %v, expected ErrEmpty", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("Pop() on empty ran %v", rec.events)
	}
}

func TestPushLeavesTop(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(rec)
	m.Push(rec, 1)
	m.Push(rec, 2)

	expected := []string{"P1.enter", "P1.leave", "P2.enter"}
	if !reflect.DeepEqual(rec.events, expected) {
		t.Errorf("events = %v, expected %v", rec.events, expected)
	}
	if top, ok := m.Top(); !ok || top != 2 {
		t.Errorf("Top() = %d, %v, expected 2, true", top, ok)
	}
}

func TestUpdate(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(rec)
	if err := m.Update(rec); !errors.Is(err, ErrEmpty) {
		t.Errorf("Update() on empty = %v, expected ErrEmpty", err)
	}

	m.Push(rec, 1)
	m.Push(rec, 2)
	rec.events = nil
	if err := m.Update(rec); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !reflect.DeepEqual(rec.events, []string{"P2.update"}) {
		t.Errorf("events = %v, expected [P2.update]", rec.events)
	}
}

func TestPushUnknown(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(rec)
	m.Push(rec, 1)
	rec.events = nil

	if err := m.Push(rec, 42); !errors.Is(err, ErrUnknownState) {
		t.Errorf("Push(42) = %v, expected ErrUnknownState", err)
	}
	if len(rec.events) != 0 || m.Depth() != 1 {
		t.Errorf("unknown push changed the stack: events %v depth %d", rec.events, m.Depth())
	}
}

func TestPushFull(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(rec)
	for i := 0; i < Capacity; i++ {
		if err := m.Push(rec, 1); err != nil {
			t.Fatalf("Push() %d error = %v", i, err)
		}
	}
	if err := m.Push(rec, 2); !errors.Is(err, ErrFull) {
		t.Errorf("Push() on full = %v, expected ErrFull", err)
	}
	if top, _ := m.Top(); top != 1 || m.Depth() != Capacity {
		t.Errorf("full push changed the stack: top %d depth %d", top, m.Depth())
	}
}

func TestReplaceAndClear(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(rec)
	m.Push(rec, 1)
	m.Push(rec, 2)
	rec.events = nil

	if err := m.Replace(rec, 3); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	expected := []string{"P2.leave", "P1.enter", "P1.leave", "P3.enter"}
	if !reflect.DeepEqual(rec.events, expected) {
		t.Errorf("events = %v, expected %v", rec.events, expected)
	}
	if m.Depth() != 2 {
		t.Errorf("Depth() = %d, expected 2", m.Depth())
	}

	rec.events = nil
	m.Clear(rec)
	if !reflect.DeepEqual(rec.events, []string{"P3.leave"}) {
		t.Errorf("events = %v, expected [P3.leave]", rec.events)
	}
	if _, ok := m.Top(); ok {
		t.Error("Top() after Clear() should report empty")
	}
}

func TestFuncs(t *testing.T) {
	entered := 0
	m := New[int](nil)
	m.Register(1, "funcs", Funcs[int]{OnEnter: func(int) { entered++ }})
	m.Push(0, 1)
	m.Update(0)
	m.Pop(0)
	if entered != 1 {
		t.Errorf("entered = %d, expected 1", entered)
	}
	if got := m.Name(1); got != "funcs" {
		t.Errorf("Name(1) = %q, expected %q", got, "funcs")
	}
	if got := m.Name(9); got != "state(9)" {
		t.Errorf("Name(9) = %q, expected %q", got, "state(9)")
	}
}
