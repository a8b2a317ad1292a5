// Package state implements a fixed-depth stack of screen states. Pushing a
// state leaves the current top; popping leaves the top and re-enters the
// state below it, so parent states must tolerate repeated Enter calls.
package state

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Capacity is the maximum stack depth.
const Capacity = 32

var (
	ErrUnknownState = errors.New("state: unknown state")
	ErrFull         = errors.New("state: stack full")
	ErrEmpty        = errors.New("state: stack empty")
)

// ID identifies a registered state.
type ID uint8

// State is the enter/update/leave triple driven by the machine. C is the
// context passed through the frame.
type State[C any] interface {
	Enter(ctx C)
	Update(ctx C)
	Leave(ctx C)
}

// Funcs adapts plain functions to State. Nil fields are skipped.
type Funcs[C any] struct {
	OnEnter  func(ctx C)
	OnUpdate func(ctx C)
	OnLeave  func(ctx C)
}

func (f Funcs[C]) Enter(ctx C) {
	if f.OnEnter != nil {
		f.OnEnter(ctx)
	}
}

func (f Funcs[C]) Update(ctx C) {
	if f.OnUpdate != nil {
		f.OnUpdate(ctx)
	}
}

func (f Funcs[C]) Leave(ctx C) {
	if f.OnLeave != nil {
		f.OnLeave(ctx)
	}
}

type entry[C any] struct {
	id    ID
	name  string
	state State[C]
}

// Machine is the state stack. The top lives at the lowest used index;
// index == Capacity means empty.
type Machine[C any] struct {
	stack   [Capacity]entry[C]
	index   int
	catalog map[ID]entry[C]
	log     *log.Logger
}

// New creates an empty machine. A nil logger discards output.
func New[C any](logger *log.Logger) *Machine[C] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine[C]{
		index:   Capacity,
		catalog: make(map[ID]entry[C]),
		log:     logger,
	}
}

// Register adds a state to the catalog, replacing any previous entry for id.
func (m *Machine[C]) Register(id ID, name string, s State[C]) {
	m.catalog[id] = entry[C]{id: id, name: name, state: s}
}

// Name returns the registered name of id.
func (m *Machine[C]) Name(id ID) string {
	if e, ok := m.catalog[id]; ok {
		return e.name
	}
	return fmt.Sprintf("state(%d)", id)
}

// Depth returns the number of stacked states.
func (m *Machine[C]) Depth() int {
	return Capacity - m.index
}

// Top returns the id of the active state.
func (m *Machine[C]) Top() (ID, bool) {
	if m.index == Capacity {
		return 0, false
	}
	return m.stack[m.index].id, true
}

// Push leaves the current top and enters id above it.
func (m *Machine[C]) Push(ctx C, id ID) error {
	e, ok := m.catalog[id]
	if !ok {
		m.log.Error("unknown state", "id", id)
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	if m.index == 0 {
		m.log.Error("state stack full", "state", e.name)
		return ErrFull
	}

	if m.index < Capacity {
		m.stack[m.index].state.Leave(ctx)
	}
	m.index--
	m.stack[m.index] = e
	m.log.Debug("push", "state", e.name, "depth", m.Depth())
	e.state.Enter(ctx)
	return nil
}

// Pop leaves the current top and re-enters the state below it, if any.
func (m *Machine[C]) Pop(ctx C) error {
	if m.index == Capacity {
		return ErrEmpty
	}
	top := m.stack[m.index]
	top.state.Leave(ctx)
	m.stack[m.index] = entry[C]{}
	m.index++
	m.log.Debug("pop", "state", top.name, "depth", m.Depth())
	if m.index < Capacity {
		m.stack[m.index].state.Enter(ctx)
	}
	return nil
}

// Replace pops the top and pushes id.
func (m *Machine[C]) Replace(ctx C, id ID) error {
	if _, ok := m.catalog[id]; !ok {
		m.log.Error("unknown state", "id", id)
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	if err := m.Pop(ctx); err != nil && !errors.Is(err, ErrEmpty) {
		return err
	}
	return m.Push(ctx, id)
}

// Update runs the active state's Update once.
func (m *Machine[C]) Update(ctx C) error {
	if m.index == Capacity {
		return ErrEmpty
	}
	m.stack[m.index].state.Update(ctx)
	return nil
}

// Clear leaves the active state and empties the stack without re-entering
// any parent.
func (m *Machine[C]) Clear(ctx C) {
	if m.index < Capacity {
		m.stack[m.index].state.Leave(ctx)
	}
	for i := range m.stack {
		m.stack[i] = entry[C]{}
	}
	m.index = Capacity
}
