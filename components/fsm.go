package components

import "github.com/automoto/piratecove/config"

// Transitions maps a state and an event to the next state. Pairs missing
// from the table are ignored.
type Transitions map[config.StateID]map[config.EventID]config.StateID

// Machine is a table-driven state machine with a tick counter that resets on
// every state change.
type Machine struct {
	State config.StateID
	Ticks int
	table Transitions
}

func NewMachine(table Transitions, initial config.StateID) *Machine {
	return &Machine{State: initial, table: table}
}

// Fire applies an event and reports whether the state changed.
func (m *Machine) Fire(ev config.EventID) bool {
	next, ok := m.table[m.State][ev]
	if !ok || next == m.State {
		return false
	}
	m.State = next
	m.Ticks = 0
	return true
}

// Accepts reports whether the current state handles ev.
func (m *Machine) Accepts(ev config.EventID) bool {
	_, ok := m.table[m.State][ev]
	return ok
}

func (m *Machine) Is(states ...config.StateID) bool {
	for _, s := range states {
		if m.State == s {
			return true
		}
	}
	return false
}

func (m *Machine) Tick() {
	m.Ticks++
}
