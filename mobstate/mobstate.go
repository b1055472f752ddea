package mobstate

import (
	"errors"
	"fmt"

	"github.com/BronyUraj/ss14/bus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownState is returned when parsing a name that isn't a valid state.
	ErrUnknownState = errors.New("unknown state")
	// ErrStateNotAllowed is returned by Transition when the target state is not allowed for the actor.
	ErrStateNotAllowed = errors.New("state not allowed")
)

// Changed is published on the bus after an actor changed state.
type Changed struct {
	Actor    uuid.UUID
	Old, New State
}

// Machine tracks the incapacitation state of actors and runs the side effects of entering and leaving each
// state. Machine does not decide when actors change state: an upstream health system calls Transition.
type Machine struct {
	conf   Config
	actors map[uuid.UUID]*actorData
	rules  ruleSet
}

// Add starts tracking actor in the Alive state. The actor may only ever be moved to one of the allowed
// states, which default to Alive, Critical and Dead.
func (m *Machine) Add(actor uuid.UUID, allowed ...State) {
	if len(allowed) == 0 {
		allowed = []State{Alive, Critical, Dead}
	}
	for _, s := range allowed {
		mustBeValid(s)
	}
	m.actors[actor] = &actorData{state: Alive, allowed: allowed}
}

// Remove stops tracking actor.
func (m *Machine) Remove(actor uuid.UUID) {
	delete(m.actors, actor)
}

// HasState reports if actor is tracked by the Machine.
func (m *Machine) HasState(actor uuid.UUID) bool {
	_, ok := m.actors[actor]
	return ok
}

// State returns the current state of actor, or Invalid if it is not tracked.
func (m *Machine) State(actor uuid.UUID) State {
	if d, ok := m.actors[actor]; ok {
		return d.state
	}
	return Invalid
}

// IsAlive ...
func (m *Machine) IsAlive(actor uuid.UUID) bool {
	return m.State(actor) == Alive
}

// IsCritical ...
func (m *Machine) IsCritical(actor uuid.UUID) bool {
	return m.State(actor) == Critical
}

// IsDead ...
func (m *Machine) IsDead(actor uuid.UUID) bool {
	return m.State(actor) == Dead
}

// IsIncapacitated reports if actor is either critical or dead.
func (m *Machine) IsIncapacitated(actor uuid.UUID) bool {
	return m.State(actor).Incapacitated()
}

// Transition moves actor to the state passed. It returns false if the actor is not tracked or already in
// that state, in which case no side effects run. Transition panics if to is Invalid or not a known state.
func (m *Machine) Transition(actor uuid.UUID, to State) (bool, error) {
	mustBeValid(to)
	d, ok := m.actors[actor]
	if !ok || d.state == to {
		return false, nil
	}
	if !d.allows(to) {
		return false, fmt.Errorf("transition %v to %v: %w", actor, to, ErrStateNotAllowed)
	}
	from := d.state

	m.OnExit(actor, from)
	d.state = to
	m.OnEnter(actor, to)

	m.conf.Log.WithFields(logrus.Fields{"actor": actor, "from": from, "to": to}).Info("actor changed state")
	bus.Publish(m.conf.Bus, Changed{Actor: actor, Old: from, New: to})
	m.conf.Handler.HandleStateChanged(actor, from, to)
	return true, nil
}

// OnExit runs the side effects of actor leaving the state passed.
func (m *Machine) OnExit(actor uuid.UUID, old State) {
	switch old {
	case Alive:
	case Critical:
		m.conf.Posture.Stand(actor)
	case Dead:
		m.conf.Body.SetCollisionWake(actor, false)
		m.conf.Posture.Stand(actor)
		if !m.conf.Posture.IsDown(actor) && m.conf.Body.HasBody(actor) {
			m.conf.Body.SetCanCollide(actor, true)
		}
	default:
		panic(fmt.Sprintf("mobstate: exit from unhandled state %v", old))
	}
}

// OnEnter runs the side effects of actor entering the state passed.
func (m *Machine) OnEnter(actor uuid.UUID, state State) {
	switch state {
	case Alive:
		m.conf.Posture.Stand(actor)
	case Critical:
		m.conf.Posture.Down(actor)
	case Dead:
		m.conf.Body.SetCollisionWake(actor, true)
		m.conf.Posture.Down(actor)
		if m.conf.Posture.IsDown(actor) && m.conf.Body.HasBody(actor) {
			m.conf.Body.SetCanCollide(actor, false)
		}
	default:
		panic(fmt.Sprintf("mobstate: enter into unhandled state %v", state))
	}
	m.conf.Appearance.SetVisualTag(actor, state.String())
	m.conf.Mover.UpdateCanMove(actor)
}

func mustBeValid(s State) {
	if s != Alive && s != Critical && s != Dead {
		panic(fmt.Sprintf("mobstate: %v is not a valid state", s))
	}
}
