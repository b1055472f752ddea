package mobstate

import (
	"fmt"
	"strings"
)

// State is the incapacitation state of an actor.
type State uint8

const (
	// Invalid is the zero State. It marks an actor that has no meaningful state yet and is never a valid
	// transition target.
	Invalid State = iota
	Alive
	Critical
	Dead
)

// String returns the visual tag of the state.
func (s State) String() string {
	switch s {
	case Invalid:
		return "Invalid"
	case Alive:
		return "Alive"
	case Critical:
		return "Critical"
	case Dead:
		return "Dead"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ParseState parses the name of a valid state, ignoring case.
func ParseState(s string) (State, error) {
	switch strings.ToLower(s) {
	case "alive":
		return Alive, nil
	case "critical":
		return Critical, nil
	case "dead":
		return Dead, nil
	}
	return Invalid, fmt.Errorf("parse state %q: %w", s, ErrUnknownState)
}

// Incapacitated reports if the state prevents an actor from acting.
func (s State) Incapacitated() bool {
	return s == Critical || s == Dead
}

// UnmarshalText ...
func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText ...
func (s State) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}
