package mobstate

import (
	"github.com/BronyUraj/ss14/bus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Config holds the collaborators of a Machine.
type Config struct {
	// Log is the logger used for transitions. It defaults to the logrus standard logger.
	Log logrus.FieldLogger
	// Bus is the bus Changed events are published on and gates are registered against.
	Bus *bus.Bus
	// Handler is notified of every state change. It defaults to NopHandler.
	Handler Handler

	Posture    Posture
	Appearance Appearance
	Body       Body
	Mover      Mover

	// StripDivisors maps a state to the value the strip duration multiplier is divided by while an actor is
	// in it. States not present leave the multiplier unchanged. It defaults to DefaultStripDivisors.
	StripDivisors map[State]float64
}

// DefaultStripDivisors makes stripping a critical actor twice as fast and stripping a dead actor three
// times as fast.
var DefaultStripDivisors = map[State]float64{Critical: 2, Dead: 3}

// New creates a Machine from the Config. New panics if the Bus or any of the collaborators is nil.
func (c Config) New() *Machine {
	if c.Bus == nil || c.Posture == nil || c.Appearance == nil || c.Body == nil || c.Mover == nil {
		panic("mobstate: bus and collaborators can't be nil")
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	if c.Handler == nil {
		c.Handler = NopHandler{}
	}
	if c.StripDivisors == nil {
		c.StripDivisors = DefaultStripDivisors
	}
	m := &Machine{conf: c, actors: make(map[uuid.UUID]*actorData), rules: defaultRules()}
	for _, bind := range gates {
		bind(m)
	}
	bus.Subscribe(c.Bus, m.modifyStripSpeed)
	return m
}
