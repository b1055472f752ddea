package blocking

import (
	"github.com/BronyUraj/ss14/bus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FixtureID is the id of the fixture added to a user's body while it blocks.
const FixtureID = "blocking"

// Config holds the collaborators of a System.
type Config struct {
	// Log is the logger used by the System. It defaults to the logrus standard logger.
	Log logrus.FieldLogger
	// Bus is the bus the System subscribes to hand and action events on.
	Bus *bus.Bus
	// Handler is notified when users start and stop blocking. It defaults to NopHandler.
	Handler Handler

	Physics Physics
	Spatial Spatial
	Hands   Hands
	Mobs    Mobs
	Popups  Popups
	Actions Actions
	Names   Names
	Text    Localizer

	// Prototypes resolves the prototype of a toggle action by id. It is only called the first time an
	// item's action is requested.
	Prototypes func(id string) (ActionPrototype, bool)
}

// New creates a System from the Config and subscribes it to the bus. New panics if the Bus or any of the
// collaborators is nil.
func (c Config) New() *System {
	if c.Bus == nil || c.Physics == nil || c.Spatial == nil || c.Hands == nil || c.Mobs == nil ||
		c.Popups == nil || c.Actions == nil || c.Names == nil || c.Text == nil || c.Prototypes == nil {
		panic("blocking: bus and collaborators can't be nil")
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	if c.Handler == nil {
		c.Handler = NopHandler{}
	}
	s := &System{
		conf:  c,
		items: make(map[uuid.UUID]*Item),
		users: make(map[uuid.UUID]*User),
	}
	s.subscribe()
	return s
}
