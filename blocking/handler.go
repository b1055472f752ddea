package blocking

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/event"
	"github.com/google/uuid"
)

// Handler handles blocking stance changes.
type Handler interface {
	// HandleStartBlocking handles user starting to block with an item. ctx.Cancel() may be called to keep
	// the user from blocking. It is called before any guard runs.
	HandleStartBlocking(ctx *event.Context[*Item], user uuid.UUID)
	// HandleStopBlocking handles user no longer blocking with an item.
	HandleStopBlocking(it *Item, user uuid.UUID)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) HandleStartBlocking(*event.Context[*Item], uuid.UUID) {}
func (NopHandler) HandleStopBlocking(*Item, uuid.UUID)                  {}

// BodyType is how the physics engine moves a body.
type BodyType uint8

const (
	// Static bodies never move.
	Static BodyType = iota
	Kinematic
	Dynamic
	KinematicController
)

// String ...
func (b BodyType) String() string {
	switch b {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	case KinematicController:
		return "kinematic_controller"
	}
	return "unknown"
}

// Layer is a collision layer bitmask.
type Layer uint32

// WallLayer is the collision layer of walls.
const WallLayer Layer = 1 << 1

// Fixture is a collision shape attached to a body.
type Fixture struct {
	Shape cube.BBox
	Layer Layer
	Hard  bool
}

// Physics is the part of the physics engine the blocking stance uses.
type Physics interface {
	HasBody(e uuid.UUID) bool
	BodyType(e uuid.UUID) BodyType
	SetBodyType(e uuid.UUID, t BodyType)
	// CreateFixture attaches f to the body of e under id. It returns false if e has no body or already has
	// a fixture with that id.
	CreateFixture(e uuid.UUID, id string, f Fixture) bool
	DestroyFixture(e uuid.UUID, id string)
}

// Spatial resolves where entities are and anchors them to the world.
type Spatial interface {
	// GridParented reports if e is parented directly to a grid, rather than to another entity.
	GridParented(e uuid.UUID) bool
	Tile(e uuid.UUID) (cube.Pos, bool)
	Intersecting(tile cube.Pos) []uuid.UUID
	IsAnchoredDoor(e uuid.UUID) bool
	Anchored(e uuid.UUID) bool
	// Anchor tries to anchor e and reports if it is anchored afterwards.
	Anchor(e uuid.UUID) bool
	Unanchor(e uuid.UUID)
}

// Hands lists the items an actor holds.
type Hands interface {
	Held(actor uuid.UUID) []uuid.UUID
}

// Mobs reports if an entity is an actor.
type Mobs interface {
	HasState(e uuid.UUID) bool
}

// Popups shows short messages near an entity.
type Popups interface {
	// Popup shows msg to recipient only.
	Popup(recipient uuid.UUID, msg string)
	// PopupExcept shows msg above source to everyone in view except source.
	PopupExcept(source uuid.UUID, msg string)
}

// Localizer looks up the text of a message, filling in its named arguments.
type Localizer interface {
	GetString(key string, args map[string]string) string
}

// Names returns the display name of an entity.
type Names interface {
	Name(e uuid.UUID) string
}

// ActionPrototype is the template a toggle action is created from.
type ActionPrototype struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Actions creates and toggles the actions shown on an actor's action bar.
type Actions interface {
	// Materialize creates an action provided by item from proto and returns its handle.
	Materialize(item uuid.UUID, proto ActionPrototype) uuid.UUID
	SetToggled(action uuid.UUID, toggled bool)
	// RemoveProvided removes every action item provided to user.
	RemoveProvided(user, item uuid.UUID)
}
