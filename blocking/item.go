package blocking

import (
	"github.com/df-mc/atomic"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/google/uuid"
)

// Item is an item that can be raised to block, such as a shield.
type Item struct {
	id    uuid.UUID
	name  string
	shape cube.BBox

	actionProto string
	action      uuid.UUID

	blocking atomic.Bool
	user     uuid.UUID
}

// NewItem returns an Item with the handle and name passed. While blocking, shape is added to the user's
// body as a hard fixture. actionProto is the id of the prototype its toggle action is created from, or an
// empty string if the item provides no action.
func NewItem(id uuid.UUID, name string, shape cube.BBox, actionProto string) *Item {
	return &Item{id: id, name: name, shape: shape, actionProto: actionProto}
}

// ID ...
func (it *Item) ID() uuid.UUID {
	return it.id
}

// Name ...
func (it *Item) Name() string {
	return it.name
}

// Shape ...
func (it *Item) Shape() cube.BBox {
	return it.shape
}

// Blocking reports if the item is currently raised.
func (it *Item) Blocking() bool {
	return it.blocking.Load()
}

// User returns the actor wielding the item, if any.
func (it *Item) User() (uuid.UUID, bool) {
	return it.user, it.user != uuid.Nil
}

// Action returns the handle of the item's toggle action, if it was created already.
func (it *Item) Action() (uuid.UUID, bool) {
	return it.action, it.action != uuid.Nil
}
