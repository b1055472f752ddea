// Package hands holds the notifications a host publishes when items move in and out of an actor's hands,
// and when the actor holding them changes in ways held items care about.
package hands

import "github.com/google/uuid"

// Equipped is published after Item was placed into one of User's hands.
type Equipped struct{ User, Item uuid.UUID }

// Unequipped is published after Item left one of User's hands without being dropped, for example when it
// was put into a bag.
type Unequipped struct{ User, Item uuid.UUID }

// Dropped is published after User dropped Item.
type Dropped struct{ User, Item uuid.UUID }

// ItemShutdown is published when Item is being destroyed.
type ItemShutdown struct{ Item uuid.UUID }

// Terminating is published when Actor is being removed from the world.
type Terminating struct{ Actor uuid.UUID }

// AnchorChanged is published after Entity was anchored to or released from the world.
type AnchorChanged struct {
	Entity   uuid.UUID
	Anchored bool
}

// InsertAttempt is published before Entity is inserted into Container.
type InsertAttempt struct{ Entity, Container uuid.UUID }

// GetItemActions is published by pointer when User's action bar is rebuilt. Handlers for Item append the
// handles of the actions the item provides.
type GetItemActions struct {
	User, Item uuid.UUID
	Actions    []uuid.UUID
}

// ToggleAction is published by pointer when Performer activates the toggle action provided by Item. The
// handler that acts on it sets Handled.
type ToggleAction struct {
	Performer, Item, Action uuid.UUID
	Handled                 bool
}
