package mobstate

import "github.com/google/uuid"

// Handler handles state changes of actors tracked by a Machine.
type Handler interface {
	// HandleStateChanged handles an actor moving from one state to another. It is called after the enter
	// and exit side effects ran.
	HandleStateChanged(actor uuid.UUID, from, to State)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) HandleStateChanged(uuid.UUID, State, State) {}

// Posture forces actors to stand up or lie down.
type Posture interface {
	Stand(actor uuid.UUID)
	Down(actor uuid.UUID)
	IsDown(actor uuid.UUID) bool
}

// Appearance publishes the visual state of an actor to clients.
type Appearance interface {
	SetVisualTag(actor uuid.UUID, tag string)
}

// Body is the part of the physics engine the state machine touches.
type Body interface {
	HasBody(actor uuid.UUID) bool
	SetCanCollide(actor uuid.UUID, collide bool)
	// SetCollisionWake adds or removes the marker that wakes the actor's body when something collides with
	// it.
	SetCollisionWake(actor uuid.UUID, wake bool)
}

// Mover recomputes whether an actor can move.
type Mover interface {
	UpdateCanMove(actor uuid.UUID)
}
