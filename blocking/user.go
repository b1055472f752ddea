package blocking

import (
	"github.com/BronyUraj/ss14/hands"
	"github.com/df-mc/dragonfly/server/event"
	"github.com/google/uuid"
)

// User is kept for an actor holding at least one blocking item. It remembers how the actor's body moved
// before blocking anchored it, so it can be restored afterwards.
type User struct {
	OriginalBodyType BodyType
	// Item is the blocking item currently responsible for restoring the body type.
	Item uuid.UUID
}

// User returns the record kept for actor, if any.
func (s *System) User(actor uuid.UUID) (User, bool) {
	u, ok := s.users[actor]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// trackUser creates the record of actor if its body can move and it has none yet.
func (s *System) trackUser(actor uuid.UUID, it *Item) {
	if _, ok := s.users[actor]; ok || !s.conf.Physics.HasBody(actor) {
		return
	}
	if t := s.conf.Physics.BodyType(actor); t != Static {
		s.users[actor] = &User{OriginalBodyType: t, Item: it.id}
	}
}

// handOver points the record of actor at another blocking item it still holds, or removes the record if it
// holds none. It reports if a record remains.
func (s *System) handOver(actor uuid.UUID, from *Item) bool {
	if u, ok := s.users[actor]; ok {
		for _, held := range s.conf.Hands.Held(actor) {
			if _, blocker := s.items[held]; blocker && held != from.id {
				u.Item = held
				return true
			}
		}
	}
	delete(s.users, actor)
	return false
}

// raised returns the item actor is blocking with, if any.
func (s *System) raised(actor uuid.UUID) (*Item, bool) {
	if u, ok := s.users[actor]; ok {
		if it, ok := s.items[u.Item]; ok && it.Blocking() {
			return it, true
		}
	}
	for _, held := range s.conf.Hands.Held(actor) {
		if it, ok := s.items[held]; ok && it.Blocking() {
			return it, true
		}
	}
	return nil, false
}

// lower stops actor from blocking with whichever item it has raised.
func (s *System) lower(actor uuid.UUID) {
	if it, ok := s.raised(actor); ok {
		s.StopBlocking(it.id, actor)
	}
}

func (s *System) handleAnchorChanged(ctx *event.Context[hands.AnchorChanged]) {
	if ev := ctx.Val(); !ev.Anchored {
		s.lower(ev.Entity)
	}
}

func (s *System) handleInsertAttempt(ctx *event.Context[hands.InsertAttempt]) {
	s.lower(ctx.Val().Entity)
}

func (s *System) handleTerminating(ctx *event.Context[hands.Terminating]) {
	actor := ctx.Val().Actor
	s.lower(actor)
	for _, it := range s.items {
		if it.user == actor {
			it.user = uuid.Nil
		}
	}
	delete(s.users, actor)
}
