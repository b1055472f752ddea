package blocking

import (
	"slices"

	"github.com/BronyUraj/ss14/bus"
	"github.com/BronyUraj/ss14/hands"
	"github.com/df-mc/dragonfly/server/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Message keys looked up through the Localizer.
const (
	MsgBlockingUser    = "action-popup-blocking-user"
	MsgBlockingOther   = "action-popup-blocking-other"
	MsgDisablingUser   = "action-popup-blocking-disabling-user"
	MsgDisablingOther  = "action-popup-blocking-disabling-other"
	MsgCantBlock       = "action-popup-blocking-user-cant-block"
	MsgTooCloseToBlock = "action-popup-blocking-user-too-close"
)

// System raises and lowers blocking items. Raising an item anchors its user in place and adds a wall to its
// body. System keeps a User record for every actor holding a blocking item so the user's body type can be
// restored however the item leaves its hands.
type System struct {
	conf  Config
	items map[uuid.UUID]*Item
	users map[uuid.UUID]*User
}

func (s *System) subscribe() {
	b := s.conf.Bus
	bus.Subscribe(b, s.handleEquipped)
	bus.Subscribe(b, s.handleUnequipped)
	bus.Subscribe(b, s.handleDropped)
	bus.Subscribe(b, s.handleShutdown)
	bus.Subscribe(b, s.handleGetActions)
	bus.Subscribe(b, s.handleToggle)
	bus.Subscribe(b, s.handleAnchorChanged)
	bus.Subscribe(b, s.handleInsertAttempt)
	bus.Subscribe(b, s.handleTerminating)
}

// Add makes the System manage it.
func (s *System) Add(it *Item) {
	s.items[it.id] = it
}

// Item returns the blocking item with the handle passed.
func (s *System) Item(id uuid.UUID) (*Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// StartBlocking raises the item for user. It returns false if the item is unknown, already raised, or if
// user can't block right now, in which case user is told why and nothing changed.
func (s *System) StartBlocking(item, user uuid.UUID) bool {
	it, ok := s.items[item]
	if !ok || it.Blocking() {
		return false
	}
	ctx := event.C(it)
	if s.conf.Handler.HandleStartBlocking(ctx, user); ctx.Cancelled() {
		return false
	}
	log := s.log(it, user)

	if action, ok := it.Action(); ok {
		if !s.conf.Spatial.GridParented(user) {
			log.Debug("not parented to a grid")
			s.cantBlock(user)
			return false
		}
		if !slices.Contains(s.conf.Hands.Held(user), it.id) {
			log.Debug("not holding the item")
			s.cantBlock(user)
			return false
		}
		if s.tileOccupied(user) {
			log.Debug("tile occupied")
			s.conf.Popups.Popup(user, s.text(MsgTooCloseToBlock, it, user))
			return false
		}
		if !s.conf.Spatial.Anchor(user) {
			log.Debug("anchor failed")
			s.cantBlock(user)
			return false
		}
		s.conf.Actions.SetToggled(action, true)
		s.conf.Popups.Popup(user, s.text(MsgBlockingUser, it, user))
		s.conf.Popups.PopupExcept(user, s.text(MsgBlockingOther, it, user))
	}
	if s.conf.Physics.HasBody(user) {
		s.conf.Physics.CreateFixture(user, FixtureID, Fixture{Shape: it.shape, Layer: WallLayer, Hard: true})
	}
	it.user = user
	it.blocking.Store(true)
	log.Info("started blocking")
	return true
}

// StopBlocking lowers the item for user. It returns false if the item is unknown or not raised.
func (s *System) StopBlocking(item, user uuid.UUID) bool {
	it, ok := s.items[item]
	if !ok || !it.Blocking() {
		return false
	}
	// Lowered before the side effects, so that anchor changes caused by them don't lower it again.
	it.blocking.Store(false)

	hasBody := s.conf.Physics.HasBody(user)
	if action, ok := it.Action(); ok {
		if u, ok := s.users[user]; ok && hasBody {
			if s.conf.Spatial.Anchored(user) {
				s.conf.Spatial.Unanchor(user)
			}
			s.conf.Actions.SetToggled(action, false)
			s.conf.Physics.SetBodyType(user, u.OriginalBodyType)
			s.conf.Popups.Popup(user, s.text(MsgDisablingUser, it, user))
			s.conf.Popups.PopupExcept(user, s.text(MsgDisablingOther, it, user))
		}
	}
	if hasBody {
		s.conf.Physics.DestroyFixture(user, FixtureID)
	}
	s.log(it, user).Info("stopped blocking")
	s.conf.Handler.HandleStopBlocking(it, user)
	return true
}

// stopBlockingHelper lowers it if raised and then hands the user record over to another blocking item the
// user still holds. Only when it holds none is the record removed and the item released.
func (s *System) stopBlockingHelper(it *Item, user uuid.UUID) {
	if it.Blocking() {
		s.StopBlocking(it.id, user)
	}
	if s.handOver(user, it) {
		return
	}
	it.user = uuid.Nil
}

// tileOccupied reports if another actor or an anchored door shares the tile of user.
func (s *System) tileOccupied(user uuid.UUID) bool {
	tile, ok := s.conf.Spatial.Tile(user)
	if !ok {
		return false
	}
	for _, e := range s.conf.Spatial.Intersecting(tile) {
		if e == user {
			continue
		}
		if s.conf.Mobs.HasState(e) || s.conf.Spatial.IsAnchoredDoor(e) {
			return true
		}
	}
	return false
}

// action returns the toggle action of it, creating it from its prototype the first time.
func (s *System) action(it *Item) (uuid.UUID, bool) {
	if a, ok := it.Action(); ok {
		return a, true
	}
	if it.actionProto == "" {
		return uuid.Nil, false
	}
	proto, ok := s.conf.Prototypes(it.actionProto)
	if !ok {
		s.conf.Log.WithFields(logrus.Fields{"item": it.id, "prototype": it.actionProto}).Warn("unknown action prototype")
		return uuid.Nil, false
	}
	it.action = s.conf.Actions.Materialize(it.id, proto)
	return it.action, true
}

func (s *System) handleEquipped(ctx *event.Context[hands.Equipped]) {
	ev := ctx.Val()
	it, ok := s.items[ev.Item]
	if !ok {
		return
	}
	it.user = ev.User
	s.trackUser(ev.User, it)
}

func (s *System) handleUnequipped(ctx *event.Context[hands.Unequipped]) {
	ev := ctx.Val()
	if it, ok := s.items[ev.Item]; ok {
		s.stopBlockingHelper(it, ev.User)
	}
}

func (s *System) handleDropped(ctx *event.Context[hands.Dropped]) {
	ev := ctx.Val()
	if it, ok := s.items[ev.Item]; ok {
		s.stopBlockingHelper(it, ev.User)
	}
}

func (s *System) handleShutdown(ctx *event.Context[hands.ItemShutdown]) {
	it, ok := s.items[ctx.Val().Item]
	if !ok {
		return
	}
	if user, ok := it.User(); ok {
		s.conf.Actions.RemoveProvided(user, it.id)
		s.stopBlockingHelper(it, user)
	}
	delete(s.items, it.id)
}

func (s *System) handleGetActions(ctx *event.Context[*hands.GetItemActions]) {
	ev := ctx.Val()
	it, ok := s.items[ev.Item]
	if !ok {
		return
	}
	if a, ok := s.action(it); ok {
		ev.Actions = append(ev.Actions, a)
	}
}

func (s *System) handleToggle(ctx *event.Context[*hands.ToggleAction]) {
	ev := ctx.Val()
	it, ok := s.items[ev.Item]
	if ev.Handled || !ok {
		return
	}
	for _, held := range s.conf.Hands.Held(ev.Performer) {
		if other, ok := s.items[held]; ok && held != it.id && other.Blocking() {
			s.log(it, ev.Performer).WithField("other", held).Debug("already blocking with another item")
			s.cantBlock(ev.Performer)
			return
		}
	}
	if it.Blocking() {
		s.StopBlocking(it.id, ev.Performer)
	} else {
		s.StartBlocking(it.id, ev.Performer)
	}
	ev.Handled = true
}

func (s *System) cantBlock(user uuid.UUID) {
	s.conf.Popups.Popup(user, s.conf.Text.GetString(MsgCantBlock, nil))
}

func (s *System) text(key string, it *Item, user uuid.UUID) string {
	return s.conf.Text.GetString(key, map[string]string{
		"shield":      it.name,
		"blockerName": s.conf.Names.Name(user),
	})
}

func (s *System) log(it *Item, user uuid.UUID) logrus.FieldLogger {
	return s.conf.Log.WithFields(logrus.Fields{"item": it.id, "actor": user})
}
