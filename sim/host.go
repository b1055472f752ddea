package sim

import (
	"slices"

	"github.com/BronyUraj/ss14/attempt"
	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/bus"
	"github.com/BronyUraj/ss14/hands"
	"github.com/google/uuid"
)

// Anchor anchors e in place, making its body static. It reports if e is anchored afterwards.
func (w *World) Anchor(e uuid.UUID) bool {
	ent, ok := w.ents[e]
	if !ok || ent.Unanchorable || ent.Parent != uuid.Nil {
		return false
	}
	if ent.Anchored {
		return true
	}
	ent.Anchored = true
	if ent.Body != nil {
		ent.Body.Type = blocking.Static
	}
	bus.Publish(w.bus, hands.AnchorChanged{Entity: e, Anchored: true})
	return true
}

// Unanchor releases e. Its body becomes dynamic.
func (w *World) Unanchor(e uuid.UUID) {
	ent, ok := w.ents[e]
	if !ok || !ent.Anchored {
		return
	}
	ent.Anchored = false
	if ent.Body != nil {
		ent.Body.Type = blocking.Dynamic
	}
	bus.Publish(w.bus, hands.AnchorChanged{Entity: e, Anchored: false})
}

// UpdateCanMove asks the bus whether actor may move and stores the answer.
func (w *World) UpdateCanMove(actor uuid.UUID) {
	ent, ok := w.ents[actor]
	if !ok {
		return
	}
	ent.CanMove = !bus.Publish(w.bus, attempt.UpdateCanMoveAttempt{Uid: actor}).Cancelled()
}

// TryStand stands actor up unless something cancels the attempt.
func (w *World) TryStand(actor uuid.UUID) bool {
	if bus.Publish(w.bus, attempt.StandAttempt{Uid: actor}).Cancelled() {
		return false
	}
	w.Stand(actor)
	return true
}

// Pickup puts item into a hand of actor.
func (w *World) Pickup(actor, item uuid.UUID) bool {
	a, ok := w.ents[actor]
	it, ok2 := w.ents[item]
	if !ok || !ok2 || it.Parent != uuid.Nil {
		return false
	}
	if bus.Publish(w.bus, attempt.PickupAttempt{Uid: actor, Item: item}).Cancelled() {
		return false
	}
	w.hold(a, it)
	return true
}

// Equip puts item into a hand of target on behalf of equipee.
func (w *World) Equip(equipee, target, item uuid.UUID) bool {
	t, ok := w.ents[target]
	it, ok2 := w.ents[item]
	if !ok || !ok2 {
		return false
	}
	if bus.Publish(w.bus, attempt.EquipAttempt{Equipee: equipee, Target: target, Item: item}).Cancelled() {
		return false
	}
	w.hold(t, it)
	return true
}

func (w *World) hold(a, it *Entity) {
	it.Parent = a.ID
	a.Hands = append(a.Hands, it.ID)
	bus.Publish(w.bus, hands.Equipped{User: a.ID, Item: it.ID})
}

// Unequip takes item out of the hands of target on behalf of unequipee and stores it on target.
func (w *World) Unequip(unequipee, target, item uuid.UUID) bool {
	t, ok := w.ents[target]
	if !ok || !slices.Contains(t.Hands, item) {
		return false
	}
	if bus.Publish(w.bus, attempt.UnequipAttempt{Unequipee: unequipee, Target: target, Item: item}).Cancelled() {
		return false
	}
	t.Hands = slices.DeleteFunc(t.Hands, func(id uuid.UUID) bool { return id == item })
	bus.Publish(w.bus, hands.Unequipped{User: target, Item: item})
	return true
}

// Drop drops item held by actor unless something cancels the attempt.
func (w *World) Drop(actor, item uuid.UUID) bool {
	if bus.Publish(w.bus, attempt.DropAttempt{Uid: actor, Item: item}).Cancelled() {
		return false
	}
	return w.ForceDrop(actor, item)
}

// ForceDrop drops item held by actor without asking, as happens when an actor dies or is disarmed.
func (w *World) ForceDrop(actor, item uuid.UUID) bool {
	a, ok := w.ents[actor]
	it, ok2 := w.ents[item]
	if !ok || !ok2 || !slices.Contains(a.Hands, item) {
		return false
	}
	a.Hands = slices.DeleteFunc(a.Hands, func(id uuid.UUID) bool { return id == item })
	it.Parent, it.Pos = uuid.Nil, a.Pos
	bus.Publish(w.bus, hands.Dropped{User: actor, Item: item})
	return true
}

// Strip returns how long stripper takes to strip target given the base duration.
func (w *World) Strip(stripper, target uuid.UUID, base float64) float64 {
	ev := &attempt.BeforeStripped{Target: target, Stripper: stripper, Multiplier: 1}
	bus.Publish(w.bus, ev)
	return base * ev.Multiplier
}

// ItemActions returns the actions item provides to user.
func (w *World) ItemActions(user, item uuid.UUID) []uuid.UUID {
	ev := &hands.GetItemActions{User: user, Item: item}
	bus.Publish(w.bus, ev)
	return ev.Actions
}

// Toggle performs the toggle action on behalf of performer. It reports if the action was handled.
func (w *World) Toggle(performer, action uuid.UUID) bool {
	a, ok := w.actions[action]
	if !ok {
		return false
	}
	ev := &hands.ToggleAction{Performer: performer, Item: a.Item, Action: action}
	bus.Publish(w.bus, ev)
	return ev.Handled
}

// Insert puts e inside container unless something cancels it.
func (w *World) Insert(e, container uuid.UUID) bool {
	ent, ok := w.ents[e]
	if !ok {
		return false
	}
	if _, ok := w.ents[container]; !ok {
		return false
	}
	if bus.Publish(w.bus, hands.InsertAttempt{Entity: e, Container: container}).Cancelled() {
		return false
	}
	w.Unanchor(e)
	ent.Parent = container
	return true
}

// Destroy removes item from the World and from any hand holding it.
func (w *World) Destroy(item uuid.UUID) {
	bus.Publish(w.bus, hands.ItemShutdown{Item: item})
	if it, ok := w.ents[item]; ok && it.Parent != uuid.Nil {
		if holder, ok := w.ents[it.Parent]; ok {
			holder.Hands = slices.DeleteFunc(holder.Hands, func(id uuid.UUID) bool { return id == item })
		}
	}
	delete(w.ents, item)
}

// Terminate removes actor from the World.
func (w *World) Terminate(actor uuid.UUID) {
	bus.Publish(w.bus, hands.Terminating{Actor: actor})
	delete(w.ents, actor)
}
