// Package sim is an in-memory host for the incapacitation and blocking systems. It keeps positions, bodies,
// hands and action bars of entities in maps and publishes the events a real game host would publish.
package sim

import (
	"slices"
	"strings"

	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/bus"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Entity is anything that exists in a World.
type Entity struct {
	ID   uuid.UUID
	Name string
	Pos  mgl64.Vec3
	// Parent is the entity this one is inside of, or uuid.Nil if it is parented directly to the grid.
	Parent uuid.UUID

	Door     bool
	Anchored bool
	// Unanchorable entities refuse to be anchored.
	Unanchorable bool

	// Body is nil for entities without physics.
	Body *Body

	Down    bool
	Tag     string
	CanMove bool
	Hands   []uuid.UUID
}

// Body is the physics body of an entity.
type Body struct {
	Type          blocking.BodyType
	CanCollide    bool
	CollisionWake bool
	Fixtures      map[string]blocking.Fixture
}

// Popup is a message shown by a World.
type Popup struct {
	// Recipient is set for messages shown to a single entity.
	Recipient uuid.UUID
	// Source is set for messages shown to everyone except the source.
	Source uuid.UUID
	Text   string
}

// Action is an entry of an actor's action bar provided by an item.
type Action struct {
	ID      uuid.UUID
	Item    uuid.UUID
	Proto   blocking.ActionPrototype
	Toggled bool
}

// World holds every entity of the host. It is not safe for concurrent use.
type World struct {
	bus     *bus.Bus
	ents    map[uuid.UUID]*Entity
	actions map[uuid.UUID]*Action
	popups  []Popup
}

// NewWorld returns an empty World publishing its events on b.
func NewWorld(b *bus.Bus) *World {
	return &World{bus: b, ents: make(map[uuid.UUID]*Entity), actions: make(map[uuid.UUID]*Action)}
}

// Add adds e to the World, giving it a fresh ID if it has none.
func (w *World) Add(e *Entity) uuid.UUID {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	w.ents[e.ID] = e
	return e.ID
}

// SpawnMob adds a standing, movable mob with a body of the type passed at pos.
func (w *World) SpawnMob(name string, pos mgl64.Vec3, t blocking.BodyType) uuid.UUID {
	return w.Add(&Entity{
		Name:    name,
		Pos:     pos,
		CanMove: true,
		Body:    &Body{Type: t, CanCollide: true, Fixtures: make(map[string]blocking.Fixture)},
	})
}

// SpawnItem adds an item without a body lying at pos.
func (w *World) SpawnItem(name string, pos mgl64.Vec3) uuid.UUID {
	return w.Add(&Entity{Name: name, Pos: pos})
}

// Entity returns the entity with the ID passed.
func (w *World) Entity(id uuid.UUID) (*Entity, bool) {
	e, ok := w.ents[id]
	return e, ok
}

// Popups returns every message shown so far.
func (w *World) Popups() []Popup {
	return w.popups
}

// PopupsFor returns the text of every message shown to recipient alone.
func (w *World) PopupsFor(recipient uuid.UUID) []string {
	var out []string
	for _, p := range w.popups {
		if p.Recipient == recipient {
			out = append(out, p.Text)
		}
	}
	return out
}

// ActionOf returns the action with the ID passed.
func (w *World) ActionOf(id uuid.UUID) (Action, bool) {
	a, ok := w.actions[id]
	if !ok {
		return Action{}, false
	}
	return *a, true
}

func (w *World) body(e uuid.UUID) *Body {
	if ent, ok := w.ents[e]; ok {
		return ent.Body
	}
	return nil
}

// Stand ...
func (w *World) Stand(actor uuid.UUID) {
	if e, ok := w.ents[actor]; ok {
		e.Down = false
	}
}

// Down ...
func (w *World) Down(actor uuid.UUID) {
	if e, ok := w.ents[actor]; ok {
		e.Down = true
	}
}

// IsDown ...
func (w *World) IsDown(actor uuid.UUID) bool {
	e, ok := w.ents[actor]
	return ok && e.Down
}

// SetVisualTag ...
func (w *World) SetVisualTag(actor uuid.UUID, tag string) {
	if e, ok := w.ents[actor]; ok {
		e.Tag = tag
	}
}

// HasBody ...
func (w *World) HasBody(e uuid.UUID) bool {
	return w.body(e) != nil
}

// SetCanCollide ...
func (w *World) SetCanCollide(e uuid.UUID, collide bool) {
	if b := w.body(e); b != nil {
		b.CanCollide = collide
	}
}

// SetCollisionWake ...
func (w *World) SetCollisionWake(e uuid.UUID, wake bool) {
	if b := w.body(e); b != nil {
		b.CollisionWake = wake
	}
}

// BodyType ...
func (w *World) BodyType(e uuid.UUID) blocking.BodyType {
	if b := w.body(e); b != nil {
		return b.Type
	}
	return blocking.Static
}

// SetBodyType ...
func (w *World) SetBodyType(e uuid.UUID, t blocking.BodyType) {
	if b := w.body(e); b != nil {
		b.Type = t
	}
}

// CreateFixture ...
func (w *World) CreateFixture(e uuid.UUID, id string, f blocking.Fixture) bool {
	b := w.body(e)
	if b == nil {
		return false
	}
	if _, ok := b.Fixtures[id]; ok {
		return false
	}
	b.Fixtures[id] = f
	return true
}

// DestroyFixture ...
func (w *World) DestroyFixture(e uuid.UUID, id string) {
	if b := w.body(e); b != nil {
		delete(b.Fixtures, id)
	}
}

// GridParented ...
func (w *World) GridParented(e uuid.UUID) bool {
	ent, ok := w.ents[e]
	return ok && ent.Parent == uuid.Nil
}

// Tile returns the grid tile e stands on. Entities inside other entities are on no tile.
func (w *World) Tile(e uuid.UUID) (cube.Pos, bool) {
	ent, ok := w.ents[e]
	if !ok || ent.Parent != uuid.Nil {
		return cube.Pos{}, false
	}
	return cube.PosFromVec3(ent.Pos), true
}

// Intersecting returns the entities on tile, ordered by ID.
func (w *World) Intersecting(tile cube.Pos) []uuid.UUID {
	var out []uuid.UUID
	for id, ent := range w.ents {
		if ent.Parent == uuid.Nil && cube.PosFromVec3(ent.Pos) == tile {
			out = append(out, id)
		}
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// IsAnchoredDoor ...
func (w *World) IsAnchoredDoor(e uuid.UUID) bool {
	ent, ok := w.ents[e]
	return ok && ent.Door && ent.Anchored
}

// Anchored ...
func (w *World) Anchored(e uuid.UUID) bool {
	ent, ok := w.ents[e]
	return ok && ent.Anchored
}

// Held ...
func (w *World) Held(actor uuid.UUID) []uuid.UUID {
	if e, ok := w.ents[actor]; ok {
		return slices.Clone(e.Hands)
	}
	return nil
}

// Name ...
func (w *World) Name(e uuid.UUID) string {
	if ent, ok := w.ents[e]; ok {
		return ent.Name
	}
	return ""
}

// Popup ...
func (w *World) Popup(recipient uuid.UUID, msg string) {
	w.popups = append(w.popups, Popup{Recipient: recipient, Text: msg})
}

// PopupExcept ...
func (w *World) PopupExcept(source uuid.UUID, msg string) {
	w.popups = append(w.popups, Popup{Source: source, Text: msg})
}

// Materialize ...
func (w *World) Materialize(item uuid.UUID, proto blocking.ActionPrototype) uuid.UUID {
	a := &Action{ID: uuid.New(), Item: item, Proto: proto}
	w.actions[a.ID] = a
	return a.ID
}

// SetToggled ...
func (w *World) SetToggled(action uuid.UUID, toggled bool) {
	if a, ok := w.actions[action]; ok {
		a.Toggled = toggled
	}
}

// RemoveProvided ...
func (w *World) RemoveProvided(_, item uuid.UUID) {
	for id, a := range w.actions {
		if a.Item == item {
			delete(w.actions, id)
		}
	}
}
