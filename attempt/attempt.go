// Package attempt holds the events published before an actor commits an action. Any subscriber may cancel
// an attempt through its event context, vetoing the action.
package attempt

import "github.com/google/uuid"

// Kind identifies a kind of attempted action.
type Kind uint8

const (
	ChangeDirection Kind = iota
	Use
	Attack
	Interact
	Throw
	Speak
	Emote
	Drop
	Pickup
	StartPull
	UpdateCanMove
	Stand
	Equip
	Unequip
	Sleep
	Sneeze
)

var kindNames = [...]string{
	ChangeDirection: "change_direction",
	Use:             "use",
	Attack:          "attack",
	Interact:        "interact",
	Throw:           "throw",
	Speak:           "speak",
	Emote:           "emote",
	Drop:            "drop",
	Pickup:          "pickup",
	StartPull:       "start_pull",
	UpdateCanMove:   "update_can_move",
	Stand:           "stand",
	Equip:           "equip",
	Unequip:         "unequip",
	Sleep:           "sleep",
	Sneeze:          "sneeze",
}

// String ...
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every gated attempt kind.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Attempt is implemented by every attempt event.
type Attempt interface {
	// Actor returns the entity whose action is being attempted.
	Actor() uuid.UUID
	// Kind returns the kind of action attempted.
	Kind() Kind
}

// Performed is implemented by attempts that may be carried out by a different entity than the actor they
// affect, such as equipping clothes onto someone else.
type Performed interface {
	Attempt
	Performer() uuid.UUID
}

// ChangeDirectionAttempt is published before an actor turns to face another direction.
type ChangeDirectionAttempt struct{ Uid uuid.UUID }

// UseAttempt is published before an actor uses an item or entity.
type UseAttempt struct{ Uid, Used uuid.UUID }

// AttackAttempt is published before an actor attacks.
type AttackAttempt struct{ Uid, Target uuid.UUID }

// InteractAttempt is published before an actor interacts with anything, including actions that require the
// actor to be conscious.
type InteractAttempt struct{ Uid, Target uuid.UUID }

// ThrowAttempt is published before an actor throws an item.
type ThrowAttempt struct{ Uid, Item uuid.UUID }

// SpeakAttempt is published before an actor speaks.
type SpeakAttempt struct{ Uid uuid.UUID }

// EmoteAttempt is published before an actor emotes.
type EmoteAttempt struct {
	Uid   uuid.UUID
	Emote string
}

// DropAttempt is published before an actor drops a held item.
type DropAttempt struct{ Uid, Item uuid.UUID }

// PickupAttempt is published before an actor picks up an item.
type PickupAttempt struct{ Uid, Item uuid.UUID }

// StartPullAttempt is published before an actor starts pulling an entity.
type StartPullAttempt struct{ Uid, Pulled uuid.UUID }

// UpdateCanMoveAttempt is published whenever an actor's ability to move is recomputed. Cancelling it leaves
// the actor unable to move.
type UpdateCanMoveAttempt struct{ Uid uuid.UUID }

// StandAttempt is published before an actor stands up.
type StandAttempt struct{ Uid uuid.UUID }

// EquipAttempt is published before Equipee puts Item on Target. Equipee and Target are the same entity when
// an actor dresses itself.
type EquipAttempt struct{ Equipee, Target, Item uuid.UUID }

// UnequipAttempt is published before Unequipee takes Item off Target.
type UnequipAttempt struct{ Unequipee, Target, Item uuid.UUID }

// SleepAttempt is published before an actor falls asleep.
type SleepAttempt struct{ Uid uuid.UUID }

// SneezeAttempt is published before an actor sneezes or coughs.
type SneezeAttempt struct{ Uid uuid.UUID }

func (a ChangeDirectionAttempt) Actor() uuid.UUID { return a.Uid }
func (a UseAttempt) Actor() uuid.UUID             { return a.Uid }
func (a AttackAttempt) Actor() uuid.UUID          { return a.Uid }
func (a InteractAttempt) Actor() uuid.UUID        { return a.Uid }
func (a ThrowAttempt) Actor() uuid.UUID           { return a.Uid }
func (a SpeakAttempt) Actor() uuid.UUID           { return a.Uid }
func (a EmoteAttempt) Actor() uuid.UUID           { return a.Uid }
func (a DropAttempt) Actor() uuid.UUID            { return a.Uid }
func (a PickupAttempt) Actor() uuid.UUID          { return a.Uid }
func (a StartPullAttempt) Actor() uuid.UUID       { return a.Uid }
func (a UpdateCanMoveAttempt) Actor() uuid.UUID   { return a.Uid }
func (a StandAttempt) Actor() uuid.UUID           { return a.Uid }
func (a EquipAttempt) Actor() uuid.UUID           { return a.Target }
func (a UnequipAttempt) Actor() uuid.UUID         { return a.Target }
func (a SleepAttempt) Actor() uuid.UUID           { return a.Uid }
func (a SneezeAttempt) Actor() uuid.UUID          { return a.Uid }

func (ChangeDirectionAttempt) Kind() Kind { return ChangeDirection }
func (UseAttempt) Kind() Kind             { return Use }
func (AttackAttempt) Kind() Kind          { return Attack }
func (InteractAttempt) Kind() Kind        { return Interact }
func (ThrowAttempt) Kind() Kind           { return Throw }
func (SpeakAttempt) Kind() Kind           { return Speak }
func (EmoteAttempt) Kind() Kind           { return Emote }
func (DropAttempt) Kind() Kind            { return Drop }
func (PickupAttempt) Kind() Kind          { return Pickup }
func (StartPullAttempt) Kind() Kind       { return StartPull }
func (UpdateCanMoveAttempt) Kind() Kind   { return UpdateCanMove }
func (StandAttempt) Kind() Kind           { return Stand }
func (EquipAttempt) Kind() Kind           { return Equip }
func (UnequipAttempt) Kind() Kind         { return Unequip }
func (SleepAttempt) Kind() Kind           { return Sleep }
func (SneezeAttempt) Kind() Kind          { return Sneeze }

// Performer returns the entity doing the equipping.
func (a EquipAttempt) Performer() uuid.UUID { return a.Equipee }

// Performer returns the entity doing the unequipping.
func (a UnequipAttempt) Performer() uuid.UUID { return a.Unequipee }

// BeforeStripped is published before an actor's inventory is stripped by someone. Handlers scale Multiplier
// to change how long the strip takes. It is published by pointer so handlers can modify it.
type BeforeStripped struct {
	Target, Stripper uuid.UUID
	Multiplier       float64
}
