package mobstate

import (
	"github.com/BronyUraj/ss14/attempt"
	"github.com/BronyUraj/ss14/bus"
	"github.com/df-mc/dragonfly/server/event"
)

// Rule decides if an attempt made on behalf of an actor in the state passed is cancelled.
type Rule func(s State, a attempt.Attempt) bool

type ruleSet map[attempt.Kind]Rule

// Incapacitated cancels attempts of critical and dead actors.
func Incapacitated(s State, _ attempt.Attempt) bool {
	return s.Incapacitated()
}

// OnlyDead cancels attempts of dead actors. Critical actors may still fall asleep or sneeze.
func OnlyDead(s State, _ attempt.Attempt) bool {
	return s == Dead
}

// SelfIncapacitated cancels attempts of critical and dead actors that act on themselves. Someone else may
// still act on them, so incapacitated bodies can be stripped.
func SelfIncapacitated(s State, a attempt.Attempt) bool {
	p, ok := a.(attempt.Performed)
	return ok && p.Performer() == p.Actor() && s.Incapacitated()
}

func defaultRules() ruleSet {
	return ruleSet{
		attempt.ChangeDirection: Incapacitated,
		attempt.Use:             Incapacitated,
		attempt.Attack:          Incapacitated,
		attempt.Interact:        Incapacitated,
		attempt.Throw:           Incapacitated,
		attempt.Speak:           Incapacitated,
		attempt.Emote:           Incapacitated,
		attempt.Drop:            Incapacitated,
		attempt.Pickup:          Incapacitated,
		attempt.StartPull:       Incapacitated,
		attempt.UpdateCanMove:   Incapacitated,
		attempt.Stand:           Incapacitated,
		attempt.Equip:           SelfIncapacitated,
		attempt.Unequip:         SelfIncapacitated,
		attempt.Sleep:           OnlyDead,
		attempt.Sneeze:          OnlyDead,
	}
}

// gates subscribes the Machine to every attempt event it vetoes. A new kind of gated action only needs an
// entry here and a rule.
var gates = []func(m *Machine){
	gate[attempt.ChangeDirectionAttempt],
	gate[attempt.UseAttempt],
	gate[attempt.AttackAttempt],
	gate[attempt.InteractAttempt],
	gate[attempt.ThrowAttempt],
	gate[attempt.SpeakAttempt],
	gate[attempt.EmoteAttempt],
	gate[attempt.DropAttempt],
	gate[attempt.PickupAttempt],
	gate[attempt.StartPullAttempt],
	gate[attempt.UpdateCanMoveAttempt],
	gate[attempt.StandAttempt],
	gate[attempt.EquipAttempt],
	gate[attempt.UnequipAttempt],
	gate[attempt.SleepAttempt],
	gate[attempt.SneezeAttempt],
}

func gate[A attempt.Attempt](m *Machine) {
	bus.Subscribe(m.conf.Bus, func(ctx *event.Context[A]) {
		if !ctx.Cancelled() && m.Blocks(ctx.Val()) {
			ctx.Cancel()
		}
	})
}

// Blocks reports if the current state of the attempting actor cancels the attempt. Attempts of actors the
// Machine doesn't track, and attempts of a kind without a rule, are never blocked.
func (m *Machine) Blocks(a attempt.Attempt) bool {
	d, ok := m.actors[a.Actor()]
	if !ok {
		return false
	}
	rule, ok := m.rules[a.Kind()]
	if !ok {
		return false
	}
	return rule(d.state, a)
}

// SetRule replaces the rule of a kind of attempt. A nil rule stops the kind from being gated.
func (m *Machine) SetRule(kind attempt.Kind, rule Rule) {
	if rule == nil {
		delete(m.rules, kind)
		return
	}
	m.rules[kind] = rule
}

// modifyStripSpeed speeds up stripping of incapacitated actors. It applies regardless of who is stripping.
func (m *Machine) modifyStripSpeed(ctx *event.Context[*attempt.BeforeStripped]) {
	ev := ctx.Val()
	if div, ok := m.conf.StripDivisors[m.State(ev.Target)]; ok && div > 0 {
		ev.Multiplier /= div
	}
}
