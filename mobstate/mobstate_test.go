package mobstate

import (
	"io"
	"testing"

	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/bus"
	"github.com/BronyUraj/ss14/sim"
	"github.com/df-mc/dragonfly/server/event"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	NopHandler
	changes []Changed
}

func (h *recordingHandler) HandleStateChanged(actor uuid.UUID, from, to State) {
	h.changes = append(h.changes, Changed{Actor: actor, Old: from, New: to})
}

type fixture struct {
	m *Machine
	w *sim.World
	b *bus.Bus
	h *recordingHandler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	b := bus.New(log)
	w := sim.NewWorld(b)
	h := &recordingHandler{}
	m := Config{Log: log, Bus: b, Handler: h, Posture: w, Appearance: w, Body: w, Mover: w}.New()
	return fixture{m: m, w: w, b: b, h: h}
}

func (f fixture) spawn(t *testing.T, allowed ...State) (uuid.UUID, *sim.Entity) {
	t.Helper()
	id := f.w.SpawnMob("urist", mgl64.Vec3{0.5, 0, 0.5}, blocking.KinematicController)
	f.m.Add(id, allowed...)
	e, ok := f.w.Entity(id)
	require.True(t, ok)
	return id, e
}

func TestPredicatesAreExclusive(t *testing.T) {
	f := newFixture(t)
	a, _ := f.spawn(t)

	tests := []struct {
		state                 State
		alive, critical, dead bool
	}{
		{Critical, false, true, false},
		{Dead, false, false, true},
		{Alive, true, false, false},
		{Dead, false, false, true},
		{Critical, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			_, err := f.m.Transition(a, tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.state, f.m.State(a))
			assert.Equal(t, tt.alive, f.m.IsAlive(a))
			assert.Equal(t, tt.critical, f.m.IsCritical(a))
			assert.Equal(t, tt.dead, f.m.IsDead(a))
			assert.False(t, f.m.IsDead(a) && f.m.IsCritical(a))
			assert.Equal(t, tt.critical || tt.dead, f.m.IsIncapacitated(a))
		})
	}
}

func TestUntrackedActor(t *testing.T) {
	f := newFixture(t)
	a := uuid.New()

	assert.Equal(t, Invalid, f.m.State(a))
	assert.False(t, f.m.HasState(a))
	assert.False(t, f.m.IsDead(a))
	assert.False(t, f.m.IsCritical(a))

	ok, err := f.m.Transition(a, Dead)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, f.h.changes)
}

func TestEnterAndLeaveDead(t *testing.T) {
	f := newFixture(t)
	a, e := f.spawn(t)

	ok, err := f.m.Transition(a, Dead)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, e.Down)
	assert.False(t, e.Body.CanCollide)
	assert.True(t, e.Body.CollisionWake)
	assert.Equal(t, "Dead", e.Tag)
	assert.False(t, e.CanMove)

	ok, err = f.m.Transition(a, Alive)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, e.Down)
	assert.True(t, e.Body.CanCollide)
	assert.False(t, e.Body.CollisionWake)
	assert.Equal(t, "Alive", e.Tag)
	assert.True(t, e.CanMove)
}

func TestEnterAndLeaveCritical(t *testing.T) {
	f := newFixture(t)
	a, e := f.spawn(t)

	_, err := f.m.Transition(a, Critical)
	require.NoError(t, err)
	assert.True(t, e.Down)
	assert.True(t, e.Body.CanCollide)
	assert.Equal(t, "Critical", e.Tag)
	assert.False(t, e.CanMove)

	// Dying from critical keeps the actor down and turns its collision off.
	_, err = f.m.Transition(a, Dead)
	require.NoError(t, err)
	assert.True(t, e.Down)
	assert.False(t, e.Body.CanCollide)

	// Being revived into critical stands it up on exit, then puts it down again on enter.
	_, err = f.m.Transition(a, Critical)
	require.NoError(t, err)
	assert.True(t, e.Down)
	assert.True(t, e.Body.CanCollide)
	assert.False(t, e.Body.CollisionWake)
}

func TestDeadWithoutBody(t *testing.T) {
	f := newFixture(t)
	a := f.w.Add(&sim.Entity{Name: "ghost"})
	f.m.Add(a)

	assert.NotPanics(t, func() {
		_, err := f.m.Transition(a, Dead)
		require.NoError(t, err)
		_, err = f.m.Transition(a, Alive)
		require.NoError(t, err)
	})
}

func TestTransitionToSameStateIsNoop(t *testing.T) {
	f := newFixture(t)
	a, e := f.spawn(t)
	e.Tag = "untouched"

	ok, err := f.m.Transition(a, Alive)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "untouched", e.Tag)
	assert.Empty(t, f.h.changes)
}

func TestTransitionNotifies(t *testing.T) {
	f := newFixture(t)
	a, _ := f.spawn(t)
	var published []Changed
	bus.Subscribe(f.b, func(ctx *event.Context[Changed]) {
		published = append(published, ctx.Val())
	})

	_, err := f.m.Transition(a, Critical)
	require.NoError(t, err)
	_, err = f.m.Transition(a, Dead)
	require.NoError(t, err)

	want := []Changed{{Actor: a, Old: Alive, New: Critical}, {Actor: a, Old: Critical, New: Dead}}
	assert.Equal(t, want, published)
	assert.Equal(t, want, f.h.changes)
}

func TestTransitionToDisallowedState(t *testing.T) {
	f := newFixture(t)
	a, e := f.spawn(t, Alive, Dead)

	ok, err := f.m.Transition(a, Critical)
	assert.ErrorIs(t, err, ErrStateNotAllowed)
	assert.False(t, ok)
	assert.Equal(t, Alive, f.m.State(a))
	assert.False(t, e.Down)
}

func TestInvalidStatesPanic(t *testing.T) {
	f := newFixture(t)
	a, _ := f.spawn(t)

	assert.Panics(t, func() { _, _ = f.m.Transition(a, Invalid) })
	assert.Panics(t, func() { _, _ = f.m.Transition(a, State(42)) })
	assert.Panics(t, func() { f.m.OnEnter(a, Invalid) })
	assert.Panics(t, func() { f.m.OnExit(a, State(42)) })
	assert.Panics(t, func() { f.m.Add(uuid.New(), Alive, Invalid) })
	assert.Equal(t, Alive, f.m.State(a))
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	a, _ := f.spawn(t)
	require.True(t, f.m.HasState(a))

	f.m.Remove(a)
	assert.False(t, f.m.HasState(a))
}

func TestConfigNewPanicsWithoutCollaborators(t *testing.T) {
	assert.Panics(t, func() { Config{}.New() })
}
