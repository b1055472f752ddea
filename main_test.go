package main

import (
	"io"
	"testing"

	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/mobstate"
	"github.com/BronyUraj/ss14/tuning"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv, err := newServer(log, tuning.Default())
	require.NoError(t, err)
	return srv
}

func TestScenario(t *testing.T) {
	require.NoError(t, newTestServer(t).scenario())
}

func TestShieldBearerDies(t *testing.T) {
	s := newTestServer(t)
	pos := mgl64.Vec3{4.5, 0, 7.5}
	a := s.world.SpawnMob("urist", pos, blocking.Dynamic)
	s.mobs.Add(a)
	shield := s.spawnShield(pos)
	ent, _ := s.world.Entity(a)

	require.True(t, s.world.Pickup(a, shield))
	u, ok := s.blocking.User(a)
	require.True(t, ok)
	assert.Equal(t, blocking.Dynamic, u.OriginalBodyType)

	actions := s.world.ItemActions(a, shield)
	require.Len(t, actions, 1)
	require.True(t, s.world.Toggle(a, actions[0]))
	it, _ := s.blocking.Item(shield)
	require.True(t, it.Blocking())
	assert.True(t, ent.Anchored)
	assert.Contains(t, ent.Body.Fixtures, blocking.FixtureID)

	_, err := s.mobs.Transition(a, mobstate.Dead)
	require.NoError(t, err)
	assert.True(t, ent.Down)
	assert.False(t, ent.Body.CanCollide)
	assert.Contains(t, ent.Body.Fixtures, blocking.FixtureID)
	assert.True(t, it.Blocking())

	// Dead actors can't drop things themselves, and can't lower the shield either.
	assert.False(t, s.world.Drop(a, shield))
	require.True(t, s.world.ForceDrop(a, shield))
	assert.False(t, it.Blocking())
	assert.False(t, ent.Anchored)
	assert.Equal(t, blocking.Dynamic, ent.Body.Type)
	assert.Empty(t, ent.Body.Fixtures)
	_, ok = s.blocking.User(a)
	assert.False(t, ok)
	_, ok = it.User()
	assert.False(t, ok)
}

func TestLooterStripsCorpse(t *testing.T) {
	s := newTestServer(t)
	a := s.world.SpawnMob("urist", mgl64.Vec3{}, blocking.KinematicController)
	looter := s.world.SpawnMob("looter", mgl64.Vec3{1, 0, 0}, blocking.KinematicController)
	s.mobs.Add(a)
	s.mobs.Add(looter)
	shield := s.spawnShield(mgl64.Vec3{})
	require.True(t, s.world.Pickup(a, shield))

	_, err := s.mobs.Transition(a, mobstate.Critical)
	require.NoError(t, err)
	assert.False(t, s.world.Unequip(a, a, shield))
	assert.InDelta(t, 2.5, s.world.Strip(looter, a, 5), 1e-9)

	_, err = s.mobs.Transition(a, mobstate.Dead)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3, s.world.Strip(looter, a, 5), 1e-9)
	require.True(t, s.world.Unequip(looter, a, shield))
	_, ok := s.blocking.User(a)
	assert.False(t, ok)
}
