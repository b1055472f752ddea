package sim

import (
	"io"
	"testing"

	"github.com/BronyUraj/ss14/attempt"
	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/bus"
	"github.com/BronyUraj/ss14/hands"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/event"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() (*World, *bus.Bus) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	b := bus.New(log)
	return NewWorld(b), b
}

func TestIntersectingSkipsHeldItems(t *testing.T) {
	w, _ := newTestWorld()
	a := w.SpawnMob("urist", mgl64.Vec3{2.5, 0, 2.5}, blocking.Dynamic)
	held := w.SpawnItem("crowbar", mgl64.Vec3{2.5, 0, 2.5})
	floor := w.SpawnItem("wrench", mgl64.Vec3{2.1, 0, 2.9})
	w.SpawnItem("far", mgl64.Vec3{3.5, 0, 2.5})
	require.True(t, w.Pickup(a, held))

	tile, ok := w.Tile(a)
	require.True(t, ok)
	assert.Equal(t, cube.Pos{2, 0, 2}, tile)
	assert.ElementsMatch(t, []uuid.UUID{a, floor}, w.Intersecting(tile))
	_, ok = w.Tile(held)
	assert.False(t, ok)
}

func TestAnchorPublishesChanges(t *testing.T) {
	w, b := newTestWorld()
	a := w.SpawnMob("urist", mgl64.Vec3{}, blocking.KinematicController)
	var changes []hands.AnchorChanged
	bus.Subscribe(b, func(ctx *event.Context[hands.AnchorChanged]) {
		changes = append(changes, ctx.Val())
	})

	require.True(t, w.Anchor(a))
	require.True(t, w.Anchor(a))
	assert.Equal(t, blocking.Static, w.BodyType(a))
	w.Unanchor(a)
	w.Unanchor(a)
	assert.Equal(t, blocking.Dynamic, w.BodyType(a))
	assert.Equal(t, []hands.AnchorChanged{{Entity: a, Anchored: true}, {Entity: a, Anchored: false}}, changes)
}

func TestCancelledAttemptsChangeNothing(t *testing.T) {
	w, b := newTestWorld()
	a := w.SpawnMob("urist", mgl64.Vec3{}, blocking.Dynamic)
	item := w.SpawnItem("crowbar", mgl64.Vec3{})
	bus.Subscribe(b, func(ctx *event.Context[attempt.PickupAttempt]) { ctx.Cancel() })
	bus.Subscribe(b, func(ctx *event.Context[attempt.UpdateCanMoveAttempt]) { ctx.Cancel() })
	bus.Subscribe(b, func(ctx *event.Context[attempt.StandAttempt]) { ctx.Cancel() })

	assert.False(t, w.Pickup(a, item))
	assert.Empty(t, w.Held(a))

	w.UpdateCanMove(a)
	e, _ := w.Entity(a)
	assert.False(t, e.CanMove)

	w.Down(a)
	assert.False(t, w.TryStand(a))
	assert.True(t, w.IsDown(a))
}

func TestFixtures(t *testing.T) {
	w, _ := newTestWorld()
	a := w.SpawnMob("urist", mgl64.Vec3{}, blocking.Dynamic)
	item := w.SpawnItem("crowbar", mgl64.Vec3{})
	f := blocking.Fixture{Shape: cube.Box(0, 0, 0, 1, 1, 1), Layer: blocking.WallLayer, Hard: true}

	assert.True(t, w.CreateFixture(a, "wall", f))
	assert.False(t, w.CreateFixture(a, "wall", f))
	assert.False(t, w.CreateFixture(item, "wall", f))
	w.DestroyFixture(a, "wall")
	assert.True(t, w.CreateFixture(a, "wall", f))
}
