package system

import (
	"testing"

	"belsin/internal/component"
	"belsin/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryMovePlayerMoves(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	require.NoError(t, Visibility(ctx))
	require.NoError(t, MapIndex(ctx))

	res, err := TryMovePlayer(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, MoveOK, res)
	assert.Equal(t, component.Position{X: 4, Y: 4}, posOf(ctx, ctx.Player))
	assert.True(t, fovOf(ctx, ctx.Player).Dirty)
}

func TestTryMovePlayerBlockedByWall(t *testing.T) {
	ctx := newTestContext(t, 1, 1)
	require.NoError(t, MapIndex(ctx))

	res, err := TryMovePlayer(ctx, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, MoveNone, res)
	assert.Equal(t, component.Position{X: 1, Y: 1}, posOf(ctx, ctx.Player))
}

func TestTryMovePlayerOffMapIsNoOp(t *testing.T) {
	ctx := newTestContext(t, 1, 1)
	ctx.Map.Set(0, 1, gamemap.TileFloor)
	ctx.World.Add(ctx.Player, component.Position{X: 0, Y: 1})
	require.NoError(t, MapIndex(ctx))

	res, err := TryMovePlayer(ctx, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, MoveNone, res)
}

func TestTryMovePlayerAttacksOccupant(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	orc := addMonster(ctx, "Orc", 4, 3)
	require.NoError(t, MapIndex(ctx))

	res, err := TryMovePlayer(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, MoveAttack, res)

	target, ok := ctx.Intents.Attack.Get(ctx.Player)
	require.True(t, ok)
	assert.Equal(t, orc, target)
	assert.Equal(t, component.Position{X: 3, Y: 3}, posOf(ctx, ctx.Player))
}

func TestTryMovePlayerWalksOverItems(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	addPotion(ctx, 4, 3, 8)
	require.NoError(t, MapIndex(ctx))

	res, err := TryMovePlayer(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, MoveOK, res)
}

func TestQueuePickupNothingHere(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	addPotion(ctx, 4, 3, 8)

	ok, err := QueuePickup(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "There is nothing here to pick up.", ctx.Log.Last())
	assert.Zero(t, ctx.Intents.Pickup.Len())
}

func TestSkipTurnHealsWhenAlone(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	ctx.World.Add(ctx.Player, component.CombatStats{MaxHP: 30, HP: 20, Defense: 2, Power: 5})
	require.NoError(t, Visibility(ctx))

	require.NoError(t, SkipTurn(ctx))
	assert.Equal(t, 21, hpOf(ctx, ctx.Player))
}

func TestSkipTurnHealCapsAtMax(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	require.NoError(t, Visibility(ctx))

	require.NoError(t, SkipTurn(ctx))
	assert.Equal(t, 30, hpOf(ctx, ctx.Player))
}

func TestSkipTurnNoHealWithMonsterInSight(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	ctx.World.Add(ctx.Player, component.CombatStats{MaxHP: 30, HP: 20, Defense: 2, Power: 5})
	addMonster(ctx, "Goblin", 6, 4)
	require.NoError(t, Visibility(ctx))
	require.True(t, fovOf(ctx, ctx.Player).Sees(6, 4))

	require.NoError(t, SkipTurn(ctx))
	assert.Equal(t, 20, hpOf(ctx, ctx.Player))
}

func TestCanDescend(t *testing.T) {
	ctx := newTestContext(t, 3, 3)

	ok, err := CanDescend(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, ctx.Log.Len())

	ctx.Map.Set(3, 3, gamemap.TileDownStairs)
	ok, err = CanDescend(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, ctx.Log.Len(), "success logs nothing")
}
