package system

import (
	"testing"

	"belsin/internal/component"
	"belsin/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFOVOriginAndRadius(t *testing.T) {
	m := roomMap(30, 30)
	seen := ComputeFOV(m, 15, 15, 5)

	assert.True(t, seen.Has(gamemap.Point{X: 15, Y: 15}), "origin is always visible")
	// 3² < 5², lit. 5² is not < 5², dark.
	assert.True(t, seen.Has(gamemap.Point{X: 18, Y: 15}))
	assert.False(t, seen.Has(gamemap.Point{X: 20, Y: 15}))
}

func TestComputeFOVWallBlocksSight(t *testing.T) {
	m := roomMap(20, 9)
	for y := 1; y < 8; y++ {
		m.Set(8, y, gamemap.TileWall)
	}
	seen := ComputeFOV(m, 4, 4, 10)

	assert.True(t, seen.Has(gamemap.Point{X: 8, Y: 4}), "the wall itself is seen")
	assert.False(t, seen.Has(gamemap.Point{X: 10, Y: 4}), "tiles behind the wall are hidden")
}

func TestComputeFOVClipsToBounds(t *testing.T) {
	m := roomMap(6, 6)
	seen := ComputeFOV(m, 1, 1, 10)
	seen.Each(func(p gamemap.Point) {
		assert.True(t, m.InBounds(p.X, p.Y), "out-of-bounds point %v", p)
	})
}

func TestVisibilityOnlyRecomputesWhenDirty(t *testing.T) {
	ctx := newTestContext(t, 5, 5)
	require.NoError(t, Visibility(ctx))

	first := fovOf(ctx, ctx.Player)
	assert.False(t, first.Dirty)
	size := first.Visible.Size()
	visible := append([]bool(nil), ctx.Map.Visible...)

	require.NoError(t, Visibility(ctx))
	second := fovOf(ctx, ctx.Player)
	assert.Equal(t, size, second.Visible.Size())
	assert.Equal(t, visible, ctx.Map.Visible)
}

func TestVisibilityRevealIsMonotonic(t *testing.T) {
	ctx := newTestContext(t, 2, 5)
	require.NoError(t, Visibility(ctx))
	before := append([]bool(nil), ctx.Map.Revealed...)

	ctx.World.Add(ctx.Player, component.Position{X: 17, Y: 5})
	fov := fovOf(ctx, ctx.Player)
	fov.Dirty = true
	ctx.World.Add(ctx.Player, fov)
	require.NoError(t, Visibility(ctx))

	for i, was := range before {
		if was {
			assert.True(t, ctx.Map.Revealed[i], "tile %d lost its revealed flag", i)
		}
	}
	for i := range ctx.Map.Visible {
		if ctx.Map.Visible[i] {
			assert.True(t, ctx.Map.Revealed[i], "visible tile %d must be revealed", i)
		}
	}
}

func TestVisibilityResetsStaleVisibleFlags(t *testing.T) {
	ctx := newTestContext(t, 2, 2)
	far := ctx.Map.Idx(18, 10)
	ctx.Map.Visible[far] = true

	require.NoError(t, Visibility(ctx))
	assert.False(t, ctx.Map.Visible[far])
}

func TestVisibilityMonsterDoesNotTouchMap(t *testing.T) {
	ctx := newTestContext(t, 2, 2)
	p := fovOf(ctx, ctx.Player)
	p.Dirty = false
	ctx.World.Add(ctx.Player, p)
	orc := addMonster(ctx, "Orc", 15, 8)

	require.NoError(t, Visibility(ctx))

	assert.Positive(t, fovOf(ctx, orc).Visible.Size())
	for i := range ctx.Map.Revealed {
		assert.False(t, ctx.Map.Revealed[i], "monster sight revealed tile %d", i)
	}
}
