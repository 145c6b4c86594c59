package system

import (
	"errors"
	"testing"

	"belsin/internal/component"
	"belsin/internal/ecs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnOrder(t *testing.T) {
	var names []string
	for _, s := range Turn {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"visibility", "monster-ai", "map-index", "melee",
		"damage", "pickup", "drink", "drop",
	}, names)
}

func TestRunPipelineStopsAtFirstError(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	boom := errors.New("boom")
	var ran []string
	stages := []Stage{
		{"a", func(*Context) error { ran = append(ran, "a"); return nil }},
		{"b", func(*Context) error { ran = append(ran, "b"); return boom }},
		{"c", func(*Context) error { ran = append(ran, "c"); return nil }},
	}

	err := RunPipeline(ctx, stages)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "system b")
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestRunPipelineCommitsQueuedChanges(t *testing.T) {
	ctx := newTestContext(t, 3, 3)
	orc := addMonster(ctx, "Orc", 8, 8)
	stages := []Stage{{"kill", func(c *Context) error {
		c.World.QueueDestroy(orc)
		assert.True(t, c.World.Alive(orc), "visible until maintain")
		return nil
	}}}

	require.NoError(t, RunPipeline(ctx, stages))
	assert.False(t, ctx.World.Alive(orc))
	assert.Zero(t, ctx.World.Pending())
}

func TestFullMonsterTurn(t *testing.T) {
	ctx := newTestContext(t, 5, 5)
	orc := addMonster(ctx, "Orc", 6, 5)
	ctx.Phase = PhaseMonster

	require.NoError(t, RunPipeline(ctx, Turn))

	assert.Equal(t, 28, hpOf(ctx, ctx.Player))
	assert.True(t, ctx.Log.Contains("Orc hits Player, for 2 hp."))
	assert.Zero(t, ctx.Intents.Len())
	assert.Equal(t, component.Position{X: 6, Y: 5}, posOf(ctx, orc))
}

func TestPipelineSurfacesInvariant(t *testing.T) {
	ctx := newTestContext(t, 5, 5)
	ghost := ctx.World.CreateEntity() // no stats
	ctx.Intents.Attack.Set(ghost, ctx.Player)

	err := RunPipeline(ctx, Turn)
	assert.ErrorIs(t, err, ecs.ErrInvariant)
}
