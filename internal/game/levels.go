package game

import (
	"fmt"

	"belsin/internal/component"
	"belsin/internal/ecs"
	"belsin/internal/factory"
	"belsin/internal/gamelog"
	"belsin/internal/gamemap"
	"belsin/internal/generate"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// buildLevel generates and populates the map for depth. The first room is
// left empty for the player.
func (g *Game) buildLevel(depth int) (*gamemap.Map, error) {
	m := generate.Generate(generate.FromConfig(g.cfg.Map, depth, g.rng))
	if err := factory.PopulateLevel(g.world, g.cfg, m, g.rng); err != nil {
		return nil, fmt.Errorf("populate depth %d: %w", depth, err)
	}
	g.logger.WithFields(logrus.Fields{
		"depth":    depth,
		"rooms":    len(m.Rooms),
		"entities": g.world.Count(),
	}).Debug("level built")
	return m, nil
}

// startPosition is where the player arrives on m.
func startPosition(m *gamemap.Map) (int, int) {
	if len(m.Rooms) == 0 {
		return m.Width / 2, m.Height / 2
	}
	return m.Rooms[0].Center()
}

// newWorld starts a fresh run at depth 1.
func (g *Game) newWorld() error {
	g.world = ecs.NewWorld()
	g.intents.Clear()
	g.log = gamelog.New("Welcome to Belsin!")
	g.turns = 0

	m, err := g.buildLevel(1)
	if err != nil {
		return err
	}
	g.gmap = m
	x, y := startPosition(m)
	g.player = factory.NewPlayer(g.world, g.cfg.Player, x, y)
	return nil
}

// nextLevel moves the player one level down. Only the player and the items
// in the player's backpack survive the move.
func (g *Game) nextLevel() error {
	keep := mapset.New[ecs.EntityID]()
	keep.Put(g.player)
	for _, id := range g.world.Query(component.CInBackpack) {
		if g.world.Get(id, component.CInBackpack).(component.InBackpack).Owner == g.player {
			keep.Put(id)
		}
	}
	for _, id := range g.world.Entities() {
		if !keep.Has(id) {
			g.world.QueueDestroy(id)
		}
	}
	if err := g.world.Maintain(); err != nil {
		return fmt.Errorf("clear level: %w", err)
	}
	g.intents.Clear()

	m, err := g.buildLevel(g.gmap.Depth + 1)
	if err != nil {
		return err
	}
	g.gmap = m

	x, y := startPosition(m)
	g.world.Add(g.player, component.Position{X: x, Y: y})
	fc := g.world.Get(g.player, component.CFov)
	if fc == nil {
		return fmt.Errorf("%w: player %v has no field of view", ecs.ErrInvariant, g.player)
	}
	fov := fc.(component.Fov)
	fov.Dirty = true
	g.world.Add(g.player, fov)

	g.log.Add("You descend.")
	return nil
}
