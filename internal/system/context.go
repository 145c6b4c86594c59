// Package system holds the per-turn systems and the pipeline that runs them.
package system

import (
	"fmt"
	"time"

	"belsin/internal/component"
	"belsin/internal/ecs"
	"belsin/internal/gamelog"
	"belsin/internal/gamemap"
	"belsin/internal/intent"

	"github.com/sirupsen/logrus"
)

// Phase tells systems whose turn the pipeline is running for.
type Phase uint8

const (
	PhasePreRun Phase = iota
	PhasePlayer
	PhaseMonster
)

func (p Phase) String() string {
	switch p {
	case PhasePreRun:
		return "pre-run"
	case PhasePlayer:
		return "player"
	case PhaseMonster:
		return "monster"
	}
	return "unknown"
}

// Context is everything a system may read or write during a turn.
type Context struct {
	World   *ecs.World
	Map     *gamemap.Map
	Log     *gamelog.Log
	Intents *intent.Queues
	Player  ecs.EntityID
	Phase   Phase
	Logger  *logrus.Entry
}

// Stage is one named step of the turn pipeline.
type Stage struct {
	Name string
	Run  func(*Context) error
}

// Turn is the fixed system order for every pipeline run.
var Turn = []Stage{
	{"visibility", Visibility},
	{"monster-ai", MonsterAI},
	{"map-index", MapIndex},
	{"melee", MeleeCombat},
	{"damage", ApplyDamage},
	{"pickup", Pickup},
	{"drink", DrinkOrEquip},
	{"drop", Drop},
}

// RunPipeline runs stages in order and then commits queued structural
// changes. The first failing stage aborts the run.
func RunPipeline(ctx *Context, stages []Stage) error {
	log := ctx.Logger.WithField("phase", ctx.Phase.String())
	for _, s := range stages {
		start := time.Now()
		if err := s.Run(ctx); err != nil {
			log.WithError(err).WithField("system", s.Name).Error("system failed")
			return fmt.Errorf("system %s: %w", s.Name, err)
		}
		log.WithFields(logrus.Fields{
			"system":   s.Name,
			"duration": time.Since(start),
		}).Trace("system done")
	}
	if err := ctx.World.Maintain(); err != nil {
		return fmt.Errorf("maintain: %w", err)
	}
	return nil
}

// invariant builds an error for a broken world invariant.
func invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ecs.ErrInvariant, fmt.Sprintf(format, args...))
}

// PlayerPos returns the player's position.
func (c *Context) PlayerPos() (component.Position, error) {
	pc := c.World.Get(c.Player, component.CPosition)
	if pc == nil {
		return component.Position{}, invariant("player %v has no position", c.Player)
	}
	return pc.(component.Position), nil
}

// nameOf returns id's display name. Anything mentioned in the game log must
// carry a Name.
func (c *Context) nameOf(id ecs.EntityID) (string, error) {
	nc := c.World.Get(id, component.CName)
	if nc == nil {
		return "", invariant("entity %v has no name", id)
	}
	return nc.(component.Name).Name, nil
}

func (c *Context) stats(id ecs.EntityID) (component.CombatStats, bool) {
	sc := c.World.Get(id, component.CCombatStats)
	if sc == nil {
		return component.CombatStats{}, false
	}
	return sc.(component.CombatStats), true
}
