package component

import "belsin/internal/ecs"

const (
	CPlayer     ecs.ComponentType = 7
	CMonster    ecs.ComponentType = 8
	CBlocksTile ecs.ComponentType = 9
)

// Player marks the player-controlled entity.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// Monster marks an AI-driven hostile.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }

// BlocksTile marks an entity that occupies its tile (blocks movement).
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }
