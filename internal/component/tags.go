package component

import "galaxy-rl/internal/ecs"

const (
	CTagAgent    ecs.ComponentType = 8
	CTagBlocking ecs.ComponentType = 9
)

// TagAgent marks the player-controlled entity.
type TagAgent struct{}

func (TagAgent) Type() ecs.ComponentType { return CTagAgent }

// TagBlocking marks an entity that occupies its cell (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
