package system

import (
	"galaxy-rl/internal/component"
	"galaxy-rl/internal/ecs"
)

// Body is one roster entry as the decision engine sees it.
type Body struct {
	ID   ecs.EntityID
	Role component.Role
	Pos  component.Position
}

// World is the read-only view a tick's decisions are made against.
//
// Roster must return the positions as they were at the start of the sweep;
// the driver applies moves only after every ship has decided.
type World interface {
	// Roster lists every non-player ship.
	Roster() []Body
	// AgentRole is the role tag of the player-controlled agent.
	AgentRole() component.Role
	// AgentPos is the agent's current cell.
	AgentPos() component.Position
	// CheckValidPosition reports whether a ship may move into p.
	CheckValidPosition(p component.Position) bool
}

// Rand is the randomness source policies draw from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
