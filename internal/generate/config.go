package generate

import (
	"math/rand"

	"galaxy-rl/internal/component"
)

// ShipSpawnEntry describes how every ship of one faction is built.
type ShipSpawnEntry struct {
	Role         component.Role
	Behavior     component.AIBehavior
	Mode         component.AIMode
	VisionRadius int
	MoveEvery    int
}

// Config drives placement for one episode.
type Config struct {
	Neutral      ShipSpawnEntry
	NeutralCount int
	Hostile      ShipSpawnEntry
	HostileCount int

	// AsteroidDensity is the chance each interior cell becomes an asteroid.
	AsteroidDensity float64
	// Asteroids are placed unconditionally (out-of-bounds cells are ignored).
	Asteroids []component.Position
	// Reserved cells never receive an asteroid or a ship (the agent start).
	Reserved []component.Position

	Rand *rand.Rand
}

// DefaultNeutral and DefaultHostile match the stock scenario: republic ships
// see further, separatists are half-blind, both act every other tick.
var (
	DefaultNeutral = ShipSpawnEntry{
		Role:         component.RoleNeutral,
		Behavior:     component.BehaviorEvade,
		VisionRadius: 5,
		MoveEvery:    2,
	}
	DefaultHostile = ShipSpawnEntry{
		Role:         component.RoleHostile,
		Behavior:     component.BehaviorPursue,
		VisionRadius: 3,
		MoveEvery:    2,
	}
)

func (c *Config) reserved(p component.Position) bool {
	for _, r := range c.Reserved {
		if r == p {
			return true
		}
	}
	return false
}
