package component

import "galaxy-rl/internal/ecs"

const CAI ecs.ComponentType = 5

// AIBehavior selects the decision policy a ship runs each tick.
type AIBehavior uint8

const (
	BehaviorPatrol AIBehavior = iota // random cardinal step
	BehaviorPursue                   // chase the agent and neutral ships
	BehaviorEvade                    // run from hostiles
)

func (b AIBehavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "patrol"
	case BehaviorPursue:
		return "pursue"
	case BehaviorEvade:
		return "evade"
	}
	return "unknown"
}

// AIMode picks between the stochastic and the deterministic variant of a
// behavior.
type AIMode uint8

const (
	ModeStochastic AIMode = iota
	ModeDeterministic
)

func (m AIMode) String() string {
	if m == ModeDeterministic {
		return "deterministic"
	}
	return "stochastic"
}

// AI is the decision state of one ship. Tick is owned by the ship and only
// ever incremented by its own decision call.
type AI struct {
	Behavior     AIBehavior
	Mode         AIMode
	VisionRadius int // Chebyshev radius, >= 0
	MoveEvery    int // act once every MoveEvery ticks, >= 1
	Tick         int
}

func (AI) Type() ecs.ComponentType { return CAI }
