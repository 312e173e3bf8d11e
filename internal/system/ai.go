package system

import (
	"galaxy-rl/internal/component"
	"galaxy-rl/internal/ecs"
)

// Decision is the move one ship asked for on one tick.
type Decision struct {
	ID   ecs.EntityID
	Role component.Role
	From component.Position
	Dir  component.Direction
}

// ChooseAction advances the ship's tick counter and returns the move it
// requests this tick. Ships act once every ai.MoveEvery ticks and return
// NoOp in between. MoveEvery must be positive; construction enforces it.
func ChooseAction(self Body, ai *component.AI, w World, rng Rand) component.Direction {
	ai.Tick++
	if ai.Tick%ai.MoveEvery != 0 {
		return component.NoOp
	}

	deterministic := ai.Mode == component.ModeDeterministic
	switch ai.Behavior {
	case component.BehaviorPursue:
		if deterministic {
			return pursueDeterministic(self, *ai, w, rng)
		}
		return pursueStochastic(self, *ai, w, rng)
	case component.BehaviorEvade:
		if deterministic {
			return evadeDeterministic(self, *ai, w, rng)
		}
		return evadeStochastic(self, *ai, w, rng)
	}
	return patrol(rng)
}

// ProcessAI runs one decision for every AI-controlled ship in store, in
// entity-ID order, against the snapshot in view. Updated tick counters are
// written back to store; positions are left alone.
func ProcessAI(store *ecs.World, view World, rng Rand) []Decision {
	ids := store.Query(component.CAI, component.CPosition, component.CFaction)
	decisions := make([]Decision, 0, len(ids))
	for _, id := range ids {
		aiComp := store.Get(id, component.CAI).(component.AI)
		self := Body{
			ID:   id,
			Role: store.Get(id, component.CFaction).(component.Faction).Role,
			Pos:  store.Get(id, component.CPosition).(component.Position),
		}

		dir := ChooseAction(self, &aiComp, view, rng)
		store.Add(id, aiComp)

		decisions = append(decisions, Decision{ID: id, Role: self.Role, From: self.Pos, Dir: dir})
	}
	return decisions
}
