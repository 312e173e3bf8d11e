package factory

import (
	"errors"
	"fmt"

	"galaxy-rl/internal/component"
	"galaxy-rl/internal/ecs"
	"galaxy-rl/internal/generate"
)

var (
	// ErrInvalidCadence rejects a ship that would act every zero (or fewer) ticks.
	ErrInvalidCadence = errors.New("move every must be at least 1 tick")
	// ErrInvalidVision rejects a negative vision radius.
	ErrInvalidVision = errors.New("vision radius must not be negative")
)

// NewAgent creates the player-controlled entity at pos. The agent has no AI
// component and is never part of the ship roster.
func NewAgent(w *ecs.World, pos component.Position) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{Row: pos.Row, Col: pos.Col})
	w.Add(id, component.Faction{Role: component.RoleAgent})
	w.Add(id, component.TagAgent{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewShip creates an AI-controlled ship from a spawn entry. Nothing is added
// to the world when the entry is rejected.
func NewShip(w *ecs.World, entry generate.ShipSpawnEntry, pos component.Position) (ecs.EntityID, error) {
	if entry.MoveEvery < 1 {
		return ecs.NilEntity, fmt.Errorf("%v ship at %v: move every %d: %w", entry.Role, pos, entry.MoveEvery, ErrInvalidCadence)
	}
	if entry.VisionRadius < 0 {
		return ecs.NilEntity, fmt.Errorf("%v ship at %v: radius %d: %w", entry.Role, pos, entry.VisionRadius, ErrInvalidVision)
	}

	id := w.CreateEntity()
	w.Add(id, pos)
	w.Add(id, component.Faction{Role: entry.Role})
	w.Add(id, component.AI{
		Behavior:     entry.Behavior,
		Mode:         entry.Mode,
		VisionRadius: entry.VisionRadius,
		MoveEvery:    entry.MoveEvery,
	})
	w.Add(id, component.TagBlocking{})
	return id, nil
}

// NewHostile creates a separatist ship that pursues the agent and neutrals.
func NewHostile(w *ecs.World, pos component.Position, visionRadius, moveEvery int) (ecs.EntityID, error) {
	entry := generate.DefaultHostile
	entry.VisionRadius, entry.MoveEvery = visionRadius, moveEvery
	return NewShip(w, entry, pos)
}

// NewNeutral creates a republic ship that evades hostiles.
func NewNeutral(w *ecs.World, pos component.Position, visionRadius, moveEvery int) (ecs.EntityID, error) {
	entry := generate.DefaultNeutral
	entry.VisionRadius, entry.MoveEvery = visionRadius, moveEvery
	return NewShip(w, entry, pos)
}
