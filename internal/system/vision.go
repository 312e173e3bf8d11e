package system

import (
	"galaxy-rl/internal/component"
	"galaxy-rl/internal/ecs"
)

// SightingKind distinguishes a real roster ship from the agent stand-in.
type SightingKind uint8

const (
	SightShip        SightingKind = iota
	SightPlayerProxy              // the agent; ID is ecs.NilEntity
)

// Sighting is one thing a ship saw this tick. Dist is the Manhattan distance.
type Sighting struct {
	Kind SightingKind
	ID   ecs.EntityID
	Role component.Role
	Pos  component.Position
	Dist int
}

// Sense returns every roster ship other than self inside the square of
// half-width radius around self, optionally restricted to the roles in
// filter. An empty filter accepts every ship.
//
// When filter matches the agent's role, the agent's position gets the same
// box test and, if inside, one SightPlayerProxy sighting is appended.
func Sense(self Body, radius int, w World, filter component.RoleSet) []Sighting {
	var seen []Sighting
	for _, b := range w.Roster() {
		if b.ID == self.ID {
			continue
		}
		if !filter.Empty() && !filter.Matches(b.Role) {
			continue
		}
		if !self.Pos.WithinBox(b.Pos, radius) {
			continue
		}
		seen = append(seen, Sighting{
			Kind: SightShip,
			ID:   b.ID,
			Role: b.Role,
			Pos:  b.Pos,
			Dist: self.Pos.Manhattan(b.Pos),
		})
	}

	if filter.Empty() || !filter.Matches(w.AgentRole()) {
		return seen
	}
	agentPos := w.AgentPos()
	if self.Pos.WithinBox(agentPos, radius) {
		seen = append(seen, Sighting{
			Kind: SightPlayerProxy,
			ID:   ecs.NilEntity,
			Role: w.AgentRole(),
			Pos:  agentPos,
			Dist: self.Pos.Manhattan(agentPos),
		})
	}
	return seen
}

// closest returns the first sighting at the minimum distance.
func closest(seen []Sighting) Sighting {
	best := seen[0]
	for _, s := range seen[1:] {
		if s.Dist < best.Dist {
			best = s
		}
	}
	return best
}

// closestRandom picks uniformly among the sightings tied at the minimum
// distance.
func closestRandom(seen []Sighting, rng Rand) Sighting {
	minDist := seen[0].Dist
	for _, s := range seen[1:] {
		minDist = min(minDist, s.Dist)
	}
	var tied []Sighting
	for _, s := range seen {
		if s.Dist == minDist {
			tied = append(tied, s)
		}
	}
	return tied[rng.Intn(len(tied))]
}
