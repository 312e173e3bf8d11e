package system

import "galaxy-rl/internal/component"

// pursueChance is the probability a hostile steps toward a target rather
// than deliberately stepping in one of the other three directions.
const pursueChance = 0.85

var pursuitTargets = component.Roles(component.RoleAgent, component.RoleNeutral)

func pursueStochastic(self Body, ai component.AI, w World, rng Rand) component.Direction {
	targets := Sense(self, ai.VisionRadius, w, pursuitTargets)
	if len(targets) == 0 {
		return patrol(rng)
	}

	if rng.Float64() <= pursueChance {
		target := targets[rng.Intn(len(targets))]
		return stepToward(self.Pos, target.Pos, rng)
	}

	// The off-course step is measured against a freshly drawn target, not
	// the one above.
	intended := stepToward(self.Pos, targets[rng.Intn(len(targets))].Pos, rng)
	others := make([]component.Direction, 0, len(component.Cardinals)-1)
	for _, d := range component.Cardinals {
		if d != intended {
			others = append(others, d)
		}
	}
	return others[rng.Intn(len(others))]
}

func pursueDeterministic(self Body, ai component.AI, w World, rng Rand) component.Direction {
	targets := Sense(self, ai.VisionRadius, w, pursuitTargets)
	if len(targets) == 0 {
		return patrol(rng)
	}
	return dominantStep(self.Pos, closest(targets).Pos)
}
