package system

import "galaxy-rl/internal/component"

// escapeWeight is the probability mass given to the direct escape when it
// is open. Open perpendiculars share the rest.
const escapeWeight = 0.6

var evasionThreats = component.Roles(component.RoleHostile)

func evadeStochastic(self Body, ai component.AI, w World, rng Rand) component.Direction {
	threats := Sense(self, ai.VisionRadius, w, evasionThreats)
	if len(threats) == 0 {
		return patrol(rng)
	}

	threat := closestRandom(threats, rng)
	if threat.Pos == self.Pos {
		return patrol(rng)
	}

	escape := stepAway(self.Pos, threat.Pos, rng)
	canEscape := w.CheckValidPosition(ProposeMove(self.Pos, escape))

	// A perpendicular that closes on the threat (possible when it sits on a
	// diagonal) is treated like a blocked one. For a diagonal threat in open
	// space this leaves 0.5 on each away-step and nothing on the two steps
	// toward it, instead of a 0.4/0.4/0.1/0.1 split.
	here := self.Pos.Manhattan(threat.Pos)
	var sideways []component.Direction
	for _, d := range escape.Perpendiculars() {
		next := ProposeMove(self.Pos, d)
		if next.Manhattan(threat.Pos) < here {
			continue
		}
		if w.CheckValidPosition(next) {
			sideways = append(sideways, d)
		}
	}

	switch {
	case canEscape && len(sideways) == 0:
		return escape
	case canEscape:
		options := append([]component.Direction{escape}, sideways...)
		weights := []float64{escapeWeight}
		share := (1 - escapeWeight) / float64(len(sideways))
		for range sideways {
			weights = append(weights, share)
		}
		return sampleWeighted(options, weights, rng)
	case len(sideways) > 0:
		return sideways[rng.Intn(len(sideways))]
	}
	// Cornered: never step toward the threat on purpose, wander instead.
	return patrol(rng)
}

func evadeDeterministic(self Body, ai component.AI, w World, rng Rand) component.Direction {
	threats := Sense(self, ai.VisionRadius, w, evasionThreats)
	if len(threats) == 0 {
		return patrol(rng)
	}
	// Stepping from the threat toward self is stepping away from it.
	return dominantStep(closest(threats).Pos, self.Pos)
}

// sampleWeighted draws one option with probability proportional to its
// weight. Weights must be positive.
func sampleWeighted(options []component.Direction, weights []float64, rng Rand) component.Direction {
	var total float64
	for _, wt := range weights {
		total += wt
	}
	u := rng.Float64() * total
	for i, wt := range weights {
		if u < wt {
			return options[i]
		}
		u -= wt
	}
	return options[len(options)-1]
}
