package system

import "galaxy-rl/internal/component"

// ProposeMove returns the cell one step from pos in direction d. Validity is
// the caller's problem: ask World.CheckValidPosition.
func ProposeMove(pos component.Position, d component.Direction) component.Position {
	return pos.Add(d)
}

// patrol picks a cardinal direction uniformly at random.
func patrol(rng Rand) component.Direction {
	return component.Cardinals[rng.Intn(len(component.Cardinals))]
}

// stepToward returns the single-axis step from pos toward goal. A diagonal
// offset is collapsed onto one axis by a fair coin; a zero offset yields a
// random cardinal direction.
func stepToward(pos, goal component.Position, rng Rand) component.Direction {
	return collapse(sign(goal.Row-pos.Row), sign(goal.Col-pos.Col), rng)
}

// stepAway is stepToward with the signs negated.
func stepAway(pos, threat component.Position, rng Rand) component.Direction {
	return collapse(-sign(threat.Row-pos.Row), -sign(threat.Col-pos.Col), rng)
}

func collapse(dr, dc int, rng Rand) component.Direction {
	switch {
	case dr != 0 && dc != 0:
		if rng.Float64() < 0.5 {
			return component.Direction{DR: dr}
		}
		return component.Direction{DC: dc}
	case dr == 0 && dc == 0:
		return patrol(rng)
	}
	return component.Direction{DR: dr, DC: dc}
}

// dominantStep is the coin-free step from pos toward goal: the axis with the
// larger offset wins, rows on a tie. A zero offset yields North.
func dominantStep(pos, goal component.Position) component.Direction {
	dRow, dCol := goal.Row-pos.Row, goal.Col-pos.Col
	switch {
	case dRow == 0 && dCol == 0:
		return component.North
	case abs(dRow) >= abs(dCol):
		return component.Direction{DR: sign(dRow)}
	}
	return component.Direction{DC: sign(dCol)}
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
