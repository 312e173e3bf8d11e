package component

// Direction is a unit step on the 4-connected grid, or NoOp.
// Directions are values passed between systems; they are never stored in the
// world.
type Direction struct {
	DR, DC int
}

var (
	NoOp  = Direction{0, 0}
	North = Direction{-1, 0}
	South = Direction{1, 0}
	West  = Direction{0, -1}
	East  = Direction{0, 1}
)

// Cardinals lists the four movement directions in patrol order (N, S, W, E).
var Cardinals = [4]Direction{North, South, West, East}

// IsNoOp reports whether d is the "skip this tick" action.
func (d Direction) IsNoOp() bool { return d == NoOp }

// Perpendiculars returns the two directions orthogonal to d, ordered
// left-then-right relative to d. NoOp has none.
func (d Direction) Perpendiculars() []Direction {
	switch d {
	case North:
		return []Direction{West, East}
	case South:
		return []Direction{East, West}
	case West:
		return []Direction{South, North}
	case East:
		return []Direction{North, South}
	}
	return nil
}

func (d Direction) String() string {
	switch d {
	case NoOp:
		return "noop"
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "invalid"
}
