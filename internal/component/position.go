package component

import (
	"fmt"

	"galaxy-rl/internal/ecs"
)

const CPosition ecs.ComponentType = 1

// Position is a (row, column) grid cell. Nothing here checks bounds; the
// world decides which cells are occupiable.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Add returns the cell reached by taking one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
}

// Manhattan returns |Δrow| + |Δcol| between p and o.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// WithinBox reports whether o lies inside the inclusive square of half-width
// r centred on p (Chebyshev distance <= r).
func (p Position) WithinBox(o Position, r int) bool {
	return abs(p.Row-o.Row) <= r && abs(p.Col-o.Col) <= r
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
