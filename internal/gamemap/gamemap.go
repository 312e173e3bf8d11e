package gamemap

import "galaxy-rl/internal/component"

// GameMap holds the tile grid for one episode. Tiles are indexed [row][col].
type GameMap struct {
	Rows, Cols int
	Tiles      [][]Tile
}

// New creates a GameMap filled with open space.
func New(rows, cols int) *GameMap {
	tiles := make([][]Tile, rows)
	for r := range tiles {
		tiles[r] = make([]Tile, cols)
		for c := range tiles[r] {
			tiles[r][c] = MakeSpace()
		}
	}
	return &GameMap{Rows: rows, Cols: cols, Tiles: tiles}
}

// InBounds reports whether p is within the map boundaries.
func (m *GameMap) InBounds(p component.Position) bool {
	return p.Row >= 0 && p.Row < m.Rows && p.Col >= 0 && p.Col < m.Cols
}

// Set replaces the tile at p.
func (m *GameMap) Set(p component.Position, t Tile) {
	m.Tiles[p.Row][p.Col] = t
}

// IsPassable returns true when p is in bounds and passable.
func (m *GameMap) IsPassable(p component.Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.Tiles[p.Row][p.Col].Passable
}

// OnBorder reports whether p lies on the outermost ring of the map.
func (m *GameMap) OnBorder(p component.Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return p.Row == 0 || p.Row == m.Rows-1 || p.Col == 0 || p.Col == m.Cols-1
}

// BorderCells lists every cell of the outermost ring exactly once: top row,
// bottom row, then the left and right columns without their corners.
func (m *GameMap) BorderCells() []component.Position {
	if m.Rows <= 0 || m.Cols <= 0 {
		return nil
	}
	var cells []component.Position
	for c := 0; c < m.Cols; c++ {
		cells = append(cells, component.Position{Row: 0, Col: c})
	}
	if m.Rows > 1 {
		for c := 0; c < m.Cols; c++ {
			cells = append(cells, component.Position{Row: m.Rows - 1, Col: c})
		}
	}
	for r := 1; r < m.Rows-1; r++ {
		cells = append(cells, component.Position{Row: r, Col: 0})
		if m.Cols > 1 {
			cells = append(cells, component.Position{Row: r, Col: m.Cols - 1})
		}
	}
	return cells
}
