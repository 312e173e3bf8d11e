package gamemap

// TileKind identifies the type of a map cell.
type TileKind uint8

const (
	TileSpace TileKind = iota
	TileAsteroid
)

// Tile holds the kind and passability of one map cell.
type Tile struct {
	Kind     TileKind
	Passable bool
}

// MakeSpace returns an empty, passable cell.
func MakeSpace() Tile {
	return Tile{Kind: TileSpace, Passable: true}
}

// MakeAsteroid returns a blocking asteroid cell.
func MakeAsteroid() Tile {
	return Tile{Kind: TileAsteroid, Passable: false}
}
