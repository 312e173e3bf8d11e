package generate

import (
	"errors"
	"fmt"

	"galaxy-rl/internal/component"
	"galaxy-rl/internal/gamemap"
)

// ErrNoBorderRoom is returned when the border ring has fewer free cells than
// ships to place.
var ErrNoBorderRoom = errors.New("not enough free border cells")

// ShipSpawn describes one ship to create.
type ShipSpawn struct {
	Entry ShipSpawnEntry
	Pos   component.Position
}

// SpawnBorder picks a distinct, passable border cell for every configured
// ship, sampling without replacement. Neutral ships are placed first.
func SpawnBorder(gmap *gamemap.GameMap, cfg *Config) ([]ShipSpawn, error) {
	var free []component.Position
	for _, p := range gmap.BorderCells() {
		if gmap.IsPassable(p) && !cfg.reserved(p) {
			free = append(free, p)
		}
	}
	want := cfg.NeutralCount + cfg.HostileCount
	if want > len(free) {
		return nil, fmt.Errorf("spawn %d ships on %d cells: %w", want, len(free), ErrNoBorderRoom)
	}

	cfg.Rand.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	pop := func() component.Position {
		p := free[len(free)-1]
		free = free[:len(free)-1]
		return p
	}

	spawns := make([]ShipSpawn, 0, want)
	for range cfg.NeutralCount {
		spawns = append(spawns, ShipSpawn{Entry: cfg.Neutral, Pos: pop()})
	}
	for range cfg.HostileCount {
		spawns = append(spawns, ShipSpawn{Entry: cfg.Hostile, Pos: pop()})
	}
	return spawns, nil
}
