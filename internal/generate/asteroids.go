package generate

import (
	"galaxy-rl/internal/component"
	"galaxy-rl/internal/gamemap"
)

// ScatterAsteroids places the configured fixed asteroids, then turns each
// interior cell into an asteroid with probability cfg.AsteroidDensity. The
// border ring is left open for spawning. Returns every asteroid placed.
func ScatterAsteroids(gmap *gamemap.GameMap, cfg *Config) []component.Position {
	var placed []component.Position
	put := func(p component.Position) {
		if !gmap.InBounds(p) || cfg.reserved(p) || !gmap.IsPassable(p) {
			return
		}
		gmap.Set(p, gamemap.MakeAsteroid())
		placed = append(placed, p)
	}

	for _, p := range cfg.Asteroids {
		put(p)
	}
	if cfg.AsteroidDensity <= 0 {
		return placed
	}
	for r := 1; r < gmap.Rows-1; r++ {
		for c := 1; c < gmap.Cols-1; c++ {
			if cfg.Rand.Float64() < cfg.AsteroidDensity {
				put(component.Position{Row: r, Col: c})
			}
		}
	}
	return placed
}
