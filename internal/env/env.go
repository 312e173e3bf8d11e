// Package env is the grid world the ships live in. It owns positions,
// answers the validity predicate, and runs the per-tick sweep: every ship
// decides against the same snapshot, then moves are applied in ID order.
package env

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"galaxy-rl/internal/component"
	"galaxy-rl/internal/config"
	"galaxy-rl/internal/ecs"
	"galaxy-rl/internal/factory"
	"galaxy-rl/internal/gamemap"
	"galaxy-rl/internal/generate"
	"galaxy-rl/internal/system"
)

// Recorder receives one StepResult per step. *trace.Writer satisfies it.
type Recorder interface {
	Write(v any) error
}

// Env is one running episode.
type Env struct {
	cfg config.Config
	rng *rand.Rand
	log *logrus.Logger
	rec Recorder

	world   *ecs.World
	gmap    *gamemap.GameMap
	agentID ecs.EntityID

	// snapshot of the current sweep
	roster   []system.Body
	agentPos component.Position

	episode int
	tick    int
	summary Summary
}

// New builds an environment and resets it into its first episode.
func New(cfg config.Config, rng *rand.Rand, log *logrus.Logger) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Env{cfg: cfg, rng: rng, log: log}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetRecorder attaches (or with nil, detaches) a per-tick recorder.
func (e *Env) SetRecorder(r Recorder) { e.rec = r }

// Reset starts a new episode: fresh map, agent back at its start cell, new
// ships along the border.
func (e *Env) Reset() error {
	start := e.cfg.Agent.Start.Position()
	gcfg := &generate.Config{
		Neutral:         spawnEntry(generate.DefaultNeutral, e.cfg.Neutral),
		NeutralCount:    e.cfg.Neutral.Count,
		Hostile:         spawnEntry(generate.DefaultHostile, e.cfg.Hostile),
		HostileCount:    e.cfg.Hostile.Count,
		AsteroidDensity: e.cfg.Asteroids.Density,
		Reserved:        []component.Position{start},
		Rand:            e.rng,
	}
	for _, c := range e.cfg.Asteroids.Cells {
		gcfg.Asteroids = append(gcfg.Asteroids, c.Position())
	}

	gmap := gamemap.New(e.cfg.Grid.Rows, e.cfg.Grid.Cols)
	asteroids := generate.ScatterAsteroids(gmap, gcfg)

	world := ecs.NewWorld()
	agentID := factory.NewAgent(world, start)
	spawns, err := generate.SpawnBorder(gmap, gcfg)
	if err != nil {
		return fmt.Errorf("reset episode %d: %w", e.episode+1, err)
	}
	for _, s := range spawns {
		if _, err := factory.NewShip(world, s.Entry, s.Pos); err != nil {
			return fmt.Errorf("reset episode %d: %w", e.episode+1, err)
		}
	}

	e.world, e.gmap, e.agentID = world, gmap, agentID
	e.episode++
	e.tick = 0
	e.summary = Summary{Episode: e.episode}
	e.snapshot()

	e.log.WithFields(logrus.Fields{
		"episode":   e.episode,
		"grid":      fmt.Sprintf("%dx%d", gmap.Rows, gmap.Cols),
		"ships":     len(spawns),
		"asteroids": len(asteroids),
	}).Info("episode reset")
	return nil
}

func spawnEntry(base generate.ShipSpawnEntry, f config.Faction) generate.ShipSpawnEntry {
	base.VisionRadius = f.VisionRadius
	base.MoveEvery = f.MoveEvery
	base.Mode = f.Mode()
	return base
}

// Roster lists every ship as of the start of the current sweep.
func (e *Env) Roster() []system.Body { return e.roster }

// AgentRole is always component.RoleAgent.
func (e *Env) AgentRole() component.Role { return component.RoleAgent }

// AgentPos is the agent's cell as of the start of the current sweep.
func (e *Env) AgentPos() component.Position { return e.agentPos }

// CheckValidPosition reports whether p is on the map, passable, and not
// occupied by the agent or any ship right now.
func (e *Env) CheckValidPosition(p component.Position) bool {
	if !e.gmap.IsPassable(p) {
		return false
	}
	for _, id := range e.world.Query(component.CTagBlocking, component.CPosition) {
		if e.livePos(id) == p {
			return false
		}
	}
	return true
}

// snapshot freezes ship and agent positions for the coming sweep.
func (e *Env) snapshot() {
	ids := e.world.Query(component.CAI, component.CFaction, component.CPosition)
	roster := make([]system.Body, 0, len(ids))
	for _, id := range ids {
		faction, _ := ecs.Lookup[component.Faction](e.world, id, component.CFaction)
		pos, _ := ecs.Lookup[component.Position](e.world, id, component.CPosition)
		roster = append(roster, system.Body{ID: id, Role: faction.Role, Pos: pos})
	}
	e.roster = roster
	e.agentPos = e.livePos(e.agentID)
}

func (e *Env) livePos(id ecs.EntityID) component.Position {
	pos, _ := ecs.Lookup[component.Position](e.world, id, component.CPosition)
	return pos
}

// Map exposes the episode's tile grid.
func (e *Env) Map() *gamemap.GameMap { return e.gmap }

// Tick is the number of steps taken this episode.
func (e *Env) Tick() int { return e.tick }

// Episode is the 1-based episode counter.
func (e *Env) Episode() int { return e.episode }

// Done reports whether the episode reached its tick limit.
func (e *Env) Done() bool { return e.tick >= e.cfg.Episode.MaxTicks }

// Summary returns the counters gathered so far this episode.
func (e *Env) Summary() Summary {
	s := e.summary
	s.Ticks = e.tick
	return s
}
