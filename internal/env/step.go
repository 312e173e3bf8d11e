package env

import (
	"github.com/sirupsen/logrus"

	"galaxy-rl/internal/component"
	"galaxy-rl/internal/ecs"
	"galaxy-rl/internal/system"
)

// ShipMove is the outcome of one ship's decision on one tick.
type ShipMove struct {
	ID    ecs.EntityID       `json:"id"`
	Role  string             `json:"role"`
	From  component.Position `json:"from"`
	Dir   string             `json:"dir"`
	To    component.Position `json:"to"`
	Moved bool               `json:"moved"`
}

// StepResult is what one Step produced.
type StepResult struct {
	Episode    int                `json:"episode"`
	Tick       int                `json:"tick"`
	AgentPos   component.Position `json:"agent"`
	AgentMoved bool               `json:"agent_moved"`
	Ships      []ShipMove         `json:"ships"`
	Done       bool               `json:"done"`
}

// RoleStats counts what one faction did over an episode.
type RoleStats struct {
	Moves   int `json:"moves"`
	Rests   int `json:"rests"`
	Blocked int `json:"blocked"`
}

// Summary is the per-episode tally appended to episodes.jsonl.
type Summary struct {
	Episode    int       `json:"episode"`
	Ticks      int       `json:"ticks"`
	AgentMoves int       `json:"agent_moves"`
	Hostile    RoleStats `json:"hostile"`
	Neutral    RoleStats `json:"neutral"`
}

func (s *Summary) stats(r component.Role) *RoleStats {
	if r == component.RoleHostile {
		return &s.Hostile
	}
	return &s.Neutral
}

// Step applies the agent's action, lets every ship decide against the same
// snapshot, then applies the ships' moves one by one. A move whose target
// became occupied earlier in the same sweep is dropped.
func (e *Env) Step(action component.Direction) StepResult {
	e.tick++
	rec := StepResult{Episode: e.episode, Tick: e.tick}

	rec.AgentMoved = e.moveAgent(action)
	e.snapshot()

	decisions := system.ProcessAI(e.world, e, e.rng)
	rec.Ships = make([]ShipMove, 0, len(decisions))
	for _, d := range decisions {
		rec.Ships = append(rec.Ships, e.apply(d))
	}

	rec.AgentPos = e.livePos(e.agentID)
	rec.Done = e.Done()
	e.record(rec)
	return rec
}

func (e *Env) moveAgent(action component.Direction) bool {
	if action.IsNoOp() {
		return false
	}
	from := e.livePos(e.agentID)
	to := system.ProposeMove(from, action)
	if !e.CheckValidPosition(to) {
		return false
	}
	e.world.Add(e.agentID, to)
	e.summary.AgentMoves++
	return true
}

func (e *Env) apply(d system.Decision) ShipMove {
	move := ShipMove{
		ID:   d.ID,
		Role: d.Role.String(),
		From: d.From,
		Dir:  d.Dir.String(),
		To:   d.From,
	}
	stats := e.summary.stats(d.Role)
	if d.Dir.IsNoOp() {
		stats.Rests++
		return move
	}

	to := system.ProposeMove(d.From, d.Dir)
	if e.CheckValidPosition(to) {
		e.world.Add(d.ID, to)
		move.To, move.Moved = to, true
		stats.Moves++
	} else {
		stats.Blocked++
	}

	e.log.WithFields(logrus.Fields{
		"tick":  e.tick,
		"ship":  d.ID.String(),
		"role":  move.Role,
		"dir":   move.Dir,
		"moved": move.Moved,
	}).Debug("ship decision")
	return move
}

func (e *Env) record(rec StepResult) {
	if e.rec == nil {
		return
	}
	if err := e.rec.Write(rec); err != nil {
		e.log.WithError(err).Warn("trace write failed; tracing disabled for this episode")
		e.rec = nil
	}
}
