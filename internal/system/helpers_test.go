package system

import (
	"galaxy-rl/internal/component"
	"galaxy-rl/internal/ecs"
)

// fakeWorld is a bounded open grid with explicit blocked cells.
type fakeWorld struct {
	rows, cols int
	ships      []Body
	agent      component.Position
	blocked    map[component.Position]bool
}

// newFakeWorld returns a rows×cols world with the agent parked far off-grid.
func newFakeWorld(rows, cols int) *fakeWorld {
	return &fakeWorld{
		rows:    rows,
		cols:    cols,
		agent:   component.Position{Row: -100, Col: -100},
		blocked: make(map[component.Position]bool),
	}
}

func (w *fakeWorld) addShip(role component.Role, r, c int) Body {
	b := Body{ID: ecs.EntityID(len(w.ships) + 1), Role: role, Pos: at(r, c)}
	w.ships = append(w.ships, b)
	return b
}

func (w *fakeWorld) Roster() []Body               { return w.ships }
func (w *fakeWorld) AgentRole() component.Role    { return component.RoleAgent }
func (w *fakeWorld) AgentPos() component.Position { return w.agent }

func (w *fakeWorld) CheckValidPosition(p component.Position) bool {
	if p.Row < 0 || p.Row >= w.rows || p.Col < 0 || p.Col >= w.cols {
		return false
	}
	if w.blocked[p] || p == w.agent {
		return false
	}
	for _, s := range w.ships {
		if s.Pos == p {
			return false
		}
	}
	return true
}

// seqRand replays fixed sequences, wrapping around when exhausted.
type seqRand struct {
	floats     []float64
	ints       []int
	fi, ii     int
	floatCalls int
	intCalls   int
}

func (r *seqRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) Intn(n int) int {
	r.intCalls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

func at(r, c int) component.Position { return component.Position{Row: r, Col: c} }

func hostileAI(radius, every int) *component.AI {
	return &component.AI{Behavior: component.BehaviorPursue, VisionRadius: radius, MoveEvery: every}
}

func neutralAI(radius, every int) *component.AI {
	return &component.AI{Behavior: component.BehaviorEvade, VisionRadius: radius, MoveEvery: every}
}

// share is the fraction of n draws that came out as d.
func share(counts map[component.Direction]int, d component.Direction, n int) float64 {
	return float64(counts[d]) / float64(n)
}

// near reports whether got is within tol of want.
func near(got, want, tol float64) bool {
	return got >= want-tol && got <= want+tol
}

// chiSquare1 returns the chi-square statistic of a 50/50 split.
func chiSquare1(a, b int) float64 {
	exp := float64(a+b) / 2
	da, db := float64(a)-exp, float64(b)-exp
	return da*da/exp + db*db/exp
}
