package system

import (
	"math/rand"
	"testing"

	"galaxy-rl/internal/component"
)

func TestSenseBoxPropertyNeverSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := newFakeWorld(12, 12)
	roles := []component.Role{component.RoleHostile, component.RoleNeutral}
	for range 25 {
		w.addShip(roles[rng.Intn(2)], rng.Intn(12), rng.Intn(12))
	}

	for radius := 0; radius <= 5; radius++ {
		for _, self := range w.ships {
			seen := Sense(self, radius, w, 0)
			want := 0
			for _, other := range w.ships {
				if other.ID != self.ID && self.Pos.WithinBox(other.Pos, radius) {
					want++
				}
			}
			if len(seen) != want {
				t.Fatalf("r=%d ship %v: saw %d ships, want %d", radius, self.ID, len(seen), want)
			}
			for _, s := range seen {
				if s.ID == self.ID {
					t.Fatalf("r=%d ship %v sensed itself", radius, self.ID)
				}
				dr, dc := s.Pos.Row-self.Pos.Row, s.Pos.Col-self.Pos.Col
				if abs(dr) > radius || abs(dc) > radius {
					t.Fatalf("r=%d ship %v saw %v outside its box", radius, self.ID, s.Pos)
				}
				if s.Dist != abs(dr)+abs(dc) {
					t.Fatalf("sighting of %v has Dist=%d; want %d", s.Pos, s.Dist, abs(dr)+abs(dc))
				}
			}
		}
	}
}

func TestSenseIncludesBoxCorner(t *testing.T) {
	w := newFakeWorld(20, 20)
	self := w.addShip(component.RoleHostile, 5, 5)
	w.addShip(component.RoleNeutral, 8, 8) // (R, R) corner
	w.addShip(component.RoleNeutral, 9, 5) // one row past the box
	w.addShip(component.RoleNeutral, 5, 1) // one column past the box

	seen := Sense(self, 3, w, 0)
	if len(seen) != 1 {
		t.Fatalf("expected only the corner ship; got %v", seen)
	}
	if seen[0].Pos != at(8, 8) || seen[0].Dist != 6 {
		t.Errorf("corner sighting = %+v; want pos (8,8) dist 6", seen[0])
	}
}

func TestSenseRadiusZero(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := w.addShip(component.RoleNeutral, 4, 4)
	stacked := w.addShip(component.RoleHostile, 4, 4)
	w.addShip(component.RoleHostile, 4, 5)

	seen := Sense(self, 0, w, 0)
	if len(seen) != 1 || seen[0].ID != stacked.ID || seen[0].Dist != 0 {
		t.Fatalf("radius 0 should see only the co-located ship; got %v", seen)
	}
}

func TestSenseEmptyRoster(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := Body{ID: 99, Role: component.RoleHostile, Pos: at(1, 1)}
	if seen := Sense(self, 5, w, component.Roles(component.RoleNeutral)); len(seen) != 0 {
		t.Fatalf("empty roster should produce no sightings; got %v", seen)
	}
}

func TestSenseRoleFilter(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := w.addShip(component.RoleNeutral, 5, 5)
	hostile := w.addShip(component.RoleHostile, 5, 6)
	w.addShip(component.RoleNeutral, 5, 4)

	seen := Sense(self, 3, w, component.Roles(component.RoleHostile))
	if len(seen) != 1 || seen[0].ID != hostile.ID {
		t.Fatalf("hostile filter should return only the hostile; got %v", seen)
	}
	if all := Sense(self, 3, w, 0); len(all) != 2 {
		t.Fatalf("unfiltered sense should return both ships; got %v", all)
	}
}

func TestSenseAgentProxy(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := w.addShip(component.RoleHostile, 5, 5)
	w.addShip(component.RoleNeutral, 5, 7)
	w.agent = at(3, 4)

	seen := Sense(self, 3, w, component.Roles(component.RoleAgent, component.RoleNeutral))
	if len(seen) != 2 {
		t.Fatalf("expected neutral + agent proxy; got %v", seen)
	}
	proxies := 0
	for _, s := range seen {
		if s.Kind != SightPlayerProxy {
			continue
		}
		proxies++
		if s.Pos != at(3, 4) || s.Dist != 3 || s.Role != component.RoleAgent {
			t.Errorf("proxy = %+v; want pos (3,4) dist 3 role agent", s)
		}
	}
	if proxies != 1 {
		t.Fatalf("expected exactly one proxy sighting; got %d", proxies)
	}
}

func TestSenseAgentProxyWithoutOtherShips(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := Body{ID: 1, Role: component.RoleHostile, Pos: at(5, 5)}
	w.agent = at(8, 2)

	seen := Sense(self, 3, w, component.Roles(component.RoleAgent))
	if len(seen) != 1 || seen[0].Kind != SightPlayerProxy || seen[0].Dist != 6 {
		t.Fatalf("expected a single proxy at distance 6; got %v", seen)
	}
}

func TestSenseAgentProxyViaAncestorRole(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := w.addShip(component.RoleHostile, 5, 5)
	w.agent = at(5, 6)

	seen := Sense(self, 1, w, component.Roles(component.RoleShip))
	if len(seen) != 1 || seen[0].Kind != SightPlayerProxy {
		t.Fatalf("ancestor-role filter should include the agent; got %v", seen)
	}
}

func TestSenseAgentNotInjected(t *testing.T) {
	w := newFakeWorld(10, 10)
	self := w.addShip(component.RoleNeutral, 5, 5)
	w.agent = at(5, 6)

	if seen := Sense(self, 3, w, component.Roles(component.RoleHostile)); len(seen) != 0 {
		t.Errorf("agent must not appear under a hostile-only filter; got %v", seen)
	}
	if seen := Sense(self, 3, w, 0); len(seen) != 0 {
		t.Errorf("agent must not appear under an empty filter; got %v", seen)
	}
	w.agent = at(9, 9)
	if seen := Sense(self, 3, w, component.Roles(component.RoleAgent)); len(seen) != 0 {
		t.Errorf("out-of-range agent must not appear; got %v", seen)
	}
}
