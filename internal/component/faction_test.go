package component

import "testing"

func TestRoleSetMatchesLineage(t *testing.T) {
	cases := []struct {
		name string
		set  RoleSet
		role Role
		want bool
	}{
		{"exact hostile", Roles(RoleHostile), RoleHostile, true},
		{"neutral not hostile", Roles(RoleHostile), RoleNeutral, false},
		{"agent via itself", Roles(RoleAgent, RoleNeutral), RoleAgent, true},
		{"agent via ancestor", Roles(RoleShip), RoleAgent, true},
		{"hostile via ancestor", Roles(RoleShip), RoleHostile, true},
		{"ancestor is not a descendant", Roles(RoleHostile), RoleShip, false},
		{"empty set", 0, RoleNeutral, false},
		{"unknown role", Roles(RoleShip), Role(200), false},
	}
	for _, c := range cases {
		if got := c.set.Matches(c.role); got != c.want {
			t.Errorf("%s: Matches(%v) = %v; want %v", c.name, c.role, got, c.want)
		}
	}
}

func TestRoleSetEmpty(t *testing.T) {
	if !Roles().Empty() {
		t.Error("Roles() should be empty")
	}
	if Roles(RoleAgent).Empty() {
		t.Error("Roles(RoleAgent) should not be empty")
	}
}

func TestPerpendicularsAreOrthogonal(t *testing.T) {
	for _, d := range Cardinals {
		perps := d.Perpendiculars()
		if len(perps) != 2 {
			t.Fatalf("%v: expected 2 perpendiculars, got %d", d, len(perps))
		}
		for _, p := range perps {
			if d.DR*p.DR+d.DC*p.DC != 0 {
				t.Errorf("%v is not orthogonal to %v", p, d)
			}
		}
		if perps[0] == perps[1] {
			t.Errorf("%v: perpendiculars must differ, got %v twice", d, perps[0])
		}
	}
	if NoOp.Perpendiculars() != nil {
		t.Error("NoOp should have no perpendiculars")
	}
}

func TestPositionHelpers(t *testing.T) {
	p := Position{Row: 5, Col: 5}
	if got := p.Add(East); got != (Position{Row: 5, Col: 6}) {
		t.Errorf("Add(East) = %v; want (5,6)", got)
	}
	if got := p.Manhattan(Position{Row: 2, Col: 7}); got != 5 {
		t.Errorf("Manhattan = %d; want 5", got)
	}
	if !p.WithinBox(Position{Row: 8, Col: 2}, 3) {
		t.Error("(8,2) is on the corner of the radius-3 box around (5,5)")
	}
	if p.WithinBox(Position{Row: 9, Col: 5}, 3) {
		t.Error("(9,5) is outside the radius-3 box around (5,5)")
	}
}
