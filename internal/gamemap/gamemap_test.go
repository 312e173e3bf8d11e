package gamemap

import (
	"testing"

	"galaxy-rl/internal/component"
)

func pos(r, c int) component.Position { return component.Position{Row: r, Col: c} }

func TestInBounds(t *testing.T) {
	m := New(8, 10)
	cases := []struct {
		p    component.Position
		want bool
	}{
		{pos(0, 0), true},
		{pos(7, 9), true},
		{pos(-1, 0), false},
		{pos(0, 10), false},
		{pos(8, 0), false},
	}
	for _, c := range cases {
		got := m.InBounds(c.p)
		if got != c.want {
			t.Errorf("InBounds(%v)=%v, want %v", c.p, got, c.want)
		}
	}
}

func TestIsPassable(t *testing.T) {
	m := New(5, 5)
	// all open space initially
	if !m.IsPassable(pos(2, 2)) {
		t.Error("space tile should be passable")
	}
	m.Set(pos(2, 2), MakeAsteroid())
	if m.IsPassable(pos(2, 2)) {
		t.Error("asteroid tile should not be passable")
	}
	m.Set(pos(2, 2), MakeSpace())
	if !m.IsPassable(pos(2, 2)) {
		t.Error("cleared tile should be passable again")
	}
	// out of bounds
	if m.IsPassable(pos(-1, 0)) {
		t.Error("out-of-bounds should not be passable")
	}
}

func TestBorderCellsAreUniqueAndOnBorder(t *testing.T) {
	for _, dims := range [][2]int{{10, 10}, {1, 5}, {5, 1}, {2, 2}, {3, 7}} {
		m := New(dims[0], dims[1])
		cells := m.BorderCells()
		seen := make(map[component.Position]bool)
		for _, p := range cells {
			if seen[p] {
				t.Errorf("%dx%d: border cell %v listed twice", dims[0], dims[1], p)
			}
			seen[p] = true
			if !m.OnBorder(p) {
				t.Errorf("%dx%d: %v is not on the border", dims[0], dims[1], p)
			}
		}
		// Every border cell must be listed.
		want := 0
		for r := 0; r < m.Rows; r++ {
			for c := 0; c < m.Cols; c++ {
				if m.OnBorder(pos(r, c)) {
					want++
				}
			}
		}
		if len(cells) != want {
			t.Errorf("%dx%d: got %d border cells, want %d", dims[0], dims[1], len(cells), want)
		}
	}
}

func TestBorderCellsCount10x10(t *testing.T) {
	if got := len(New(10, 10).BorderCells()); got != 36 {
		t.Errorf("10x10 border has %d cells; want 36", got)
	}
}
