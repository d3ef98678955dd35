package model

import "testing"

func newTestSimulation(t *testing.T, rows, cols int, opts ...Option) *Simulation {
	t.Helper()
	sim, err := NewSimulation(rows, cols, opts...)
	if err != nil {
		t.Fatalf("NewSimulation(%d, %d): %v", rows, cols, err)
	}
	return sim
}

func stamp(t *testing.T, sim *Simulation, cells ...Point) {
	t.Helper()
	if err := sim.StampPattern(cells); err != nil {
		t.Fatalf("StampPattern(%v): %v", cells, err)
	}
}

// expectAlive checks that exactly the given cells are alive
func expectAlive(t *testing.T, g *Grid, cells ...Point) {
	t.Helper()
	want := make(map[Point]bool, len(cells))
	for _, c := range cells {
		want[c] = true
	}
	for y := range g.Rows() {
		for x := range g.Cols() {
			if got := g.Alive(x, y); got != want[Point{X: x, Y: y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want[Point{X: x, Y: y}])
			}
		}
	}
}

func TestCountNeighborsWrapsAround(t *testing.T) {
	const rows, cols = 5, 7
	sim := newTestSimulation(t, rows, cols)
	stamp(t, sim, Point{X: 0, Y: 0})

	for _, p := range []Point{
		{X: cols - 1, Y: rows - 1},
		{X: cols - 1, Y: 0},
		{X: 0, Y: rows - 1},
		{X: 1, Y: 1},
	} {
		n, err := sim.CountNeighbors(p.X, p.Y)
		if err != nil {
			t.Fatalf("CountNeighbors(%d,%d): %v", p.X, p.Y, err)
		}
		if n != 1 {
			t.Errorf("CountNeighbors(%d,%d) = %d, expected 1", p.X, p.Y, n)
		}
	}

	if n, _ := sim.CountNeighbors(0, 0); n != 0 {
		t.Errorf("cell counted itself: CountNeighbors(0,0) = %d", n)
	}
	if n, _ := sim.CountNeighbors(3, 2); n != 0 {
		t.Errorf("CountNeighbors(3,2) = %d, expected 0", n)
	}
}

func TestCountNeighborsRange(t *testing.T) {
	sim := newTestSimulation(t, 3, 3)
	if err := sim.Randomize(1); err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 3 {
			n, err := sim.CountNeighbors(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if n != 8 {
				t.Errorf("full grid CountNeighbors(%d,%d) = %d, expected 8", x, y, n)
			}
		}
	}

	sim = newTestSimulation(t, 10, 10, WithSeed(7))
	if err := sim.Randomize(0.5); err != nil {
		t.Fatal(err)
	}
	for y := range 10 {
		for x := range 10 {
			n, _ := sim.CountNeighbors(x, y)
			if n < 0 || n > 8 {
				t.Fatalf("CountNeighbors(%d,%d) = %d, outside [0,8]", x, y, n)
			}
		}
	}
}

func TestGridEqualAndHash(t *testing.T) {
	a := newTestSimulation(t, 4, 4)
	b := newTestSimulation(t, 4, 4)
	stamp(t, a, Point{X: 1, Y: 2})
	stamp(t, b, Point{X: 1, Y: 2})

	if !a.Grid().Equal(b.Grid()) || a.Grid().Hash() != b.Grid().Hash() {
		t.Fatal("identical grids compare unequal")
	}

	stamp(t, b, Point{X: 3, Y: 3})
	if a.Grid().Equal(b.Grid()) || a.Grid().Hash() == b.Grid().Hash() {
		t.Fatal("different grids compare equal")
	}
	if a.Grid().Equal(newTestSimulation(t, 4, 5).Grid()) {
		t.Fatal("grids of different sizes compare equal")
	}
	if a.Grid().Equal(nil) {
		t.Fatal("grid equals nil")
	}
}

func TestGridAliveOutsideBounds(t *testing.T) {
	sim := newTestSimulation(t, 2, 2)
	if err := sim.Randomize(1); err != nil {
		t.Fatal(err)
	}
	g := sim.Grid()
	if g.Alive(-1, 0) || g.Alive(0, 2) || g.Alive(2, 0) {
		t.Fatal("cells outside the grid read as alive")
	}
	if got := len(g.LivePoints()); got != 4 {
		t.Fatalf("LivePoints() returned %d cells, expected 4", got)
	}
}
