package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// DefaultLiveProbability is the share of cells a randomized grid starts with alive
const DefaultLiveProbability = 0.15

// Simulation owns a toroidal grid and advances it one generation at a time.
//
// A Simulation is not safe for concurrent use: a single driver is expected
// to call its methods, one at a time.
type Simulation struct {
	rows       int
	cols       int
	grid       *Grid
	generation int
	workers    int
	rng        *rand.Rand
	rule       func(neighbors int, alive bool) bool
}

// Option configures a Simulation
type Option func(*Simulation)

// WithSeed makes Randomize deterministic
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

// WithWorkers sets how many goroutines Step splits the rows across, n <= 0 means one per CPU
func WithWorkers(n int) Option {
	return func(s *Simulation) {
		s.workers = n
	}
}

// NewSimulation creates a simulation with an all-dead grid of rows x cols
func NewSimulation(rows, cols int, opts ...Option) (*Simulation, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewSimulation] rows=%d cols=%d", rows, cols)
	}

	s := &Simulation{
		rows: rows,
		cols: cols,
		rule: rules.ApplyConwayRules,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.grid = s.CreateEmptyGrid()
	return s, nil
}

// Rows returns the fixed height of the grid
func (s *Simulation) Rows() int {
	return s.rows
}

// Cols returns the fixed width of the grid
func (s *Simulation) Cols() int {
	return s.cols
}

// Grid returns the current generation. It must be treated as read-only.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Generation returns the number of steps since the grid was last reset or randomized
func (s *Simulation) Generation() int {
	return s.generation
}

// CreateEmptyGrid returns a new all-dead grid sized for this simulation
func (s *Simulation) CreateEmptyGrid() *Grid {
	return newGrid(s.rows, s.cols)
}

// Reset replaces the grid with an empty one
func (s *Simulation) Reset() {
	s.grid = s.CreateEmptyGrid()
	s.generation = 0
}

// Randomize replaces the grid with one where every cell is independently
// alive with the given probability
func (s *Simulation) Randomize(liveProbability float64) error {
	if math.IsNaN(liveProbability) || liveProbability < 0 || liveProbability > 1 {
		return errors.Wrapf(ErrInvalidProbability, "[Randomize] got %v", liveProbability)
	}

	next := s.CreateEmptyGrid()
	for y := range s.rows {
		for x := range s.cols {
			next.cells[y][x] = s.rng.Float64() < liveProbability
		}
	}
	s.grid = next
	s.generation = 0
	return nil
}

// StampPattern marks every offset alive without clearing other cells.
// Offsets are relative to the grid origin; if any of them lies outside the
// grid nothing is stamped.
func (s *Simulation) StampPattern(offsets []Point) error {
	for _, p := range offsets {
		if !s.grid.InBounds(p.X, p.Y) {
			return errors.Wrapf(ErrIndexOutOfRange, "[StampPattern] (%d,%d) on %dx%d grid", p.X, p.Y, s.cols, s.rows)
		}
	}

	next := s.grid.clone()
	for _, p := range offsets {
		next.cells[p.Y][p.X] = true
	}
	s.grid = next
	return nil
}

// CountNeighbors counts living cells around (x, y), wrapping at the edges
func (s *Simulation) CountNeighbors(x, y int) (int, error) {
	if !s.grid.InBounds(x, y) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "[CountNeighbors] (%d,%d) on %dx%d grid", x, y, s.cols, s.rows)
	}
	return s.grid.countNeighbors(x, y), nil
}

// Step advances the simulation by one generation. On failure the current
// generation is kept.
func (s *Simulation) Step() error {
	next, err := s.grid.nextGeneration(s.rule, s.workers)
	if err != nil {
		return errors.Wrapf(err, "[Step] failed to compute generation %d", s.generation+1)
	}
	s.grid = next
	s.generation++
	return nil
}
