package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Point is an (x, y) cell coordinate, x being the column and y the row
type Point struct {
	X, Y int
}

// Grid is one generation of a toroidal board.
//
// A Grid handed out by a Simulation is never written to again; every change
// to the simulation produces a new Grid.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// newGrid creates an all-dead grid with the specified dimensions
func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the height of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the width of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Alive returns the state of a cell, cells outside the grid read as dead
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// countNeighbors counts living cells in the Moore neighborhood of (x, y).
// Edges wrap: the last column touches the first one and the last row touches the first one.
// x and y must be inside the grid.
func (g *Grid) countNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + g.rows) % g.rows
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[ny][(x+dx+g.cols)%g.cols] {
				count++
			}
		}
	}
	return count
}

// LivingCells returns the total number of living cells
func (g *Grid) LivingCells() (count int) {
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// LivePoints returns the coordinates of every living cell in row-major order
func (g *Grid) LivePoints() []Point {
	var points []Point
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Equal reports whether both grids have the same size and the same living cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (g *Grid) clone() *Grid {
	next := newGrid(g.rows, g.cols)
	for y := range g.rows {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// nextGeneration computes the following generation into a fresh grid,
// splitting the rows between workers. g itself is only read.
func (g *Grid) nextGeneration(rule func(neighbors int, alive bool) bool, workers int) (*Grid, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		next          = newGrid(g.rows, g.cols)
		rowsPerWorker = (g.rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("[nextGeneration] rows %d-%d: %v", startRow, endRow, r)
				}
			}()
			for y := startRow; y < endRow; y++ {
				for x := range g.cols {
					next.cells[y][x] = rule(g.countNeighbors(x, y), g.cells[y][x])
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}
