package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Step returns the next generation of g. The input grid is never modified.
func Step(g *Grid) *Grid {
	next := NewGrid(g.rows, g.cols)
	stepRows(g, next, 0, g.rows)
	return next
}

// stepRows writes rows [startRow, endRow) of next, reading only from cur
func stepRows(cur, next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cur.cols; col++ {
			i := cur.index(row, col)
			next.cells[i] = rules.ApplyConwayRules(CountNeighbors(cur, row, col), cur.cells[i])
		}
	}
}

// Stepper computes generations, optionally splitting each one across workers
type Stepper struct {
	Parallel bool
	Workers  int
	Pool     *GridPool
}

// NewStepper builds a Stepper from the configuration
func NewStepper(config utils.Config, pool *GridPool) *Stepper {
	return &Stepper{
		Parallel: config.UseParallel,
		Workers:  config.Workers,
		Pool:     pool,
	}
}

func (s *Stepper) newGrid(rows, cols int) *Grid {
	if s.Pool != nil {
		return s.Pool.Get(rows, cols)
	}
	return NewGrid(rows, cols)
}

// Next calculates the next generation of g
func (s *Stepper) Next(g *Grid) (*Grid, error) {
	next := s.newGrid(g.rows, g.cols)
	if !s.Parallel || g.rows < 2 {
		stepRows(g, next, 0, g.rows)
		return next, nil
	}

	numWorkers := s.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			stepRows(g, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		Release(next, s.Pool)
		return nil, errors.Wrap(err, "[Stepper.Next] parallel step failed")
	}

	return next, nil
}
