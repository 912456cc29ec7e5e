package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// MakeGrid creates a grid where each cell is independently alive with probability 0.5.
// Zero dimensions give an empty grid without consuming any randomness.
func MakeGrid(rows, cols int, src utils.RandomSource) (*Grid, error) {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		chance, err := src.UniformInt(0, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "[MakeGrid] failed to draw cell %d of %dx%d grid", i, g.rows, g.cols)
		}
		g.cells[i] = chance == 1
	}
	return g, nil
}
