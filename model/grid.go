package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	glyphAlive = '#'
	glyphDead  = '.'
)

var (
	// ErrRaggedPattern is returned when pattern rows differ in length
	ErrRaggedPattern = errors.New("pattern rows have different lengths")
	// ErrInvalidGlyph is returned when a pattern contains a character other than '#' or '.'
	ErrInvalidGlyph = errors.New("pattern contains an invalid glyph")
)

// Grid is an immutable snapshot of one generation, stored row-major in a single buffer
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an all-dead grid. Zero or negative dimensions give an empty grid.
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// ParseGrid builds a grid from rows of '#' (alive) and '.' (dead)
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return NewGrid(0, 0), nil
	}

	g := NewGrid(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, errors.Wrapf(ErrRaggedPattern, "[ParseGrid] row %d has %d columns, want %d", row, len(line), g.cols)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case glyphAlive:
				g.cells[g.index(row, col)] = true
			case glyphDead:
			default:
				return nil, errors.Wrapf(ErrInvalidGlyph, "[ParseGrid] %q at row %d col %d", line[col], row, col)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state of a cell. Out-of-range coordinates are a programming error and panic.
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("model: cell (%d,%d) out of range for %dx%d grid", row, col, g.rows, g.cols))
	}
	return g.cells[g.index(row, col)]
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Density returns the fraction of living cells, 0 for an empty grid
func (g *Grid) Density() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	return float64(g.CountLivingCells()) / float64(len(g.cells))
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// String renders the grid one line per row using '#' and '.'
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[g.index(row, col)] {
				sb.WriteByte(glyphAlive)
			} else {
				sb.WriteByte(glyphDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
