package model

import "sync"

// Release hands a grid back to the pool. The caller must not use the grid afterwards.
func Release(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles cell buffers of grids whose owners have released them
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the given dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(rows, cols)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

// reset resizes the grid, reusing its buffer when large enough, and kills every cell
func (g *Grid) reset(rows, cols int) {
	g.rows, g.cols = max(rows, 0), max(cols, 0)
	n := g.rows * g.cols
	if cap(g.cells) < n {
		g.cells = make([]bool, n)
		return
	}
	g.cells = g.cells[:n]
	clear(g.cells)
}
