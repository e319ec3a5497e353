package grid

import "sync"

// Pool recycles grids to keep per-slice scratch allocations down when a
// multi-dimensional field is filtered one slice at a time.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get returns a zeroed grid with the requested extent.
// Callers must return it via Put when done.
func (p *Pool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Resize(rows, cols)
	g.Fill(0)

	return g
}

// Put returns a grid to the pool for reuse.
// The caller must not use the grid after calling Put.
func (p *Pool) Put(g *Grid) {
	if g == nil {
		return
	}

	p.pool.Put(g)
}
