package affine

import "sync"

// Pool provides sync.Pool-based reuse of 3x3 transform matrices to
// reduce GC pressure in per-frame plotting loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return Identity()
			},
		},
	}
}

// Get returns a dense 3x3 matrix reset to the identity.
// Callers must return it via Put when done.
func (p *Pool) Get() *Mat {
	m := p.pool.Get().(*Mat)
	_ = m.SetIdentity() // pooled matrices are always valid 3x3
	return m
}

// Put returns a matrix to the pool for reuse. Matrices that are not
// densely packed 3x3 are dropped. The caller must not use the matrix
// after calling Put.
func (p *Pool) Put(m *Mat) {
	if m == nil || valid3x3(m) != nil {
		return
	}
	p.pool.Put(m)
}
