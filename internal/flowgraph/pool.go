package flowgraph

import "sync"

// =============================================================================
// Scratch Buffer Pool
// =============================================================================
//
// A single flowcut invocation builds exactly one Graph and solves it
// exactly once, so pooling whole graphs (as a long-lived service handling
// many requests would) buys nothing here. What every call to Solve needs
// is the ring buffer's backing int64 array, which that solve reuses
// across all of its BFS phases. Pool lets internal/dinic acquire that
// backing array from the Graph it is solving and hand it back when the
// solve finishes, so a later Solve of the same Graph can reuse it instead
// of allocating fresh.
//
// # Usage
//
//	buf := g.Pool.AcquireQueueBuffer(g.Vertices.Len())
//	defer g.Pool.ReleaseQueueBuffer(buf)

// Pool provides memory pooling for the int64 scratch buffers the solver's
// BFS phase allocates. It is safe for concurrent use, though a single
// solve never needs concurrent access to it.
type Pool struct {
	int64Slices sync.Pool
}

// NewPool constructs an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// AcquireQueueBuffer returns an int64 slice of length at least hint,
// reused from the pool when a previously released buffer is large enough.
// The returned slice is sized, not just capacity-reserved, so callers that
// index it directly (the BFS ring buffer) can use it as-is.
func (p *Pool) AcquireQueueBuffer(hint int) []int64 {
	if hint < 16 {
		hint = 16
	}
	v := p.int64Slices.Get()
	if v == nil {
		return make([]int64, hint)
	}
	buf := v.([]int64)
	if cap(buf) < hint {
		return make([]int64, hint)
	}
	return buf[:hint]
}

// ReleaseQueueBuffer returns buf to the pool for reuse by a later
// AcquireQueueBuffer call.
func (p *Pool) ReleaseQueueBuffer(buf []int64) {
	p.int64Slices.Put(buf) //nolint:staticcheck // intentional: reuse backing array across phases
}
