// Package flowgraph builds the solver's working residual graph from a
// loaded vertex store and a forward-edges-only edge store: every input
// edge is duplicated into a forward edge (its original capacity) and a
// reverse edge (capacity zero), cross-linked via Mate so augmenting one
// updates the other's residual. The representation is a bucketed,
// int64-valued, mate-linked arena rather than a map-of-maps, matching
// the bucketed vertex/edge stores it is built from.
package flowgraph

import (
	"github.com/arvonne/flowcut/internal/apperror"
	"github.com/arvonne/flowcut/internal/edgestore"
	"github.com/arvonne/flowcut/internal/vertexstore"
)

// Graph is the solver's working residual graph: the input vertex store,
// unchanged, plus a fresh edge store whose buckets hold both the forward
// and reverse edge of every input edge. Pool backs the scratch buffer the
// solver's BFS phases reuse across a solve, and across repeated solves of
// the same Graph (see Reset).
type Graph struct {
	Vertices *vertexstore.Store
	Edges    *edgestore.Store
	Pool     *Pool
}

// Build constructs the residual graph from vertices and forwardEdges (an
// edge store populated with forward edges only, as loaded from the edge
// input stream). The returned graph's edge store has one bucket per input
// bucket count, holding both directions of every edge, sorted by Source.
//
// Build returns a ResourceExhausted apperror if forwardEdges has no
// buckets (a zero-value edgestore.Store), matching an allocation-bound
// failure at the loader boundary.
func Build(vertices *vertexstore.Store, forwardEdges *edgestore.Store) (*Graph, error) {
	bucketCount := forwardEdges.NumBuckets()
	if bucketCount < 1 {
		return nil, apperror.New(apperror.CodeResourceExhausted, "cannot build residual graph with zero buckets")
	}

	residual := edgestore.New(bucketCount)

	forwardEdges.ForEachBucket(func(bucket []*edgestore.Edge) {
		for _, e := range bucket {
			forward := &edgestore.Edge{
				ID:       e.ID,
				Source:   e.Source,
				Target:   e.Target,
				Capacity: e.Capacity,
				Flow:     0,
				Valid:    e.Valid,
				Geometry: e.Geometry,
			}
			reverse := &edgestore.Edge{
				ID:       -1,
				Source:   e.Target,
				Target:   e.Source,
				Capacity: 0,
				Flow:     0,
			}
			forward.Mate = reverse
			reverse.Mate = forward

			residual.InsertUnchecked(forward, forward.Source)
			residual.InsertUnchecked(reverse, reverse.Source)
		}
	})

	residual.SortAllBuckets()

	return &Graph{Vertices: vertices, Edges: residual, Pool: NewPool()}, nil
}

// Reset restores every vertex's solver-owned scratch fields and every
// edge's flow to their pre-solve zero values, allowing a Graph to be
// solved more than once (e.g. for the idempotence property) without
// rebuilding it from the input stores.
func (g *Graph) Reset() {
	g.Vertices.ForEach(func(v *vertexstore.Vertex) {
		v.Level = -1
		v.NextEdge = 0
	})
	g.Edges.ForEachBucket(func(bucket []*edgestore.Edge) {
		for _, e := range bucket {
			e.Flow = 0
		}
	})
}
