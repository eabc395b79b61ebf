// Package dinic implements the maximum-flow engine: repeated level-graph
// construction by breadth-first search, and a depth-first blocking-flow
// search carrying a per-vertex "next edge" cursor to amortize dead-end
// pruning within one phase. Solve runs synchronously to completion with
// no cancellation or suspension points, and operates entirely in exact
// 64-bit integer arithmetic since capacities and flows are always whole
// numbers in this domain.
package dinic

import (
	"math"

	"github.com/arvonne/flowcut/internal/apperror"
	"github.com/arvonne/flowcut/internal/edgestore"
	"github.com/arvonne/flowcut/internal/flowgraph"
	"github.com/arvonne/flowcut/internal/vertexstore"
)

// infinite is the initial flow seed for an augmenting path search: safely
// below half of math.MaxInt64 so the augmentation arithmetic along any
// path cannot overflow.
const infinite = math.MaxInt64 / 4

// Result carries the solve outcome: the maximum flow value, the number of
// BFS level-graph phases the run took, and the number of edges whose flow
// was updated by an augmenting push (one augmenting path updates one edge
// per hop, so this is at least the number of paths found). The final
// reachability partition (vertex.Level != -1 iff reachable from source)
// is left on the graph's vertices as the min-cut certificate for
// internal/mincut to read.
type Result struct {
	MaxFlow       int64
	BFSPhases     int64
	Augmentations int64
}

// Solve runs Dinic's algorithm to completion over g, between sourceID and
// targetID, and returns the maximum flow value. It requires sourceID !=
// targetID and both ids present in g.Vertices; callers (the loader
// boundary) are expected to have validated this already, but Solve
// defends its own entry point with the same apperror kinds used
// throughout this repository's error handling.
//
// Solve is synchronous: it has no suspension points, accepts no
// context.Context, and runs to completion before returning.
func Solve(g *flowgraph.Graph, sourceID, targetID int64) (Result, error) {
	if sourceID == targetID {
		return Result{}, apperror.New(apperror.CodeSourceEqualsSink, "source and sink must differ")
	}
	source := g.Vertices.Get(sourceID)
	if source == nil {
		return Result{}, apperror.New(apperror.CodeInvalidSource, "source vertex not found")
	}
	target := g.Vertices.Get(targetID)
	if target == nil {
		return Result{}, apperror.New(apperror.CodeInvalidSink, "sink vertex not found")
	}

	buf := g.Pool.AcquireQueueBuffer(g.Vertices.Len())
	queue := newRingQueueWithBuffer(buf)
	defer func() { g.Pool.ReleaseQueueBuffer(queue.buffer()) }()

	var result Result
	for buildLevelGraph(g, queue, source, target, &result.BFSPhases) {
		g.Vertices.ForEach(func(v *vertexstore.Vertex) {
			v.NextEdge = 0
		})
		for {
			pushed := findAndAugment(g, source, target, infinite, &result.Augmentations)
			result.MaxFlow += pushed
			if pushed == 0 {
				break
			}
		}
	}

	return result, nil
}

// buildLevelGraph runs one BFS phase: resets every vertex's Level to -1,
// assigns source.Level = 0, and layers outward over edges with positive
// residual capacity. It returns whether target was reached, i.e. whether
// another blocking-flow phase should run. phases is incremented once per
// call, successful or not, so Result.BFSPhases counts every phase Solve
// ran.
func buildLevelGraph(g *flowgraph.Graph, queue *ringQueue, source, target *vertexstore.Vertex, phases *int64) bool {
	*phases++

	g.Vertices.ForEach(func(v *vertexstore.Vertex) {
		v.Level = -1
	})
	source.Level = 0

	queue.reset()
	queue.enqueue(source.ID)

	for {
		u, ok := queue.dequeue()
		if !ok {
			break
		}
		bucket := g.Edges.Bucket(u)
		edgestore.Run(bucket, u, func(e *edgestore.Edge) bool {
			if e.Residual() <= 0 {
				return true
			}
			v := g.Vertices.Get(e.Target)
			if v.Level == -1 {
				v.Level = g.Vertices.Get(u).Level + 1
				queue.enqueue(v.ID)
			}
			return true
		})
	}

	return target.Level != -1
}

// findAndAugment runs one DFS blocking-flow step from source, pushing up
// to limit units of flow along a single source-to-target path in the
// level graph, and returns the amount pushed (0 if no path remains).
// augments is incremented once per edge whose flow is updated along the
// way (via augment).
func findAndAugment(g *flowgraph.Graph, source, target *vertexstore.Vertex, limit int64, augments *int64) int64 {
	return dfs(g, source, target, limit, augments)
}

// dfs implements the blocking-flow search: it scans u's outgoing
// residual edges starting at u.NextEdge, advancing the cursor
// permanently past any edge that cannot carry flow this phase so later
// calls within the same level-graph phase skip it.
func dfs(g *flowgraph.Graph, u, target *vertexstore.Vertex, flow int64, augments *int64) int64 {
	if u.ID == target.ID {
		return flow
	}

	bucket := g.Edges.Bucket(u.ID)
	// Restrict the scan to u's contiguous run, starting at its cursor.
	run := bucketRun(bucket, u.ID)

	for u.NextEdge < len(run) {
		e := run[u.NextEdge]
		residual := e.Residual()
		v := g.Vertices.Get(e.Target)

		if residual > 0 && v.Level == u.Level+1 {
			canPush := flow
			if residual < canPush {
				canPush = residual
			}
			pushed := dfs(g, v, target, canPush, augments)
			if pushed > 0 {
				augment(e, pushed, augments)
				return pushed
			}
		}

		u.NextEdge++
	}

	return 0
}

// augment pushes b units of flow across e, maintaining the residual
// invariant on its mate, and counts the augmentation.
func augment(e *edgestore.Edge, b int64, augments *int64) {
	e.Flow += b
	e.Mate.Flow -= b
	*augments++
}

// bucketRun extracts the contiguous, source-sorted run of edges for
// vertexID from bucket. Buckets are sorted once after residual-graph
// construction, so this is a linear scan from the start of the bucket that
// stops at the end of vertexID's run rather than walking the whole bucket.
func bucketRun(bucket []*edgestore.Edge, vertexID int64) []*edgestore.Edge {
	start := -1
	end := len(bucket)
	for i, e := range bucket {
		if e.Source < vertexID {
			continue
		}
		if e.Source > vertexID {
			end = i
			break
		}
		if start == -1 {
			start = i
		}
	}
	if start == -1 {
		return nil
	}
	return bucket[start:end]
}
