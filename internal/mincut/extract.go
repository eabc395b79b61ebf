// Package mincut derives the minimum s-t cut from the residual
// reachability partition a completed dinic.Solve leaves on the graph's
// vertices.
package mincut

import (
	"sort"

	"github.com/arvonne/flowcut/internal/edgestore"
	"github.com/arvonne/flowcut/internal/flowgraph"
)

// Extract returns the forward edges of g that constitute the minimum s-t
// cut after a solve, ascending by edge id. An edge belongs to the cut iff
// it is a forward edge of the input graph (ID != -1), has positive
// capacity, is saturated (Flow == Capacity), and crosses the reachability
// boundary: exactly one of its endpoints has Level == -1.
func Extract(g *flowgraph.Graph) []*edgestore.Edge {
	var cut []*edgestore.Edge

	g.Edges.ForEachBucket(func(bucket []*edgestore.Edge) {
		for _, e := range bucket {
			if e.ID == -1 {
				continue
			}
			if e.Capacity <= 0 {
				continue
			}
			if e.Flow != e.Capacity {
				continue
			}
			srcUnreached := g.Vertices.Get(e.Source).Level == -1
			dstUnreached := g.Vertices.Get(e.Target).Level == -1
			if srcUnreached == dstUnreached {
				continue
			}
			cut = append(cut, e)
		}
	})

	sort.Slice(cut, func(i, j int) bool {
		return cut[i].ID < cut[j].ID
	})

	return cut
}
