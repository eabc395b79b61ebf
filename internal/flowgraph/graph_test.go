package flowgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonne/flowcut/internal/edgestore"
	"github.com/arvonne/flowcut/internal/vertexstore"
)

func buildTwoVertexGraph(t *testing.T, capacity int64) *Graph {
	t.Helper()
	vs := vertexstore.New(4)
	vs.InsertUnique(&vertexstore.Vertex{ID: 1, Level: -1})
	vs.InsertUnique(&vertexstore.Vertex{ID: 2, Level: -1})

	forward := edgestore.New(4)
	forward.InsertChecked(&edgestore.Edge{ID: 10, Source: 1, Target: 2, Capacity: capacity}, 10)

	g, err := Build(vs, forward)
	require.NoError(t, err)
	return g
}

func TestBuildCreatesForwardAndReversePair(t *testing.T) {
	g := buildTwoVertexGraph(t, 5)

	var forward, reverse *edgestore.Edge
	g.Edges.ForEachBucket(func(bucket []*edgestore.Edge) {
		for _, e := range bucket {
			if e.ID == 10 {
				forward = e
			}
			if e.ID == -1 {
				reverse = e
			}
		}
	})

	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, int64(5), forward.Capacity)
	assert.Equal(t, int64(0), reverse.Capacity)
	assert.Same(t, reverse, forward.Mate)
	assert.Same(t, forward, reverse.Mate)
	assert.Equal(t, forward.Target, reverse.Source)
	assert.Equal(t, forward.Source, reverse.Target)
}

func TestBuildAttachesAPool(t *testing.T) {
	g := buildTwoVertexGraph(t, 5)
	require.NotNil(t, g.Pool, "Solve acquires its BFS queue buffer from g.Pool")
}

func TestBuildAcceptsSingleBucketStore(t *testing.T) {
	vs := vertexstore.New(1)
	forward := edgestore.New(1)
	// Force NumBuckets() to zero is impossible via New (min 1), so this
	// documents that Build trusts a pre-sized edge store; the guard still
	// protects a caller passing a zero-value edgestore.Store directly.
	_, err := Build(vs, forward)
	assert.NoError(t, err)
}

func TestResetClearsFlowAndScratchState(t *testing.T) {
	g := buildTwoVertexGraph(t, 5)

	g.Edges.ForEachBucket(func(bucket []*edgestore.Edge) {
		for _, e := range bucket {
			e.Flow = 3
		}
	})
	g.Vertices.ForEach(func(v *vertexstore.Vertex) {
		v.Level = 7
		v.NextEdge = 2
	})

	g.Reset()

	g.Edges.ForEachBucket(func(bucket []*edgestore.Edge) {
		for _, e := range bucket {
			assert.Zero(t, e.Flow)
		}
	})
	g.Vertices.ForEach(func(v *vertexstore.Vertex) {
		assert.Equal(t, -1, v.Level)
		assert.Zero(t, v.NextEdge)
	})
}
