package vertexstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUnique(t *testing.T) {
	s := New(4)

	inserted := s.InsertUnique(&Vertex{ID: 1, Level: -1})
	assert.True(t, inserted)
	assert.Equal(t, 1, s.Len())

	dup := s.InsertUnique(&Vertex{ID: 1, Level: -1, Geometry: []byte("POINT(1 1)")})
	assert.False(t, dup, "duplicate id must be silently rejected, first wins")
	assert.Equal(t, 1, s.Len())

	first := s.Get(1)
	require.NotNil(t, first)
	assert.Nil(t, first.Geometry, "first-inserted vertex must survive the duplicate insert unchanged")
}

func TestGetAndContains(t *testing.T) {
	s := New(8)
	s.InsertUnique(&Vertex{ID: 42})

	assert.True(t, s.Contains(42))
	assert.False(t, s.Contains(7))
	assert.Nil(t, s.Get(7))
	require.NotNil(t, s.Get(42))
}

func TestNegativeIDsHashToValidBuckets(t *testing.T) {
	s := New(4)
	assert.True(t, s.InsertUnique(&Vertex{ID: -5}))
	assert.True(t, s.Contains(-5))
}

func TestForEachVisitsEveryVertexOnce(t *testing.T) {
	s := New(2)
	ids := []int64{1, 2, 3, 4, 5, -6}
	for _, id := range ids {
		s.InsertUnique(&Vertex{ID: id})
	}

	seen := make(map[int64]int)
	s.ForEach(func(v *Vertex) {
		seen[v.ID]++
	})

	assert.Len(t, seen, len(ids))
	for _, id := range ids {
		assert.Equal(t, 1, seen[id])
	}
}
