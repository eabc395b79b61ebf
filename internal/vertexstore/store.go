// Package vertexstore implements the bucketed, hash-indexed container of
// graph vertices: O(1) average lookup by id, full iteration for BFS reset,
// and the solver-owned scratch fields (Level, NextEdge) each vertex
// carries between and during solves.
package vertexstore

// Vertex is one node of the flow network. Level and NextEdge are
// algorithmic scratch owned by the solver; they are meaningless outside a
// solve call and are reset at the start of each BFS/DFS phase.
type Vertex struct {
	ID       int64
	Geometry []byte

	Level    int // -1 == not reached in the current BFS
	NextEdge int // cursor into this vertex's outgoing-edge bucket run
}

// Store is a bucketed hash table of *Vertex keyed by ID, sized at
// construction from an upper-bound vertex count, mirroring the original
// hashTable/arrayList pairing: each bucket is an append-only slice and
// the index is the absolute value of id modulo the bucket count.
type Store struct {
	buckets [][]*Vertex
	count   int
}

// New allocates a Store with size buckets. size must be positive; callers
// size it from the expected vertex count (e.g. the number of lines in the
// vertex input stream).
func New(size int) *Store {
	if size < 1 {
		size = 1
	}
	return &Store{buckets: make([][]*Vertex, size)}
}

func (s *Store) index(id int64) int {
	m := id % int64(len(s.buckets))
	if m < 0 {
		m = -m
	}
	return int(m)
}

// InsertUnique inserts v only if no vertex with the same ID is already
// present. Returns whether the insert happened; a duplicate is silently
// rejected, not an error (duplicates are input noise).
func (s *Store) InsertUnique(v *Vertex) bool {
	idx := s.index(v.ID)
	for _, existing := range s.buckets[idx] {
		if existing.ID == v.ID {
			return false
		}
	}
	s.buckets[idx] = append(s.buckets[idx], v)
	s.count++
	return true
}

// Get returns the vertex with the given id, or nil if absent.
func (s *Store) Get(id int64) *Vertex {
	idx := s.index(id)
	for _, v := range s.buckets[idx] {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Contains reports whether id is present in the store.
func (s *Store) Contains(id int64) bool {
	return s.Get(id) != nil
}

// Len returns the number of vertices stored.
func (s *Store) Len() int {
	return s.count
}

// ForEach visits every stored vertex exactly once, in unspecified order.
// Used by the solver to reset Level/NextEdge at the start of each phase.
func (s *Store) ForEach(fn func(*Vertex)) {
	for _, bucket := range s.buckets {
		for _, v := range bucket {
			fn(v)
		}
	}
}
