// Package edgestore implements the source-indexed, bucketed container of
// graph edges. Edges are grouped by their Source vertex id so enumerating
// a vertex's outgoing residual edges is an indexed bucket scan: after
// residual construction each bucket is sorted by Source, turning a
// vertex's edges into a contiguous run found by a three-way comparison
// scan, even when hashing collides multiple vertices into one bucket.
package edgestore

import "sort"

// Edge is one directed arc of the residual graph. Mate is a pure
// back-reference to the paired edge (forward <-> reverse), not an
// ownership edge; together the pair satisfies flow + mate.flow == 0.
type Edge struct {
	ID       int64 // -1 for reverse edges
	Source   int64
	Target   int64
	Capacity int64
	Flow     int64
	Valid    bool   // forward edges only
	Geometry []byte // forward edges only
	Mate     *Edge
}

// Residual returns the edge's residual capacity, capacity minus flow.
func (e *Edge) Residual() int64 {
	return e.Capacity - e.Flow
}

// Store is a bucketed hash table of *Edge keyed by Source id.
type Store struct {
	buckets [][]*Edge
}

// New allocates a Store with size buckets.
func New(size int) *Store {
	if size < 1 {
		size = 1
	}
	return &Store{buckets: make([][]*Edge, size)}
}

func (s *Store) index(id int64) int {
	m := id % int64(len(s.buckets))
	if m < 0 {
		m = -m
	}
	return int(m)
}

// InsertChecked inserts e into the bucket keyed by keyId, rejecting a
// duplicate edge ID. Used during the input-loading phase, where forward
// edges must be deduplicated by their caller-supplied id.
func (s *Store) InsertChecked(e *Edge, keyID int64) bool {
	idx := s.index(keyID)
	for _, existing := range s.buckets[idx] {
		if existing.ID == e.ID {
			return false
		}
	}
	s.buckets[idx] = append(s.buckets[idx], e)
	return true
}

// InsertUnchecked inserts e into the bucket keyed by keyId without
// deduplication. Used during residual-graph construction, where forward
// and reverse edges sharing the sentinel id -1 must coexist.
func (s *Store) InsertUnchecked(e *Edge, keyID int64) {
	idx := s.index(keyID)
	s.buckets[idx] = append(s.buckets[idx], e)
}

// Bucket returns the raw bucket chosen by vertexId. It may contain edges
// whose Source differs from vertexId when hashing collides; callers must
// filter, typically via Run.
func (s *Store) Bucket(vertexID int64) []*Edge {
	return s.buckets[s.index(vertexID)]
}

// ForEachBucket visits every bucket (in index order) exactly once, used
// to finalize buckets after construction and to emit stored edges.
func (s *Store) ForEachBucket(fn func(bucket []*Edge)) {
	for _, bucket := range s.buckets {
		fn(bucket)
	}
}

// SortBucketBySource stable-sorts the bucket at bucketIndex by Source id,
// so that after residual construction a vertex's edges form a contiguous
// run within the bucket. Equal-source edges retain relative order.
func (s *Store) SortBucketBySource(bucketIndex int) {
	bucket := s.buckets[bucketIndex]
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Source < bucket[j].Source
	})
}

// SortAllBuckets sorts every bucket by Source id. Called once after the
// residual graph has been fully built.
func (s *Store) SortAllBuckets() {
	for i := range s.buckets {
		s.SortBucketBySource(i)
	}
}

// NumBuckets returns the number of hash buckets the store was built with.
func (s *Store) NumBuckets() int {
	return len(s.buckets)
}

// Run invokes fn once for every edge in vertexId's contiguous,
// source-sorted run within its bucket: it skips entries while
// edge.Source < vertexId and stops as soon as edge.Source > vertexId,
// per the three-way comparison scan the bucket-sort contract promises.
// fn may return false to stop the scan early.
func Run(bucket []*Edge, vertexID int64, fn func(e *Edge) bool) {
	for _, e := range bucket {
		if e.Source < vertexID {
			continue
		}
		if e.Source > vertexID {
			break
		}
		if !fn(e) {
			return
		}
	}
}
