package dinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingQueueFIFOOrder(t *testing.T) {
	q := newRingQueue(2)
	q.enqueue(1)
	q.enqueue(2)
	q.enqueue(3) // forces expansion past initial capacity 2

	var out []int64
	for {
		v, ok := q.dequeue()
		if !ok {
			break
		}
		out = append(out, v)
	}

	assert.Equal(t, []int64{1, 2, 3}, out)
}

func TestRingQueueExpandPreservesOrderAfterPartialDrain(t *testing.T) {
	q := newRingQueue(2)
	q.enqueue(1)
	q.enqueue(2)
	v, _ := q.dequeue()
	assert.Equal(t, int64(1), v)

	q.enqueue(3)
	q.enqueue(4) // wraps around before expanding

	var out []int64
	for {
		v, ok := q.dequeue()
		if !ok {
			break
		}
		out = append(out, v)
	}
	assert.Equal(t, []int64{2, 3, 4}, out)
}

func TestRingQueueResetReuse(t *testing.T) {
	q := newRingQueue(4)
	q.enqueue(1)
	q.enqueue(2)
	q.reset()

	assert.True(t, q.isEmpty())
	_, ok := q.dequeue()
	assert.False(t, ok)

	q.enqueue(9)
	v, ok := q.dequeue()
	assert.True(t, ok)
	assert.Equal(t, int64(9), v)
}

func TestRingQueueDequeueEmptyReturnsFalse(t *testing.T) {
	q := newRingQueue(1)
	_, ok := q.dequeue()
	assert.False(t, ok)
}

func TestNewRingQueueWithBufferUsesProvidedArray(t *testing.T) {
	buf := make([]int64, 3)
	q := newRingQueueWithBuffer(buf)
	q.enqueue(7)
	q.enqueue(8)

	v, ok := q.dequeue()
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)
	assert.Same(t, &buf[0], &q.array[0], "the queue must operate on the caller's backing array, not a copy")
}

func TestNewRingQueueWithBufferRejectsEmptyBuffer(t *testing.T) {
	q := newRingQueueWithBuffer(nil)
	q.enqueue(1)
	v, ok := q.dequeue()
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestRingQueueBufferReturnsBackingArrayAfterExpand(t *testing.T) {
	q := newRingQueueWithBuffer(make([]int64, 1))
	q.enqueue(1)
	q.enqueue(2) // forces expansion past the initial 1-element buffer

	buf := q.buffer()
	assert.GreaterOrEqual(t, len(buf), 2)
}
