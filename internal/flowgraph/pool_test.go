package flowgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireQueueBufferMeetsHint(t *testing.T) {
	p := NewPool()
	buf := p.AcquireQueueBuffer(5)
	assert.Len(t, buf, 16, "hints below the floor still return the floor size")

	buf = p.AcquireQueueBuffer(64)
	assert.Len(t, buf, 64)
}

func TestReleasedBufferIsReusedWhenLargeEnough(t *testing.T) {
	p := NewPool()
	buf := p.AcquireQueueBuffer(128)
	buf[0] = 42
	p.ReleaseQueueBuffer(buf)

	reused := p.AcquireQueueBuffer(64)
	assert.Equal(t, int64(42), reused[0], "a released buffer with enough capacity must be handed back out")
}

func TestAcquireQueueBufferAllocatesFreshWhenPooledBufferTooSmall(t *testing.T) {
	p := NewPool()
	small := p.AcquireQueueBuffer(16)
	p.ReleaseQueueBuffer(small)

	bigger := p.AcquireQueueBuffer(1000)
	assert.Len(t, bigger, 1000)
}
