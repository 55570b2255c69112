package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestProfiler_LogsPerInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(
		WithInterval(time.Second),
		WithLogger(log.New(&buf, "", 0)),
		WithClock(clock.now),
	)

	clock.t = clock.t.Add(500 * time.Millisecond)
	assert.False(t, p.Tick(Sample{OrbitCommitted: 3}))
	assert.Empty(t, buf.String())

	clock.t = clock.t.Add(500 * time.Millisecond)
	require.True(t, p.Tick(Sample{OrbitCommitted: 5, OrbitRejected: 2, ZoomCommitted: 1}))
	assert.Contains(t, buf.String(), "[Profiler] TPS: 2.00")
	assert.Contains(t, buf.String(), "Orbit: 5 committed, 2 rejected")
	assert.Contains(t, buf.String(), "Zoom: 1")

	buf.Reset()
	clock.t = clock.t.Add(2 * time.Second)
	require.True(t, p.Tick(Sample{OrbitCommitted: 9, OrbitRejected: 2, ZoomCommitted: 1}))
	assert.Contains(t, buf.String(), "TPS: 0.50")
	assert.Contains(t, buf.String(), "Orbit: 4 committed, 0 rejected")
	assert.Contains(t, buf.String(), "Zoom: 0")
}
