package window

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/stretchr/testify/assert"
)

// These tests exercise the builder and the mutex-guarded accessors without spawning a GLFW window.

func TestWindowBuilderOptions(t *testing.T) {
	q := input.NewQueue()
	w := &engineWindow{mu: &sync.Mutex{}}
	for _, opt := range []WindowBuilderOption{
		WithTitle("orbit"),
		WithWidth(640),
		WithHeight(480),
		WithQueue(q),
		WithCursorLocked(true),
	} {
		opt(w)
	}

	assert.Equal(t, "orbit", w.title)
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 480, w.Height())
	assert.Same(t, q, w.Queue())
	assert.True(t, w.CursorLocked())
}

func TestEngineWindow_Accessors(t *testing.T) {
	w := &engineWindow{mu: &sync.Mutex{}}

	w.setSize(1920, 1080)
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 1080, w.Height())

	w.SetCursorLocked(true)
	assert.True(t, w.CursorLocked())
	w.SetCursorLocked(false)
	assert.False(t, w.CursorLocked())

	assert.False(t, w.IsRunning(), "no platform window")
	assert.Error(t, w.Close())
}
