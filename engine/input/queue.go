package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Queue buffers raw input events between steps.
// Window callbacks push from the message-loop thread while the tick loop drains, so every
// method is safe for concurrent use.
type Queue struct {
	mu *sync.Mutex

	motion []mgl32.Vec2
	scroll []float32
	keys   []common.Key

	// held tracks which mouse buttons are currently down. It persists across drains.
	held map[common.MouseButton]bool
}

// NewQueue creates an empty Queue with no buttons held.
//
// Returns:
//   - *Queue: the newly created queue
func NewQueue() *Queue {
	return &Queue{
		mu:   &sync.Mutex{},
		held: make(map[common.MouseButton]bool),
	}
}

// PushMotion records a raw pointer-motion delta.
//
// Parameters:
//   - dx, dy: pointer movement in pixels since the previous motion event
func (q *Queue) PushMotion(dx, dy float32) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.motion = append(q.motion, mgl32.Vec2{dx, dy})
}

// PushScroll records a raw vertical scroll component.
//
// Parameters:
//   - dy: signed scroll amount (positive = away from the user)
func (q *Queue) PushScroll(dy float32) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.scroll = append(q.scroll, dy)
}

// PushKey records a key press.
//
// Parameters:
//   - key: the virtual key code
func (q *Queue) PushKey(key common.Key) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = append(q.keys, key)
}

// SetButton records the held state of a mouse button.
//
// Parameters:
//   - button: the mouse button
//   - pressed: true on press, false on release
func (q *Queue) SetButton(button common.MouseButton, pressed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if pressed {
		q.held[button] = true
		return
	}
	delete(q.held, button)
}

// Pressed reports whether the button is currently held.
//
// Parameters:
//   - button: the mouse button to query
//
// Returns:
//   - bool: true while the button is down
func (q *Queue) Pressed(button common.MouseButton) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.held[button]
}

// Drain consumes every pending event, clears the buffers and returns their aggregate.
// Button held state is not affected.
//
// Returns:
//   - Frame: the aggregated input for the step
func (q *Queue) Drain() Frame {
	q.mu.Lock()
	defer q.mu.Unlock()

	f := Frame{
		Motion: SumMotion(q.motion),
		Scroll: SumScroll(q.scroll),
	}
	if len(q.keys) > 0 {
		f.Keys = q.keys
	}

	q.motion = q.motion[:0]
	q.scroll = q.scroll[:0]
	q.keys = nil
	return f
}
