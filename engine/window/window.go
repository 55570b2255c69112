package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Window provides platform windowing and forwards raw input events into an input.Queue.
// It satisfies camera.Viewport through Width and Height.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// Queue returns the input queue the window pushes events into.
	//
	// Returns:
	//   - *input.Queue: the event queue
	Queue() *input.Queue

	// SetCursorLocked captures (hides and confines) or releases the cursor.
	// Safe to call from any goroutine; the change is applied on the next message loop iteration.
	//
	// Parameters:
	//   - locked: true to capture the cursor
	SetCursorLocked(locked bool)

	// CursorLocked reports the most recently requested cursor lock state.
	//
	// Returns:
	//   - bool: true if the cursor is captured
	CursorLocked() bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and the input queue.
type engineWindow struct {
	// mu guards width, height and cursorLocked, which are read from the engine tick goroutine.
	mu *sync.Mutex

	// title is the window title displayed in the title bar.
	title string

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// cursorLocked is the requested cursor capture state.
	cursorLocked bool

	// queue receives every raw input event.
	queue *input.Queue

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns a new Window with the specified options.
// Applies default values first, then each option in order.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		mu:           &sync.Mutex{},
		title:        "Oxy Orbit",
		width:        1280,
		height:       720,
		cursorLocked: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if w.queue == nil {
		w.queue = input.NewQueue()
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) Queue() *input.Queue {
	return w.queue
}

func (w *engineWindow) SetCursorLocked(locked bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursorLocked = locked
}

func (w *engineWindow) CursorLocked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursorLocked
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// setSize records new framebuffer dimensions.
func (w *engineWindow) setSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = width
	w.height = height
}
