package window

import "github.com/Carmen-Shannon/oxy-orbit/engine/input"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithQueue makes the window push events into an existing queue instead of creating its own.
//
// Parameters:
//   - q: the destination queue
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithQueue(q *input.Queue) WindowBuilderOption {
	return func(w *engineWindow) {
		w.queue = q
	}
}

// WithCursorLocked sets whether the cursor starts captured.
//
// Parameters:
//   - locked: true to capture the cursor on creation
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithCursorLocked(locked bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.cursorLocked = locked
	}
}
