package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraConfigOption is a functional option for configuring a CameraConfig.
type CameraConfigOption func(*CameraConfig)

// WithSensitivity sets the per-axis pointer sensitivity.
//
// Parameters:
//   - x: horizontal (yaw) sensitivity
//   - y: vertical (pitch) sensitivity
//
// Returns:
//   - CameraConfigOption: functional option to set the sensitivity
func WithSensitivity(x, y float32) CameraConfigOption {
	return func(c *CameraConfig) {
		c.Sensitivity = mgl32.Vec2{x, y}
	}
}

// WithZoomSensitivity sets the zoom sensitivity multiplier.
//
// Parameters:
//   - sensitivity: multiplier for scroll input
//
// Returns:
//   - CameraConfigOption: functional option to set the zoom sensitivity
func WithZoomSensitivity(sensitivity float32) CameraConfigOption {
	return func(c *CameraConfig) {
		c.ZoomSensitivity = sensitivity
	}
}

// WithZoomBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraConfigOption: functional option to set radius bounds
func WithZoomBounds(min, max float32) CameraConfigOption {
	return func(c *CameraConfig) {
		c.Zoom = ZoomBounds{Min: min, Max: max}
	}
}

// WithZoomEnabled enables or disables scroll zoom.
//
// Parameters:
//   - enabled: whether the zoom updater runs
//
// Returns:
//   - CameraConfigOption: functional option to toggle zoom
func WithZoomEnabled(enabled bool) CameraConfigOption {
	return func(c *CameraConfig) {
		c.ZoomEnabled = enabled
	}
}

// WithOrbitButton restricts orbiting to while the given button is held.
//
// Parameters:
//   - button: the mouse button that must be held
//
// Returns:
//   - CameraConfigOption: functional option to require an orbit button
func WithOrbitButton(button common.MouseButton) CameraConfigOption {
	return func(c *CameraConfig) {
		c.OrbitButtonEnabled = true
		c.OrbitButton = button
	}
}

// WithCursorLock sets the initial cursor lock state.
//
// Parameters:
//   - active: true to start with the cursor captured and the camera live
//
// Returns:
//   - CameraConfigOption: functional option to set cursor lock
func WithCursorLock(active bool) CameraConfigOption {
	return func(c *CameraConfig) {
		c.CursorLockActive = active
	}
}

// WithCursorLockToggle configures the key that toggles cursor lock.
//
// Parameters:
//   - enabled: whether the key toggles cursor lock
//   - key: the toggle key
//
// Returns:
//   - CameraConfigOption: functional option to configure the toggle
func WithCursorLockToggle(enabled bool, key common.Key) CameraConfigOption {
	return func(c *CameraConfig) {
		c.CursorLockToggleEnabled = enabled
		c.CursorLockKey = key
	}
}

// WithBounds replaces the bound list, including the default no-flip bound.
//
// Parameters:
//   - bounds: ordered constraints
//
// Returns:
//   - CameraConfigOption: functional option to set the bounds
func WithBounds(bounds ...Bound) CameraConfigOption {
	return func(c *CameraConfig) {
		c.Bounds = append([]Bound(nil), bounds...)
	}
}

// WithBound appends a bound after those already configured.
//
// Parameters:
//   - bound: the constraint to append
//
// Returns:
//   - CameraConfigOption: functional option to append a bound
func WithBound(bound Bound) CameraConfigOption {
	return func(c *CameraConfig) {
		c.Bounds = append(c.Bounds, bound)
	}
}
