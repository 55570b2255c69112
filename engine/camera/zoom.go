package camera

import "github.com/go-gl/mathgl/mgl32"

// ZoomCondition is the scheduling gate for the zoom updater.
// A nil config means no camera exists, in which case the gate is open.
//
// Parameters:
//   - cfg: the camera configuration, or nil
//
// Returns:
//   - bool: true if the zoom updater should run this step
func ZoomCondition(cfg *CameraConfig) bool {
	if cfg == nil {
		return true
	}
	return cfg.ZoomEnabled && cfg.CursorLockActive
}

// ZoomRadius returns the radius after applying scroll, clamped to bounds.
// The step is proportional to the current radius so zoom feels the same at any distance.
//
// Parameters:
//   - radius: current orbit radius
//   - scroll: aggregated scroll for the step
//   - sensitivity: zoom sensitivity multiplier
//   - bounds: radius limits
//
// Returns:
//   - float32: the clamped radius
func ZoomRadius(radius, scroll, sensitivity float32, bounds ZoomBounds) float32 {
	next := radius - scroll*radius*ZoomFactor*sensitivity
	return bounds.Clamp(next)
}

// UpdateZoom applies one step of scroll input to the camera radius.
// Position follows the new radius immediately.
//
// Parameters:
//   - state: the camera transform, or nil when no camera exists
//   - cfg: the camera configuration, or nil when no camera exists
//   - scroll: aggregated scroll for the step
//
// Returns:
//   - bool: true if a new radius was committed
func UpdateZoom(state CameraState, cfg *CameraConfig, scroll float32) bool {
	if state == nil || cfg == nil || scroll == 0 {
		return false
	}
	state.Modify(func(orientation mgl32.Quat, radius float32) (mgl32.Quat, float32) {
		return orientation, ZoomRadius(radius, scroll, cfg.ZoomSensitivity, cfg.Zoom)
	})
	return true
}
