package camera

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport answers the pixel dimensions of the window the pointer moves in.
type Viewport interface {
	Width() int
	Height() int
}

// ButtonState answers whether a mouse button is currently held.
type ButtonState interface {
	Pressed(button common.MouseButton) bool
}

// OrbitResult describes what UpdateOrbit did during a step.
type OrbitResult int

const (
	// OrbitSkipped means a gate closed or the delta was zero; orientation is untouched.
	OrbitSkipped OrbitResult = iota
	// OrbitCommitted means the candidate passed every bound and is now the orientation.
	OrbitCommitted
	// OrbitRejected means a bound rejected the candidate; orientation is untouched.
	OrbitRejected
)

func (r OrbitResult) String() string {
	switch r {
	case OrbitSkipped:
		return "skipped"
	case OrbitCommitted:
		return "committed"
	case OrbitRejected:
		return "rejected"
	default:
		return fmt.Sprintf("OrbitResult(%d)", int(r))
	}
}

// OrbitCondition is the scheduling gate for the orbit updater, evaluated once per step.
// A nil config means no camera exists, in which case the gate is open.
//
// Parameters:
//   - cfg: the camera configuration, or nil
//
// Returns:
//   - bool: true if the orbit updater should run this step
func OrbitCondition(cfg *CameraConfig) bool {
	if cfg == nil {
		return true
	}
	return cfg.CursorLockActive
}

// OrbitCandidate composes the candidate orientation for a sensitivity-scaled pointer delta.
// Sensitivity is applied here a second time, on the normalized angle.
// Composition is yaw * current * pitch: yaw about world Y, pitch about the camera's local X.
//
// Parameters:
//   - current: the committed orientation
//   - scaled: pointer delta already multiplied by sensitivity
//   - sensitivity: per-axis sensitivity
//   - width, height: viewport size in pixels (must be non-zero)
//
// Returns:
//   - mgl32.Quat: the candidate orientation
func OrbitCandidate(current mgl32.Quat, scaled, sensitivity mgl32.Vec2, width, height float32) mgl32.Quat {
	deltaYaw := scaled.X() / width * math.Pi * sensitivity.X()
	deltaPitch := scaled.Y() / height * math.Pi * sensitivity.Y()

	yaw := mgl32.QuatRotate(-deltaYaw, common.WorldUp)
	pitch := mgl32.QuatRotate(-deltaPitch, common.WorldRight)
	return yaw.Mul(current).Mul(pitch)
}

// UpdateOrbit applies one step of pointer motion to the camera.
//
// The combined yaw and pitch candidate is validated against cfg.Bounds as a whole; a rejected
// candidate leaves the orientation unchanged. Position is recomputed from whatever orientation
// holds afterwards, whether or not the step rotated.
//
// Parameters:
//   - state: the camera transform, or nil when no camera exists
//   - cfg: the camera configuration, or nil when no camera exists
//   - delta: aggregated pointer delta for the step
//   - viewport: the pointer's viewport; only queried when there is rotation to apply
//   - buttons: current button state; only queried when cfg.OrbitButtonEnabled is set
//
// Returns:
//   - OrbitResult: what happened to the orientation
//   - error: ErrViewportUnavailable if rotation was due but the viewport could not be queried
func UpdateOrbit(state CameraState, cfg *CameraConfig, delta mgl32.Vec2, viewport Viewport, buttons ButtonState) (OrbitResult, error) {
	if state == nil || cfg == nil {
		return OrbitSkipped, nil
	}

	if cfg.OrbitButtonEnabled && (buttons == nil || !buttons.Pressed(cfg.OrbitButton)) {
		state.Refresh()
		return OrbitSkipped, nil
	}

	scaled := common.MulComponents(delta, cfg.Sensitivity)
	if scaled.LenSqr() <= 0 {
		state.Refresh()
		return OrbitSkipped, nil
	}

	if viewport == nil || viewport.Width() <= 0 || viewport.Height() <= 0 {
		return OrbitSkipped, ErrViewportUnavailable
	}
	width := float32(viewport.Width())
	height := float32(viewport.Height())

	result := OrbitRejected
	state.Modify(func(orientation mgl32.Quat, radius float32) (mgl32.Quat, float32) {
		candidate := OrbitCandidate(orientation, scaled, cfg.Sensitivity, width, height)
		if !PassesBounds(cfg.Bounds, candidate, radius) {
			return orientation, radius
		}
		result = OrbitCommitted
		return candidate, radius
	})
	return result, nil
}
