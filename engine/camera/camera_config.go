package camera

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ZoomFactor is the fraction of the current radius one unit of scroll moves the camera.
const ZoomFactor float32 = 0.1

// ZoomBounds holds the inclusive orbit radius limits.
type ZoomBounds struct {
	Min float32
	Max float32
}

// Clamp restricts radius to [Min, Max].
func (z ZoomBounds) Clamp(radius float32) float32 {
	return mgl32.Clamp(radius, z.Min, z.Max)
}

// CameraConfig is the application-supplied configuration of a third-person orbit camera.
// It is treated as immutable for the duration of a step.
type CameraConfig struct {
	// Sensitivity scales pointer deltas per axis. It is applied to the raw delta and again to the
	// normalized angle.
	Sensitivity mgl32.Vec2

	// ZoomEnabled gates the zoom updater.
	ZoomEnabled bool

	// ZoomSensitivity scales the radius response to scroll input.
	ZoomSensitivity float32

	// Zoom holds the radius limits.
	Zoom ZoomBounds

	// OrbitButtonEnabled restricts orbiting to while OrbitButton is held.
	OrbitButtonEnabled bool

	// OrbitButton is the button that must be held when OrbitButtonEnabled is set.
	OrbitButton common.MouseButton

	// CursorLockActive gates the orbit and zoom updaters. The host keeps the cursor captured while it is set.
	CursorLockActive bool

	// CursorLockToggleEnabled allows CursorLockKey to flip CursorLockActive.
	CursorLockToggleEnabled bool

	// CursorLockKey is the key that toggles CursorLockActive.
	CursorLockKey common.Key

	// Bounds are evaluated in order; the first failing bound rejects a candidate orientation.
	Bounds []Bound
}

// NewCameraConfig creates a CameraConfig with defaults, then applies each option in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - CameraConfig: the configured value
func NewCameraConfig(options ...CameraConfigOption) CameraConfig {
	cfg := CameraConfig{
		Sensitivity:             mgl32.Vec2{1, 1},
		ZoomEnabled:             true,
		ZoomSensitivity:         1,
		Zoom:                    ZoomBounds{Min: 1.5, Max: 30},
		OrbitButtonEnabled:      false,
		OrbitButton:             common.MouseButtonRight,
		CursorLockActive:        true,
		CursorLockToggleEnabled: true,
		CursorLockKey:           common.KeySpace,
		Bounds:                  []Bound{NoFlipBound()},
	}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// Validate checks that the configuration can drive the updaters.
//
// Returns:
//   - error: a wrapped ErrInvalidZoomBounds, ErrInvalidSensitivity or ErrInvalidBound, or nil
func (c *CameraConfig) Validate() error {
	if !finite(c.Zoom.Min) || !finite(c.Zoom.Max) || c.Zoom.Min <= 0 {
		return fmt.Errorf("%w: min %v max %v", ErrInvalidZoomBounds, c.Zoom.Min, c.Zoom.Max)
	}
	if c.Zoom.Min > c.Zoom.Max {
		return fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidZoomBounds, c.Zoom.Min, c.Zoom.Max)
	}
	for i, s := range c.Sensitivity {
		if !finite(s) || s == 0 {
			return fmt.Errorf("%w: axis %d is %v", ErrInvalidSensitivity, i, s)
		}
	}
	if !finite(c.ZoomSensitivity) {
		return fmt.Errorf("%w: zoom sensitivity is %v", ErrInvalidSensitivity, c.ZoomSensitivity)
	}
	for i, b := range c.Bounds {
		if b.Normal.LenSqr() == 0 {
			return fmt.Errorf("%w: bound %d has a zero normal", ErrInvalidBound, i)
		}
		if l := b.Normal.Len(); !mgl32.FloatEqualThreshold(l, 1, unitNormalEpsilon) {
			return fmt.Errorf("%w: bound %d normal has length %v, want 1", ErrInvalidBound, i, l)
		}
	}
	return nil
}

// unitNormalEpsilon is how far a bound normal's length may stray from 1.
const unitNormalEpsilon = 1e-4

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
