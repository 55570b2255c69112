package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraConfig_Defaults(t *testing.T) {
	cfg := NewCameraConfig()

	assert.Equal(t, mgl32.Vec2{1, 1}, cfg.Sensitivity)
	assert.True(t, cfg.ZoomEnabled)
	assert.Equal(t, float32(1), cfg.ZoomSensitivity)
	assert.Equal(t, ZoomBounds{Min: 1.5, Max: 30}, cfg.Zoom)
	assert.False(t, cfg.OrbitButtonEnabled)
	assert.Equal(t, common.MouseButtonRight, cfg.OrbitButton)
	assert.True(t, cfg.CursorLockActive)
	assert.True(t, cfg.CursorLockToggleEnabled)
	assert.Equal(t, common.KeySpace, cfg.CursorLockKey)
	require.Len(t, cfg.Bounds, 1)
	assert.True(t, cfg.Bounds[0].IsNoFlip())
	assert.NoError(t, cfg.Validate())
}

func TestNewCameraConfig_Options(t *testing.T) {
	cfg := NewCameraConfig(
		WithSensitivity(0.5, 2),
		WithZoomSensitivity(3),
		WithZoomBounds(4, 40),
		WithZoomEnabled(false),
		WithOrbitButton(common.MouseButtonLeft),
		WithCursorLock(false),
		WithCursorLockToggle(false, common.KeyTab),
		WithBound(FloorBound(0)),
	)

	assert.Equal(t, mgl32.Vec2{0.5, 2}, cfg.Sensitivity)
	assert.Equal(t, float32(3), cfg.ZoomSensitivity)
	assert.Equal(t, ZoomBounds{Min: 4, Max: 40}, cfg.Zoom)
	assert.False(t, cfg.ZoomEnabled)
	assert.True(t, cfg.OrbitButtonEnabled)
	assert.Equal(t, common.MouseButtonLeft, cfg.OrbitButton)
	assert.False(t, cfg.CursorLockActive)
	assert.False(t, cfg.CursorLockToggleEnabled)
	assert.Equal(t, common.KeyTab, cfg.CursorLockKey)
	require.Len(t, cfg.Bounds, 2)
	assert.True(t, cfg.Bounds[0].IsNoFlip())
	assert.Equal(t, FloorBound(0), cfg.Bounds[1])
}

func TestWithBounds_ReplacesAndCopies(t *testing.T) {
	bounds := []Bound{FloorBound(1)}
	cfg := NewCameraConfig(WithBounds(bounds...))
	bounds[0] = NoFlipBound()

	require.Len(t, cfg.Bounds, 1)
	assert.Equal(t, FloorBound(1), cfg.Bounds[0])

	empty := NewCameraConfig(WithBounds())
	assert.Empty(t, empty.Bounds)
}

func TestCameraConfig_Validate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name    string
		options []CameraConfigOption
		wantErr error
	}{
		{"min above max", []CameraConfigOption{WithZoomBounds(10, 5)}, ErrInvalidZoomBounds},
		{"zero min", []CameraConfigOption{WithZoomBounds(0, 5)}, ErrInvalidZoomBounds},
		{"infinite max", []CameraConfigOption{WithZoomBounds(1, inf)}, ErrInvalidZoomBounds},
		{"zero sensitivity", []CameraConfigOption{WithSensitivity(0, 1)}, ErrInvalidSensitivity},
		{"nan sensitivity", []CameraConfigOption{WithSensitivity(1, nan)}, ErrInvalidSensitivity},
		{"nan zoom sensitivity", []CameraConfigOption{WithZoomSensitivity(nan)}, ErrInvalidSensitivity},
		{"zero normal", []CameraConfigOption{WithBound(Bound{})}, ErrInvalidBound},
		{"non-unit normal", []CameraConfigOption{WithBound(Bound{Normal: mgl32.Vec3{0, 2, 0}})}, ErrInvalidBound},
		{"normalized plane", []CameraConfigOption{WithBound(PlaneBound(mgl32.Vec3{3, 4, 0}, mgl32.Vec3{}))}, nil},
		{"equal limits", []CameraConfigOption{WithZoomBounds(3, 3)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewCameraConfig(tt.options...)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
