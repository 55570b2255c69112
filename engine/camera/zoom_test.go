package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestZoomCondition(t *testing.T) {
	assert.True(t, ZoomCondition(nil), "missing camera fails open")

	cfg := NewCameraConfig()
	assert.True(t, ZoomCondition(&cfg))

	cfg.ZoomEnabled = false
	assert.False(t, ZoomCondition(&cfg))

	cfg.ZoomEnabled = true
	cfg.CursorLockActive = false
	assert.False(t, ZoomCondition(&cfg))
}

func TestUpdateZoom_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
		scroll float32
		want   float32
	}{
		{"step in", 10, 1, 9},
		{"step out", 10, -1, 11},
		{"clamped to min", 1, 50, 2},
		{"clamped to max", 40, -10, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewCameraConfig(WithZoomBounds(2, 50), WithZoomSensitivity(1))
			state := NewCameraState(WithRadius(tt.radius))

			assert.True(t, UpdateZoom(state, &cfg, tt.scroll))
			assert.InDelta(t, tt.want, state.Radius(), 1e-5)
		})
	}
}

func TestUpdateZoom_MinIsExact(t *testing.T) {
	cfg := NewCameraConfig(WithZoomBounds(2, 50))
	state := NewCameraState(WithRadius(1))

	UpdateZoom(state, &cfg, 50)
	assert.Equal(t, float32(2), state.Radius())
}

func TestUpdateZoom_RadiusAlwaysClamped(t *testing.T) {
	scrolls := []float32{-1000, -25, -3, -0.5, 0.01, 0.5, 3, 9.99, 10, 25, 1000}
	radii := []float32{0.1, 2, 7.3, 50, 400}
	sensitivities := []float32{0.1, 1, 4}

	for _, s := range scrolls {
		for _, r := range radii {
			for _, zs := range sensitivities {
				cfg := NewCameraConfig(WithZoomBounds(2, 50), WithZoomSensitivity(zs))
				state := NewCameraState(WithRadius(r))
				UpdateZoom(state, &cfg, s)

				got := state.Radius()
				assert.GreaterOrEqual(t, got, float32(2), "scroll %v radius %v sens %v", s, r, zs)
				assert.LessOrEqual(t, got, float32(50), "scroll %v radius %v sens %v", s, r, zs)
			}
		}
	}
}

func TestUpdateZoom_NoOp(t *testing.T) {
	cfg := NewCameraConfig()
	state := NewCameraState(WithRadius(100))

	assert.False(t, UpdateZoom(state, &cfg, 0))
	assert.Equal(t, float32(100), state.Radius(), "zero scroll leaves an out-of-range radius alone")

	assert.False(t, UpdateZoom(nil, &cfg, 1))
	assert.False(t, UpdateZoom(state, nil, 1))
}

func TestUpdateZoom_PositionFollowsRadius(t *testing.T) {
	cfg := NewCameraConfig(WithZoomBounds(1, 100))
	state := NewCameraState(WithRadius(20), WithYawPitch(0.7, -0.4))

	UpdateZoom(state, &cfg, 2)

	assert.InDelta(t, 16, state.Radius(), 1e-5)
	assert.Equal(t, common.RotateOffset(state.Orientation(), state.Radius()), state.Position())
	assert.InDelta(t, 16, state.Position().Len(), 1e-4)
}

func TestZoomRadius(t *testing.T) {
	bounds := ZoomBounds{Min: 1, Max: 10}
	assert.InDelta(t, 4.5, ZoomRadius(5, 1, 1, bounds), 1e-6)
	assert.InDelta(t, 4, ZoomRadius(5, 1, 2, bounds), 1e-6)
	assert.Equal(t, float32(10), ZoomRadius(9, -5, 1, bounds))
}

func TestIdempotenceOnZeroInput(t *testing.T) {
	cfg := NewCameraConfig()
	state := NewCameraState(WithRadius(12), WithOrientation(mgl32.QuatRotate(0.25, mgl32.Vec3{0, 1, 0})))
	q, r, p := state.Orientation(), state.Radius(), state.Position()

	_, err := UpdateOrbit(state, &cfg, mgl32.Vec2{}, square, nil)
	assert.NoError(t, err)
	UpdateZoom(state, &cfg, 0)
	RefreshPosition(state)

	assert.Equal(t, q, state.Orientation())
	assert.Equal(t, r, state.Radius())
	assert.Equal(t, p, state.Position())
}
