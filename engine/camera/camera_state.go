package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is the mutable transform of an orbit camera.
// Position is derived: it is recomputed from orientation and radius after every mutation and
// cannot be set on its own.
type CameraState interface {
	// Orientation returns the camera's rotation.
	//
	// Returns:
	//   - mgl32.Quat: the orientation quaternion
	Orientation() mgl32.Quat

	// Position returns the camera position relative to the orbit target.
	//
	// Returns:
	//   - mgl32.Vec3: rotation_matrix(orientation) * (0, 0, radius)
	Position() mgl32.Vec3

	// Radius returns the distance from the orbit target.
	//
	// Returns:
	//   - float32: current orbit radius
	Radius() float32

	// Transform returns the rigid transform a renderer reads: translate(position) * rotate(orientation).
	//
	// Returns:
	//   - mgl32.Mat4: the camera-to-world matrix
	Transform() mgl32.Mat4

	// Modify performs an exclusive read-modify-write of orientation and radius.
	// fn receives the current values and returns the values to commit. Position is recomputed
	// before the lock is released.
	//
	// Parameters:
	//   - fn: the update to apply
	Modify(fn func(orientation mgl32.Quat, radius float32) (mgl32.Quat, float32))

	// Refresh recomputes position from the current orientation and radius.
	Refresh()
}

// cameraStateImpl is the single implementation of CameraState.
type cameraStateImpl struct {
	mu *sync.Mutex

	orientation mgl32.Quat
	radius      float32

	// position is derived from orientation and radius
	position mgl32.Vec3
}

var _ CameraState = &cameraStateImpl{}

// NewCameraState creates a CameraState at the identity orientation with a radius of 5.
//
// Parameters:
//   - options: functional options to configure the initial transform
//
// Returns:
//   - CameraState: the newly created state
func NewCameraState(options ...CameraStateOption) CameraState {
	s := &cameraStateImpl{
		mu:          &sync.Mutex{},
		orientation: mgl32.QuatIdent(),
		radius:      5.0,
	}
	for _, option := range options {
		option(s)
	}
	s.updatePosition()
	return s
}

// updatePosition recomputes the position from orientation and radius.
// Caller must hold the mutex.
func (s *cameraStateImpl) updatePosition() {
	s.position = common.RotateOffset(s.orientation, s.radius)
}

func (s *cameraStateImpl) Orientation() mgl32.Quat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orientation
}

func (s *cameraStateImpl) Position() mgl32.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *cameraStateImpl) Radius() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.radius
}

func (s *cameraStateImpl) Transform() mgl32.Mat4 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return common.BuildTransform(s.position, s.orientation)
}

func (s *cameraStateImpl) Modify(fn func(orientation mgl32.Quat, radius float32) (mgl32.Quat, float32)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orientation, s.radius = fn(s.orientation, s.radius)
	s.updatePosition()
}

func (s *cameraStateImpl) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updatePosition()
}

// RefreshPosition recomputes the camera position from its current orientation and radius.
// It runs at the end of every step so position never lags a radius change when orbit was gated off.
//
// Parameters:
//   - state: the camera transform, or nil when no camera exists
func RefreshPosition(state CameraState) {
	if state == nil {
		return
	}
	state.Refresh()
}
