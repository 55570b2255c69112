package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraStateOption is a functional option for configuring a CameraState.
type CameraStateOption func(*cameraStateImpl)

// WithOrientation sets the initial orientation. The quaternion is normalized.
//
// Parameters:
//   - q: initial rotation
//
// Returns:
//   - CameraStateOption: functional option to set the orientation
func WithOrientation(q mgl32.Quat) CameraStateOption {
	return func(s *cameraStateImpl) {
		s.orientation = q.Normalize()
	}
}

// WithRadius sets the initial orbit radius (distance from target).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - CameraStateOption: functional option to set the radius
func WithRadius(radius float32) CameraStateOption {
	return func(s *cameraStateImpl) {
		s.radius = radius
	}
}

// WithYawPitch sets the initial orientation from a yaw about world Y followed by a pitch about local X.
//
// Parameters:
//   - yaw: rotation about world Y in radians
//   - pitch: rotation about local X in radians
//
// Returns:
//   - CameraStateOption: functional option to set the orientation
func WithYawPitch(yaw, pitch float32) CameraStateOption {
	return func(s *cameraStateImpl) {
		s.orientation = mgl32.QuatRotate(yaw, common.WorldUp).
			Mul(mgl32.QuatRotate(pitch, common.WorldRight))
	}
}
