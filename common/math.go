// Package common contains the math helpers and input codes shared by the camera core and its host adapters.
// They are plain functions and constants over mgl32 types, not interface-wrapped structs.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space vertical axis (+Y).
var WorldUp = mgl32.Vec3{0, 1, 0}

// WorldRight is the world-space horizontal axis (+X), used as the local pitch axis.
var WorldRight = mgl32.Vec3{1, 0, 0}

// OrbitOffset returns the camera-space offset of an orbit camera before rotation: (0, 0, radius).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - mgl32.Vec3: the unrotated offset
func OrbitOffset(radius float32) mgl32.Vec3 {
	return mgl32.Vec3{0, 0, radius}
}

// RotateOffset applies the rotation matrix of q to (0, 0, radius).
// Every position derived from an orientation goes through this function so that two
// derivations from the same inputs compare exactly equal.
//
// Parameters:
//   - q: the unit orientation quaternion
//   - radius: distance from the orbit target
//
// Returns:
//   - mgl32.Vec3: the rotated offset, i.e. the camera position relative to the target
func RotateOffset(q mgl32.Quat, radius float32) mgl32.Vec3 {
	return q.Mat4().Mat3().Mul3x1(OrbitOffset(radius))
}

// UpVector returns q applied to world up.
//
// Parameters:
//   - q: the orientation quaternion
//
// Returns:
//   - mgl32.Vec3: the rotated up vector
func UpVector(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(WorldUp)
}

// BuildTransform constructs a 4x4 rigid transform from a position and an orientation.
// The result is T * R in column-major order, matching mgl32 conventions.
//
// Parameters:
//   - position: translation in world space
//   - orientation: rotation quaternion
//
// Returns:
//   - mgl32.Mat4: the combined transform
func BuildTransform(position mgl32.Vec3, orientation mgl32.Quat) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).Mul4(orientation.Mat4())
}

// MulComponents multiplies two 2D vectors component-wise.
//
// Parameters:
//   - a, b: the vectors to multiply
//
// Returns:
//   - mgl32.Vec2: {a.x*b.x, a.y*b.y}
func MulComponents(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a.X() * b.X(), a.Y() * b.Y()}
}
