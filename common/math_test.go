package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRotateOffset_Identity(t *testing.T) {
	pos := RotateOffset(mgl32.QuatIdent(), 10)
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, pos)
}

func TestRotateOffset_YawQuarterTurn(t *testing.T) {
	q := mgl32.QuatRotate(math.Pi/2, WorldUp)
	pos := RotateOffset(q, 4)

	// +90 degrees about Y carries +Z onto +X.
	assert.InDelta(t, 4, pos.X(), 1e-5)
	assert.InDelta(t, 0, pos.Y(), 1e-5)
	assert.InDelta(t, 0, pos.Z(), 1e-5)
}

func TestRotateOffset_Deterministic(t *testing.T) {
	q := mgl32.QuatRotate(0.3, mgl32.Vec3{0.2, 0.9, 0.1}.Normalize())
	assert.Equal(t, RotateOffset(q, 7.5), RotateOffset(q, 7.5))
}

func TestUpVector_PitchPastVertical(t *testing.T) {
	q := mgl32.QuatRotate(-float32(math.Acos(-0.1)), WorldRight)
	assert.InDelta(t, -0.1, UpVector(q).Y(), 1e-5)
}

func TestBuildTransform_TranslatesAndRotates(t *testing.T) {
	q := mgl32.QuatRotate(math.Pi/2, WorldUp)
	m := BuildTransform(mgl32.Vec3{1, 2, 3}, q)

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 1, origin.X(), 1e-5)
	assert.InDelta(t, 2, origin.Y(), 1e-5)
	assert.InDelta(t, 3, origin.Z(), 1e-5)

	forward := m.Mul4x1(mgl32.Vec4{0, 0, 1, 0})
	assert.InDelta(t, 1, forward.X(), 1e-5)
	assert.InDelta(t, 0, forward.Z(), 1e-5)
}

func TestMulComponents(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{6, -2}, MulComponents(mgl32.Vec2{2, 1}, mgl32.Vec2{3, -2}))
}

func TestMouseButton_String(t *testing.T) {
	assert.Equal(t, "left", MouseButtonLeft.String())
	assert.Equal(t, "right", MouseButtonRight.String())
	assert.Equal(t, "middle", MouseButtonMiddle.String())
	assert.Equal(t, "button", MouseButton(7).String())
}
