package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// BoundTolerance is how far behind a bound plane a candidate position may sit and still pass.
// Negative so that grazing contact is accepted despite floating-point error.
const BoundTolerance float32 = -0.001

// Bound is an orientation constraint a candidate camera orientation must satisfy.
//
// A Bound with Normal == -Y and Point == origin is the no-flip bound: it requires the camera's
// up vector to keep pointing upward. Every other Bound is a half-space test requiring the
// candidate camera position to lie on the side of the plane (through Point) that Normal points into.
type Bound struct {
	// Normal is the unit normal of the bound plane.
	Normal mgl32.Vec3

	// Point is any point on the bound plane.
	Point mgl32.Vec3
}

var noFlipNormal = mgl32.Vec3{0, -1, 0}

// NoFlipBound returns the bound that keeps the camera from flipping upside-down.
//
// Returns:
//   - Bound: {Normal: -Y, Point: origin}
func NoFlipBound() Bound {
	return Bound{Normal: noFlipNormal}
}

// PlaneBound returns a half-space bound through point whose normal is normalized.
// Note that PlaneBound(-Y, origin) yields the no-flip bound, not a ceiling at y = 0.
//
// Parameters:
//   - normal: direction the allowed half-space lies in (any non-zero length)
//   - point: a point on the plane
//
// Returns:
//   - Bound: the half-space bound
func PlaneBound(normal, point mgl32.Vec3) Bound {
	return Bound{Normal: normal.Normalize(), Point: point}
}

// FloorBound returns a bound keeping the camera above the horizontal plane y = height.
//
// Parameters:
//   - height: the floor height
//
// Returns:
//   - Bound: the floor bound
func FloorBound(height float32) Bound {
	return Bound{Normal: common.WorldUp, Point: mgl32.Vec3{0, height, 0}}
}

// IsNoFlip reports whether b is the special no-flip bound. Matching is exact.
func (b Bound) IsNoFlip() bool {
	return b.Normal == noFlipNormal && b.Point == (mgl32.Vec3{})
}

// Allows reports whether a camera with the candidate orientation at the given radius satisfies b.
//
// Parameters:
//   - candidate: the candidate orientation
//   - radius: current orbit radius
//
// Returns:
//   - bool: true if the candidate passes this bound
func (b Bound) Allows(candidate mgl32.Quat, radius float32) bool {
	if b.IsNoFlip() {
		return common.UpVector(candidate).Y() > 0
	}
	toCam := common.RotateOffset(candidate, radius).Sub(b.Point)
	return b.Normal.Dot(toCam) >= BoundTolerance
}

// PassesBounds evaluates bounds in order and stops at the first failure.
//
// Parameters:
//   - bounds: the ordered constraints
//   - candidate: the candidate orientation
//   - radius: current orbit radius
//
// Returns:
//   - bool: true if every bound allows the candidate (vacuously true for no bounds)
func PassesBounds(bounds []Bound, candidate mgl32.Quat, radius float32) bool {
	for _, b := range bounds {
		if !b.Allows(candidate, radius) {
			return false
		}
	}
	return true
}
