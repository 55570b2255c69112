package camera

import "errors"

var (
	// ErrViewportUnavailable is returned by UpdateOrbit when a rotation must be applied but the
	// viewport cannot be queried. It indicates missing host infrastructure and should be treated as fatal.
	ErrViewportUnavailable = errors.New("viewport unavailable")

	// ErrInvalidZoomBounds is returned by CameraConfig.Validate when the zoom limits are unusable.
	ErrInvalidZoomBounds = errors.New("invalid zoom bounds")

	// ErrInvalidSensitivity is returned by CameraConfig.Validate for zero or non-finite sensitivities.
	ErrInvalidSensitivity = errors.New("invalid sensitivity")

	// ErrInvalidBound is returned by CameraConfig.Validate for bounds whose normal is not unit length.
	ErrInvalidBound = errors.New("invalid bound")
)
