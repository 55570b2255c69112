// Package systems binds the camera core to a donburi ECS world.
// The world owns the camera entity; the systems look it up each step and run the orbit,
// zoom and position-refresh updaters against it.
package systems

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// CameraTransformData holds the camera's mutable transform.
type CameraTransformData struct {
	State camera.CameraState
}

// ThirdPersonCamera marks the camera entity and carries its configuration.
var ThirdPersonCamera = donburi.NewComponentType[camera.CameraConfig]()

// CameraTransform carries the camera entity's transform.
var CameraTransform = donburi.NewComponentType[CameraTransformData]()

var cameraQuery = donburi.NewQuery(filter.Contains(ThirdPersonCamera, CameraTransform))

// SpawnCamera creates the camera entity.
// A nil state is replaced with a fresh CameraState whose radius is clamped to the config's zoom bounds.
//
// Parameters:
//   - world: the ECS world
//   - cfg: camera configuration
//   - state: initial transform, or nil
//
// Returns:
//   - donburi.Entity: the created entity
func SpawnCamera(world donburi.World, cfg camera.CameraConfig, state camera.CameraState) donburi.Entity {
	if state == nil {
		state = camera.NewCameraState(camera.WithRadius(cfg.Zoom.Clamp(5)))
	}
	entity := world.Create(ThirdPersonCamera, CameraTransform)
	entry := world.Entry(entity)
	ThirdPersonCamera.Set(entry, &cfg)
	CameraTransform.Set(entry, &CameraTransformData{State: state})
	return entity
}

// findCamera returns the camera entity's config and state.
// Both are nil unless the world holds exactly one camera.
func findCamera(world donburi.World) (*camera.CameraConfig, camera.CameraState) {
	if cameraQuery.Count(world) != 1 {
		return nil, nil
	}
	entry, ok := cameraQuery.First(world)
	if !ok {
		return nil, nil
	}
	return ThirdPersonCamera.Get(entry), CameraTransform.Get(entry).State
}
