package systems

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/yohamta/donburi/ecs"
)

// RigStats counts what the rig did across steps.
type RigStats struct {
	Steps          uint64
	IdleSteps      uint64
	OrbitCommitted uint64
	OrbitRejected  uint64
	ZoomCommitted  uint64
	LockToggles    uint64
}

// CameraRig feeds one step of host input to the camera systems.
// Call SetFrame before each ecs.Update.
type CameraRig struct {
	mu *sync.Mutex

	frame    input.Frame
	viewport camera.Viewport
	buttons  camera.ButtonState

	stats RigStats
	err   error
}

// NewCameraRig creates a rig reading the viewport and button state from the host.
//
// Parameters:
//   - viewport: viewport size source
//   - buttons: mouse button state source
//
// Returns:
//   - *CameraRig: the newly created rig
func NewCameraRig(viewport camera.Viewport, buttons camera.ButtonState) *CameraRig {
	return &CameraRig{
		mu:       &sync.Mutex{},
		viewport: viewport,
		buttons:  buttons,
	}
}

// Register adds the camera systems to e in execution order:
// cursor-lock toggle, orbit, zoom, position refresh.
//
// Parameters:
//   - e: the ECS to add systems to
func (r *CameraRig) Register(e *ecs.ECS) {
	e.AddSystem(r.cursorLockSystem)
	e.AddSystem(r.orbitSystem)
	e.AddSystem(r.zoomSystem)
	e.AddSystem(r.refreshSystem)
}

// SetFrame sets the aggregated input the next step consumes.
//
// Parameters:
//   - f: the drained input frame
func (r *CameraRig) SetFrame(f input.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame = f
	r.stats.Steps++
	if f.Idle() {
		r.stats.IdleSteps++
	}
}

// Err returns the first fatal error a system hit, or nil.
func (r *CameraRig) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Stats returns a snapshot of the rig counters.
func (r *CameraRig) Stats() RigStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// CursorLocked reports the camera's cursor lock state, or false when no camera exists.
//
// Parameters:
//   - e: the ECS holding the camera
//
// Returns:
//   - bool: the camera's CursorLockActive flag
func (r *CameraRig) CursorLocked(e *ecs.ECS) bool {
	cfg, _ := findCamera(e.World)
	return cfg != nil && cfg.CursorLockActive
}

func (r *CameraRig) cursorLockSystem(e *ecs.ECS) {
	cfg, _ := findCamera(e.World)

	r.mu.Lock()
	defer r.mu.Unlock()
	if camera.ToggleCursorLock(cfg, r.frame.Keys) {
		r.stats.LockToggles++
	}
}

func (r *CameraRig) orbitSystem(e *ecs.ECS) {
	cfg, state := findCamera(e.World)
	if !camera.OrbitCondition(cfg) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	res, err := camera.UpdateOrbit(state, cfg, r.frame.Motion, r.viewport, r.buttons)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("orbit system: %w", err)
		}
		return
	}
	switch res {
	case camera.OrbitCommitted:
		r.stats.OrbitCommitted++
	case camera.OrbitRejected:
		r.stats.OrbitRejected++
	}
}

func (r *CameraRig) zoomSystem(e *ecs.ECS) {
	cfg, state := findCamera(e.World)
	if !camera.ZoomCondition(cfg) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if camera.UpdateZoom(state, cfg, r.frame.Scroll) {
		r.stats.ZoomCommitted++
	}
}

func (r *CameraRig) refreshSystem(e *ecs.ECS) {
	_, state := findCamera(e.World)
	camera.RefreshPosition(state)
}
