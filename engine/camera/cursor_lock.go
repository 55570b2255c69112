package camera

import "github.com/Carmen-Shannon/oxy-orbit/common"

// ToggleCursorLock flips cfg.CursorLockActive when the toggle is enabled and its key was pressed.
//
// Parameters:
//   - cfg: the camera configuration, or nil when no camera exists
//   - pressed: keys pressed during the step
//
// Returns:
//   - bool: true if the lock state changed
func ToggleCursorLock(cfg *CameraConfig, pressed []common.Key) bool {
	if cfg == nil || !cfg.CursorLockToggleEnabled {
		return false
	}
	toggled := false
	for _, k := range pressed {
		if k == cfg.CursorLockKey {
			cfg.CursorLockActive = !cfg.CursorLockActive
			toggled = !toggled
		}
	}
	return toggled
}
