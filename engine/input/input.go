// Package input aggregates raw pointer, scroll, button and key events into one Frame per simulation step.
package input

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the aggregated input for one step.
type Frame struct {
	// Motion is the sum of all pointer-motion deltas received since the previous step.
	Motion mgl32.Vec2

	// Scroll is the sum of all vertical scroll components received since the previous step.
	Scroll float32

	// Keys holds every key pressed since the previous step, in arrival order.
	Keys []common.Key
}

// KeyPressed reports whether the key was pressed during the step.
//
// Parameters:
//   - key: the virtual key code to look up
//
// Returns:
//   - bool: true if the key appears in the frame
func (f Frame) KeyPressed(key common.Key) bool {
	return slices.Contains(f.Keys, key)
}

// Idle reports whether the frame carries no motion, no scroll and no key presses.
func (f Frame) Idle() bool {
	return f.Motion.LenSqr() == 0 && f.Scroll == 0 && len(f.Keys) == 0
}

// SumMotion returns the sum of the given pointer deltas, or the zero vector when there are none.
//
// Parameters:
//   - deltas: raw pointer-motion deltas
//
// Returns:
//   - mgl32.Vec2: the aggregated delta
func SumMotion(deltas []mgl32.Vec2) mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range deltas {
		sum = sum.Add(d)
	}
	return sum
}

// SumScroll returns the sum of the given scroll deltas, or zero when there are none.
//
// Parameters:
//   - deltas: raw vertical scroll components
//
// Returns:
//   - float32: the aggregated scroll
func SumScroll(deltas []float32) float32 {
	var sum float32
	for _, d := range deltas {
		sum += d
	}
	return sum
}
