package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSumMotion(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{}, SumMotion(nil))
	assert.Equal(t, mgl32.Vec2{4, -1}, SumMotion([]mgl32.Vec2{{1, 2}, {3, -3}}))
}

func TestSumScroll(t *testing.T) {
	assert.Equal(t, float32(0), SumScroll(nil))
	assert.Equal(t, float32(1.5), SumScroll([]float32{1, -0.5, 1}))
}

func TestQueue_DrainAggregatesAndClears(t *testing.T) {
	q := NewQueue()
	q.PushMotion(3, 4)
	q.PushMotion(-1, 1)
	q.PushScroll(1)
	q.PushScroll(2)
	q.PushKey(common.KeySpace)

	f := q.Drain()
	assert.Equal(t, mgl32.Vec2{2, 5}, f.Motion)
	assert.Equal(t, float32(3), f.Scroll)
	assert.True(t, f.KeyPressed(common.KeySpace))
	assert.False(t, f.KeyPressed(common.KeyEsc))

	empty := q.Drain()
	assert.True(t, empty.Idle())
}

func TestQueue_DrainKeepsPreviousFrameKeys(t *testing.T) {
	q := NewQueue()
	q.PushKey(common.KeyL)
	first := q.Drain()
	q.PushKey(common.KeyM)
	second := q.Drain()

	assert.Equal(t, []common.Key{common.KeyL}, first.Keys)
	assert.Equal(t, []common.Key{common.KeyM}, second.Keys)
}

func TestQueue_ButtonStateSurvivesDrain(t *testing.T) {
	q := NewQueue()
	assert.False(t, q.Pressed(common.MouseButtonRight))

	q.SetButton(common.MouseButtonRight, true)
	q.Drain()
	assert.True(t, q.Pressed(common.MouseButtonRight))
	assert.False(t, q.Pressed(common.MouseButtonLeft))

	q.SetButton(common.MouseButtonRight, false)
	assert.False(t, q.Pressed(common.MouseButtonRight))
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.PushMotion(1, 0)
				q.PushScroll(1)
			}
		}()
	}
	wg.Wait()

	f := q.Drain()
	assert.Equal(t, float32(800), f.Motion.X())
	assert.Equal(t, float32(800), f.Scroll)
}
