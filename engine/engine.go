package engine

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/systems"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// engine implements the Engine interface.
// Coordinates the fixed-rate tick goroutine and the window message loop.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	mu      *sync.Mutex
	running bool
	wg      sync.WaitGroup
	err     error

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	queue    *input.Queue
	viewport camera.Viewport

	ecs *ecs.ECS
	rig *systems.CameraRig

	profiler         *profiler.Profiler
	profilingEnabled bool

	logger *log.Logger

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
}

// Engine is the main entry point for the engine.
// Each tick it drains the input queue, runs the camera systems once and mirrors the camera's
// cursor lock onto the window.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Queue returns the input queue drained every tick.
	//
	// Returns:
	//   - *input.Queue: the event queue
	Queue() *input.Queue

	// ECS returns the ECS the camera systems are registered on.
	//
	// Returns:
	//   - *ecs.ECS: the entity component system
	ECS() *ecs.ECS

	// Rig returns the camera rig driving the systems.
	//
	// Returns:
	//   - *systems.CameraRig: the rig
	Rig() *systems.CameraRig

	// SpawnCamera validates cfg and creates the camera entity.
	//
	// Parameters:
	//   - cfg: camera configuration
	//   - state: initial transform, or nil for a default one
	//
	// Returns:
	//   - donburi.Entity: the created entity
	//   - error: a validation error from cfg.Validate
	SpawnCamera(cfg camera.CameraConfig, state camera.CameraState) (donburi.Entity, error)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called after the camera systems each tick.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Step runs one tick synchronously on the calling goroutine.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick, forwarded to the tick callback
	//
	// Returns:
	//   - error: the first fatal camera error, such as camera.ErrViewportUnavailable
	Step(deltaTime float32) error

	// Run starts the tick loop and blocks until the window closes or Quit is called.
	//
	// Returns:
	//   - error: the fatal error that stopped the engine, or nil
	Run() error

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Err returns the fatal error that stopped the engine, or nil.
	Err() error
}

// NewEngine creates a new Engine instance with the provided options.
// The input queue defaults to the window's queue and the viewport to the window itself.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		mu:               &sync.Mutex{},
		running:          false,
		wg:               sync.WaitGroup{},
		profilingEnabled: false,
		logger:           log.New(os.Stderr, "", log.LstdFlags),
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.queue == nil {
		if e.window != nil {
			e.queue = e.window.Queue()
		} else {
			e.queue = input.NewQueue()
		}
	}
	if e.viewport == nil && e.window != nil {
		e.viewport = e.window
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	e.ecs = ecs.NewECS(donburi.NewWorld())
	e.rig = systems.NewCameraRig(e.viewport, e.queue)
	e.rig.Register(e.ecs)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Queue() *input.Queue {
	return e.queue
}

func (e *engine) ECS() *ecs.ECS {
	return e.ecs
}

func (e *engine) Rig() *systems.CameraRig {
	return e.rig
}

func (e *engine) SpawnCamera(cfg camera.CameraConfig, state camera.CameraState) (donburi.Entity, error) {
	if err := cfg.Validate(); err != nil {
		var none donburi.Entity
		return none, fmt.Errorf("spawn camera: %w", err)
	}
	return systems.SpawnCamera(e.ecs.World, cfg, state), nil
}

func (e *engine) Step(deltaTime float32) error {
	e.rig.SetFrame(e.queue.Drain())
	e.ecs.Update()
	if err := e.rig.Err(); err != nil {
		return err
	}

	if e.window != nil {
		e.window.SetCursorLocked(e.rig.CursorLocked(e.ecs))
	}

	e.mu.Lock()
	profiling := e.profilingEnabled
	callback := e.tickCallback
	e.mu.Unlock()

	if profiling {
		stats := e.rig.Stats()
		e.profiler.Tick(profiler.Sample{
			OrbitCommitted: stats.OrbitCommitted,
			OrbitRejected:  stats.OrbitRejected,
			ZoomCommitted:  stats.ZoomCommitted,
		})
	}

	if callback != nil {
		callback(deltaTime)
	}
	return nil
}

func (e *engine) Run() error {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		// The window must be closed on the main thread, so the message loop watches for quit.
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				_ = e.window.Close()
			default:
			}
		})
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}

	e.wg.Wait()
	return e.Err()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// fail records a fatal error, logs it and stops the engine.
func (e *engine) fail(err error) {
	e.mu.Lock()
	if e.err == nil {
		e.err = err
	}
	e.mu.Unlock()
	e.logger.Printf("[Engine] fatal: %v", err)
	e.signalQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Steps the camera systems at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed or a step fails.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	// Recover from panics inside the tick goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			e.fail(fmt.Errorf("tick goroutine panic: %v", r))
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if err := e.Step(dt); err != nil {
				e.fail(err)
				return
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	e.mu.Unlock()

	if !running {
		e.engineTickRate = newRate
		return
	}

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each engine tick.
// Safe to call while the engine is running; the next tick picks it up.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}
