package profiler

import (
	"log"
	"os"
	"runtime"
	"time"
)

// Sample is a cumulative snapshot of camera activity, taken once per tick.
type Sample struct {
	OrbitCommitted uint64
	OrbitRejected  uint64
	ZoomCommitted  uint64
}

// Profiler tracks tick rate, camera activity and heap usage.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	last           Sample
	memStats       runtime.MemStats

	logger *log.Logger
	now    func() time.Time
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithLogger sets the destination logger.
//
// Parameters:
//   - logger: the logger to write stats to
//
// Returns:
//   - ProfilerOption: functional option to set the logger
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// WithClock replaces time.Now, for deterministic intervals.
//
// Parameters:
//   - now: the clock function
//
// Returns:
//   - ProfilerOption: functional option to set the clock
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second; output goes to stderr.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		logger:         log.New(os.Stderr, "", log.LstdFlags),
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per engine tick with the current cumulative counters.
// Logs the tick rate and per-interval orbit/zoom activity when the update interval has elapsed.
//
// Parameters:
//   - s: cumulative camera counters
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(s Sample) bool {
	p.tickCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()
	committed := s.OrbitCommitted - p.last.OrbitCommitted
	rejected := s.OrbitRejected - p.last.OrbitRejected
	zooms := s.ZoomCommitted - p.last.ZoomCommitted

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	p.logger.Printf("[Profiler] TPS: %.2f | Orbit: %d committed, %d rejected | Zoom: %d | Heap: %.2f MB",
		tps, committed, rejected, zooms, heapMB)

	p.tickCount = 0
	p.lastTime = currentTime
	p.last = s
	return true
}
