package chrono

import (
	"go.uber.org/zap"

	"example.com/chrono-time/driver/clocks"
)

// NewMonotonic returns a chrono backed by the monotonic clock. It measures
// real elapsed time and is immune to wall clock adjustments.
func NewMonotonic(log *zap.Logger) *Chrono {
	return New(clocks.NewMonotonicClock(log))
}

// NewCPU returns a chrono backed by the process CPU time clock. It measures
// time the process spent executing, excluding blocked or preempted
// intervals, which makes it suitable for profiling compute-bound work.
func NewCPU(log *zap.Logger) *Chrono {
	return New(clocks.NewCPUClock(log))
}
