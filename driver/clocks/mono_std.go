//go:build !linux

package clocks

import (
	"time"

	"go.uber.org/zap"

	"example.com/chrono-time/base/timespec"
)

// monoAnchor gives Now a stable zero point. time.Since reads the Go
// runtime's monotonic clock, so readings are unaffected by wall clock
// adjustments.
var monoAnchor = time.Now()

// MonotonicClock samples the Go runtime's monotonic clock. Readings never
// run backward and never jump due to wall clock adjustments.
type MonotonicClock struct {
	Log *zap.Logger
}

func (c *MonotonicClock) Now() timespec.TimeSpec {
	return timespec.FromDuration(time.Since(monoAnchor))
}
