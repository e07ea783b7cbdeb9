//go:build linux

package clocks

import (
	"go.uber.org/zap"

	"golang.org/x/sys/unix"

	"example.com/chrono-time/base/timespec"
)

// MonotonicClock samples CLOCK_MONOTONIC. Readings never run backward and
// never jump due to wall clock adjustments.
type MonotonicClock struct {
	Log *zap.Logger
}

func (c *MonotonicClock) Now() timespec.TimeSpec {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if err != nil {
		c.Log.Error("unix.ClockGettime failed", zap.Error(err))
		return timespec.TimeSpec{}
	}
	sec, nsec := ts.Unix()
	return timespec.TimeSpec{Sec: sec, Nsec: int32(nsec)}
}
