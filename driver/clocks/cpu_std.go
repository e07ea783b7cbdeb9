//go:build !linux && !darwin && !freebsd

package clocks

import (
	"time"

	"go.uber.org/zap"

	"example.com/chrono-time/base/timespec"
)

// CPUClock has no backing clock on this platform; it always reads zero.
type CPUClock struct {
	Log *zap.Logger
}

func (c *CPUClock) Now() timespec.TimeSpec {
	return timespec.TimeSpec{}
}

func (c *CPUClock) Resolution() time.Duration {
	return 0
}
