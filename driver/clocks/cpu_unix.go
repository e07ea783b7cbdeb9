//go:build darwin || freebsd

package clocks

import (
	"time"

	"go.uber.org/zap"

	"golang.org/x/sys/unix"

	"example.com/chrono-time/base/timespec"
)

// CPUClock samples the combined user and system CPU time consumed by this
// process, as reported by getrusage.
type CPUClock struct {
	Log *zap.Logger
}

func (c *CPUClock) Now() timespec.TimeSpec {
	var ru unix.Rusage
	err := unix.Getrusage(unix.RUSAGE_SELF, &ru)
	if err != nil {
		c.Log.Error("unix.Getrusage failed", zap.Error(err))
		return timespec.TimeSpec{}
	}
	user := time.Duration(ru.Utime.Sec)*time.Second + time.Duration(ru.Utime.Usec)*time.Microsecond
	sys := time.Duration(ru.Stime.Sec)*time.Second + time.Duration(ru.Stime.Usec)*time.Microsecond
	return timespec.FromDuration(user + sys)
}

// Resolution reports the granularity of getrusage timestamps.
func (c *CPUClock) Resolution() time.Duration {
	return time.Microsecond
}
