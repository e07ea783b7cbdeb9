//go:build linux

package clocks

import (
	"time"

	"github.com/tklauser/go-sysconf"

	"go.uber.org/zap"

	"golang.org/x/sys/unix"

	"example.com/chrono-time/base/timespec"
)

// CPUClock samples CLOCK_PROCESS_CPUTIME_ID: time the scheduler actually
// allocated to this process, blocked and preempted intervals excluded.
type CPUClock struct {
	Log *zap.Logger
}

func (c *CPUClock) Now() timespec.TimeSpec {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts)
	if err != nil {
		c.Log.Error("unix.ClockGettime failed", zap.Error(err))
		return timespec.TimeSpec{}
	}
	sec, nsec := ts.Unix()
	return timespec.TimeSpec{Sec: sec, Nsec: int32(nsec)}
}

// Resolution reports the kernel tick granularity backing CPU time
// accounting, or 0 if it cannot be determined.
func (c *CPUClock) Resolution() time.Duration {
	ticksPerSecond, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		c.Log.Error("sysconf.Sysconf failed", zap.Error(err))
		return 0
	}
	return time.Second / time.Duration(ticksPerSecond)
}
