package timebase

import (
	"sync/atomic"

	"example.com/chrono-time/base/timesource"
	"example.com/chrono-time/base/timespec"
)

var src atomic.Value

// RegisterTimeSource installs s as the process-wide default time source.
// It may be called at most once.
func RegisterTimeSource(s timesource.TimeSource) {
	if s == nil {
		panic("time source must not be nil")
	}
	swapped := src.CompareAndSwap(nil, s)
	if !swapped {
		panic("time source already registered")
	}
}

func Now() timespec.TimeSpec {
	s := src.Load().(timesource.TimeSource)
	if s == nil {
		panic("no time source registered")
	}
	return s.Now()
}
