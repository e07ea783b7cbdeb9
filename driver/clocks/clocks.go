// Package clocks provides platform-backed time sources for the chrono
// subsystem.
package clocks

import (
	"go.uber.org/zap"

	"example.com/chrono-time/base/timesource"
	"example.com/chrono-time/base/zaplog"
)

var (
	_ timesource.TimeSource = (*MonotonicClock)(nil)
	_ timesource.TimeSource = (*CPUClock)(nil)
)

func NewMonotonicClock(log *zap.Logger) *MonotonicClock {
	if log == nil {
		log = zaplog.Logger()
	}
	return &MonotonicClock{Log: log}
}

func NewCPUClock(log *zap.Logger) *CPUClock {
	if log == nil {
		log = zaplog.Logger()
	}
	return &CPUClock{Log: log}
}
