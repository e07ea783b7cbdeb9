// Package chrono implements a reusable stopwatch with start/stop/resume/
// restart semantics on top of a pluggable time source.
package chrono

import (
	"example.com/chrono-time/base/timesource"
	"example.com/chrono-time/base/timespec"
)

type State int

const (
	Ready State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Chrono measures elapsed time as reported by its time source. The zero
// point is established by Start and carried across Stop/Resume cycles.
//
// A Chrono is not safe for concurrent use without external synchronization.
type Chrono struct {
	src   timesource.TimeSource
	state State
	mark  timespec.TimeSpec // sample taken at the most recent start/resume/restart
	acc   timespec.TimeSpec // elapsed time frozen at the most recent stop
}

// New returns a chrono in the ready state, backed by src.
func New(src timesource.TimeSource) *Chrono {
	if src == nil {
		panic("time source must not be nil")
	}
	return &Chrono{src: src}
}

func (c *Chrono) State() State {
	return c.state
}

// Start begins a measurement. It reports false, leaving the chrono
// unchanged, unless the chrono is in the ready state.
func (c *Chrono) Start() bool {
	if c.state != Ready {
		return false
	}
	c.mark = c.src.Now()
	c.state = Running
	return true
}

// Stop freezes the elapsed time. It reports false, leaving the chrono
// unchanged, unless the chrono is running.
func (c *Chrono) Stop() bool {
	if c.state != Running {
		return false
	}
	c.acc = c.src.Now().Sub(c.mark)
	c.state = Stopped
	return true
}

// Resume continues a stopped measurement; elapsed time picks up where it
// left off. It reports false, leaving the chrono unchanged, unless the
// chrono is stopped.
func (c *Chrono) Resume() bool {
	if c.state != Stopped {
		return false
	}
	c.mark = c.src.Now().Sub(c.acc)
	c.state = Running
	return true
}

// Restart discards accumulated time and begins a fresh measurement. It
// reports false on a chrono that was never started.
func (c *Chrono) Restart() bool {
	if c.state == Ready {
		return false
	}
	c.mark = c.src.Now()
	c.acc = timespec.TimeSpec{}
	c.state = Running
	return true
}

// ElapsedRaw returns the elapsed time. While running, every call re-samples
// the time source; while stopped, it returns the frozen value; before the
// first start, it returns the zero TimeSpec.
func (c *Chrono) ElapsedRaw() timespec.TimeSpec {
	switch c.state {
	case Running:
		return c.src.Now().Sub(c.mark)
	case Stopped:
		return c.acc
	default:
		return timespec.TimeSpec{}
	}
}

// Elapsed returns the elapsed time in seconds as a float64.
func (c *Chrono) Elapsed() float64 {
	return c.ElapsedRaw().Seconds()
}
