// Package timespec provides the seconds/nanoseconds pair used to represent
// time points and durations throughout the chrono subsystem.
package timespec

import (
	"cmp"
	"strconv"
	"time"

	"example.com/chrono-time/base/timemath"
)

const (
	nsecPerSec = 1_000_000_000

	// MaxPrecision is the number of fractional digits a nanosecond
	// resolution can carry.
	MaxPrecision = 9
)

// TimeSpec holds a time point or a duration. The nanoseconds component is
// always in [0, 1e9); negative durations borrow from the seconds component.
type TimeSpec struct {
	Sec  int64
	Nsec int32
}

func FromDuration(d time.Duration) TimeSpec {
	sec := int64(d / time.Second)
	nsec := int64(d % time.Second)
	if nsec < 0 {
		sec--
		nsec += nsecPerSec
	}
	return TimeSpec{Sec: sec, Nsec: int32(nsec)}
}

func (t TimeSpec) Duration() time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Nsec)
}

// Sub returns t - u. Borrowing across the seconds boundary never produces a
// negative nanoseconds component.
func (t TimeSpec) Sub(u TimeSpec) TimeSpec {
	sec := t.Sec - u.Sec
	nsec := int64(t.Nsec) - int64(u.Nsec)
	if nsec < 0 {
		sec--
		nsec += nsecPerSec
	}
	return TimeSpec{Sec: sec, Nsec: int32(nsec)}
}

// Add returns t + u. The seconds component saturates instead of wrapping.
func (t TimeSpec) Add(u TimeSpec) TimeSpec {
	sec := timemath.AddSat(t.Sec, u.Sec)
	nsec := int64(t.Nsec) + int64(u.Nsec)
	if nsec >= nsecPerSec {
		sec = timemath.AddSat(sec, 1)
		nsec -= nsecPerSec
	}
	return TimeSpec{Sec: sec, Nsec: int32(nsec)}
}

// IsZero reports whether both components are zero, the value of a chrono
// that was never started.
func (t TimeSpec) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}

// Compare orders lexicographically on (Sec, Nsec).
func (t TimeSpec) Compare(u TimeSpec) int {
	if c := cmp.Compare(t.Sec, u.Sec); c != 0 {
		return c
	}
	return cmp.Compare(t.Nsec, u.Nsec)
}

// Seconds projects t onto a float64. The projection is lossy and intended
// for display and comparison, not for control decisions.
func (t TimeSpec) Seconds() float64 {
	return float64(t.Sec) + float64(t.Nsec)/nsecPerSec
}

// AppendSeconds appends t rendered as seconds with prec fractional digits,
// extracted from the nanoseconds component by repeated base-10 division.
// prec is clamped to [0, MaxPrecision]; at 0 the fractional part is omitted.
func (t TimeSpec) AppendSeconds(b []byte, prec int) []byte {
	if prec > MaxPrecision {
		prec = MaxPrecision
	}
	b = strconv.AppendInt(b, t.Sec, 10)
	if prec <= 0 {
		return b
	}
	b = append(b, '.')
	nsec := t.Nsec
	div := int32(nsecPerSec / 10)
	for i := 0; i < prec; i++ {
		b = append(b, byte('0'+nsec/div))
		nsec %= div
		div /= 10
	}
	return b
}

func (t TimeSpec) String() string {
	return string(t.AppendSeconds(nil, MaxPrecision))
}
