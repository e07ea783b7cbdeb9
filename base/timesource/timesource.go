package timesource

import (
	"example.com/chrono-time/base/timespec"
)

// TimeSource samples a clock. Implementations must return immediately and
// must not fail; an unusable platform clock yields the zero TimeSpec.
type TimeSource interface {
	Now() timespec.TimeSpec
}
