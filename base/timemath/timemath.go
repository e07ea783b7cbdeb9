package timemath

import (
	"math"
	"slices"
	"time"
)

func Duration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func Seconds(d time.Duration) float64 {
	return float64(d) / float64(time.Second)
}

// AddSat returns x + y, saturating at the int64 range instead of wrapping.
func AddSat(x, y int64) int64 {
	s := x + y
	if x > 0 && y > 0 && s < 0 {
		return math.MaxInt64
	}
	if x < 0 && y < 0 && s >= 0 {
		return math.MinInt64
	}
	return s
}

func Midpoint(x, y time.Duration) time.Duration {
	return x + (y-x)/2.0
}

func Median(ds []time.Duration) time.Duration {
	n := len(ds)
	if n == 0 {
		panic("unexpected number of values")
	}
	slices.Sort(ds)
	i := n / 2
	if n%2 != 0 {
		return ds[i]
	}
	return Midpoint(ds[i-1], ds[i])
}
