package timespec_test

import (
	"math"
	"testing"
	"time"

	"example.com/chrono-time/base/timespec"
)

func TestSub(t *testing.T) {
	tests := []struct {
		name    string
		later   timespec.TimeSpec
		earlier timespec.TimeSpec
		want    timespec.TimeSpec
	}{
		{
			name:    "whole seconds",
			later:   timespec.TimeSpec{Sec: 5},
			earlier: timespec.TimeSpec{Sec: 2},
			want:    timespec.TimeSpec{Sec: 3},
		},
		{
			name:    "no borrow",
			later:   timespec.TimeSpec{Sec: 5, Nsec: 700_000_000},
			earlier: timespec.TimeSpec{Sec: 2, Nsec: 200_000_000},
			want:    timespec.TimeSpec{Sec: 3, Nsec: 500_000_000},
		},
		{
			name:    "borrow across seconds boundary",
			later:   timespec.TimeSpec{Sec: 5, Nsec: 200_000_000},
			earlier: timespec.TimeSpec{Sec: 2, Nsec: 700_000_000},
			want:    timespec.TimeSpec{Sec: 2, Nsec: 500_000_000},
		},
		{
			name:    "equal values",
			later:   timespec.TimeSpec{Sec: 7, Nsec: 123},
			earlier: timespec.TimeSpec{Sec: 7, Nsec: 123},
			want:    timespec.TimeSpec{},
		},
		{
			name:    "borrow to negative seconds",
			later:   timespec.TimeSpec{Sec: 1, Nsec: 0},
			earlier: timespec.TimeSpec{Sec: 1, Nsec: 1},
			want:    timespec.TimeSpec{Sec: -1, Nsec: 999_999_999},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.later.Sub(tc.earlier)
			if got != tc.want {
				t.Errorf("(%v).Sub(%v) = %v, want %v", tc.later, tc.earlier, got, tc.want)
			}
			if got.Nsec < 0 || got.Nsec >= 1_000_000_000 {
				t.Errorf("(%v).Sub(%v): Nsec %d out of range", tc.later, tc.earlier, got.Nsec)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		x, y timespec.TimeSpec
		want timespec.TimeSpec
	}{
		{
			name: "no carry",
			x:    timespec.TimeSpec{Sec: 1, Nsec: 100},
			y:    timespec.TimeSpec{Sec: 2, Nsec: 200},
			want: timespec.TimeSpec{Sec: 3, Nsec: 300},
		},
		{
			name: "carry across seconds boundary",
			x:    timespec.TimeSpec{Sec: 1, Nsec: 600_000_000},
			y:    timespec.TimeSpec{Sec: 2, Nsec: 500_000_000},
			want: timespec.TimeSpec{Sec: 4, Nsec: 100_000_000},
		},
		{
			name: "seconds saturate",
			x:    timespec.TimeSpec{Sec: math.MaxInt64, Nsec: 999_999_999},
			y:    timespec.TimeSpec{Sec: 1, Nsec: 1},
			want: timespec.TimeSpec{Sec: math.MaxInt64, Nsec: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.x.Add(tc.y)
			if got != tc.want {
				t.Errorf("(%v).Add(%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		ts   timespec.TimeSpec
		want bool
	}{
		{timespec.TimeSpec{}, true},
		{timespec.TimeSpec{Sec: 1}, false},
		{timespec.TimeSpec{Nsec: 1}, false},
		{timespec.TimeSpec{Sec: -1, Nsec: 999_999_999}, false},
	}

	for _, tc := range tests {
		if got := tc.ts.IsZero(); got != tc.want {
			t.Errorf("(%v).IsZero() = %v, want %v", tc.ts, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		x, y timespec.TimeSpec
		want int
	}{
		{timespec.TimeSpec{Sec: 1}, timespec.TimeSpec{Sec: 2}, -1},
		{timespec.TimeSpec{Sec: 2}, timespec.TimeSpec{Sec: 1}, 1},
		{timespec.TimeSpec{Sec: 1, Nsec: 1}, timespec.TimeSpec{Sec: 1, Nsec: 2}, -1},
		{timespec.TimeSpec{Sec: 1, Nsec: 2}, timespec.TimeSpec{Sec: 1, Nsec: 1}, 1},
		{timespec.TimeSpec{Sec: 1, Nsec: 1}, timespec.TimeSpec{Sec: 1, Nsec: 1}, 0},
	}

	for _, tc := range tests {
		if got := tc.x.Compare(tc.y); got != tc.want {
			t.Errorf("(%v).Compare(%v) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		ts   timespec.TimeSpec
		want float64
	}{
		{timespec.TimeSpec{}, 0},
		{timespec.TimeSpec{Sec: 1, Nsec: 500_000_000}, 1.5},
		{timespec.TimeSpec{Sec: -1, Nsec: 500_000_000}, -0.5},
	}

	for _, tc := range tests {
		if got := tc.ts.Seconds(); got != tc.want {
			t.Errorf("(%v).Seconds() = %v, want %v", tc.ts, got, tc.want)
		}
	}
}

func TestFromDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want timespec.TimeSpec
	}{
		{0, timespec.TimeSpec{}},
		{1500 * time.Millisecond, timespec.TimeSpec{Sec: 1, Nsec: 500_000_000}},
		{-500 * time.Millisecond, timespec.TimeSpec{Sec: -1, Nsec: 500_000_000}},
	}

	for _, tc := range tests {
		got := timespec.FromDuration(tc.d)
		if got != tc.want {
			t.Errorf("FromDuration(%v) = %v, want %v", tc.d, got, tc.want)
		}
		if got.Duration() != tc.d {
			t.Errorf("FromDuration(%v).Duration() = %v", tc.d, got.Duration())
		}
	}
}

func TestAppendSeconds(t *testing.T) {
	tests := []struct {
		name string
		ts   timespec.TimeSpec
		prec int
		want string
	}{
		{
			name: "zero precision omits fraction",
			ts:   timespec.TimeSpec{Sec: 3, Nsec: 141_592_653},
			prec: 0,
			want: "3",
		},
		{
			name: "full precision",
			ts:   timespec.TimeSpec{Sec: 3, Nsec: 141_592_653},
			prec: 9,
			want: "3.141592653",
		},
		{
			name: "truncated precision",
			ts:   timespec.TimeSpec{Sec: 3, Nsec: 141_592_653},
			prec: 3,
			want: "3.141",
		},
		{
			name: "leading fractional zeros",
			ts:   timespec.TimeSpec{Sec: 0, Nsec: 5},
			prec: 9,
			want: "0.000000005",
		},
		{
			name: "excess precision clamped",
			ts:   timespec.TimeSpec{Sec: 1, Nsec: 999_999_999},
			prec: 15,
			want: "1.999999999",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := string(tc.ts.AppendSeconds(nil, tc.prec))
			if got != tc.want {
				t.Errorf("(%v).AppendSeconds(nil, %d) = %q, want %q",
					tc.ts, tc.prec, got, tc.want)
			}
		})
	}
}
