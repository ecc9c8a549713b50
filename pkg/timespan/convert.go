package timespan

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrOutOfRange reports a span that doesn't fit the target of a conversion.
// Errors returned by [Duration.Std] wrap it, so `errors.Is(err,
// timespan.ErrOutOfRange)` matches.
var ErrOutOfRange = errors.New("timespan: value out of range")

// Bounds of time.Duration expressed in this package's parts. time.Duration
// is an int64 count of nanoseconds, so its extremes have both a seconds and
// a subsecond component.
const (
	maxStdSecs  = math.MaxInt64 / nanosPerSecond
	maxStdNanos = math.MaxInt64 % nanosPerSecond
	minStdSecs  = math.MinInt64 / nanosPerSecond
	minStdNanos = math.MinInt64 % nanosPerSecond
)

// FromStd converts a [time.Duration] into a [Duration]. Every time.Duration
// is representable, sign included, so there is no failure case.
func FromStd(sd time.Duration) Duration {
	return unchecked(int64(sd)/nanosPerSecond, int32(int64(sd)%nanosPerSecond))
}

// Std converts the span into a [time.Duration]. Spans beyond what an int64
// count of nanoseconds can hold (about ±292 years) return an error wrapping
// [ErrOutOfRange].
func (d Duration) Std() (time.Duration, error) {
	if d.secs > maxStdSecs || (d.secs == maxStdSecs && int64(d.nanos) > maxStdNanos) {
		return 0, fmt.Errorf("%w: %d seconds exceeds the maximum time.Duration", ErrOutOfRange, d.secs)
	}
	if d.secs < minStdSecs || (d.secs == minStdSecs && int64(d.nanos) < minStdNanos) {
		return 0, fmt.Errorf("%w: %d seconds exceeds the minimum time.Duration", ErrOutOfRange, d.secs)
	}
	return time.Duration(d.secs*nanosPerSecond + int64(d.nanos)), nil
}

// MustStd is [Duration.Std] but panics on an out-of-range span. Silent
// wraparound here would corrupt any timestamp the result gets added to, so
// the failure is loud.
func (d Duration) MustStd() time.Duration {
	sd, err := d.Std()
	if err != nil {
		panic(err)
	}
	return sd
}

// AbsStd returns the magnitude of the span as a [time.Duration], discarding
// the sign. Magnitudes beyond the time.Duration range saturate at its
// maximum.
func (d Duration) AbsStd() time.Duration {
	sd, err := d.Abs().Std()
	if err != nil {
		return time.Duration(math.MaxInt64)
	}
	return sd
}

// CmpStd compares the span against a [time.Duration], with the same result
// convention as [Duration.Cmp].
func (d Duration) CmpStd(sd time.Duration) int {
	return d.Cmp(FromStd(sd))
}
