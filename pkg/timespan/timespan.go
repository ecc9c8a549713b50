// Package timespan implements a signed span of time with nanosecond precision.
// Unlike [time.Duration], which tops out at roughly ±292 years, a [Duration]
// covers the full range of a 64-bit count of seconds, and it keeps exact
// nanosecond resolution over that whole range.
//
// Every operation keeps the two components of a span agreeing in sign, so a
// given span has exactly one representation. Arithmetic comes in three
// flavors: checked (reports overflow), saturating (clamps at [Min]/[Max]),
// and plain methods that panic on overflow, for when overflowing is a bug.
package timespan

import (
	"math"
)

const (
	nanosPerSecond   = 1_000_000_000
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// A Duration is a signed length of time, stored as whole seconds plus a
// subsecond nanosecond part. The two parts never disagree in sign: -1.5s is
// (-1s, -500000000ns), never (-2s, +500000000ns). Durations are plain values
// and can be compared with `==`.
type Duration struct {
	secs  int64
	nanos int32 // always in (-1e9, 1e9), sign matching secs
}

// Sentinel and unit values. These are variables only because Go has no struct
// constants; don't write to them.
var (
	// Zero is the empty span.
	Zero = Duration{}
	// Min is the most negative representable span.
	Min = Duration{math.MinInt64, -(nanosPerSecond - 1)}
	// Max is the most positive representable span.
	Max = Duration{math.MaxInt64, nanosPerSecond - 1}

	Nanosecond  = Duration{0, 1}
	Microsecond = Duration{0, 1_000}
	Millisecond = Duration{0, 1_000_000}
	Second      = Duration{1, 0}
	Minute      = Duration{secondsPerMinute, 0}
	Hour        = Duration{secondsPerHour, 0}
	Day         = Duration{secondsPerDay, 0}
	Week        = Duration{secondsPerWeek, 0}
)

// unchecked builds a Duration from parts that are already known to satisfy
// the sign-consistency rule. Callers must have established that through
// prior arithmetic.
func unchecked(secs int64, nanos int32) Duration {
	return Duration{secs, nanos}
}

// New makes a Duration from a count of seconds and nanoseconds. The
// nanoseconds need not be in the subsecond range, nor agree in sign with the
// seconds; whole seconds are folded over and the signs reconciled. So
// New(1, 2_000_000_000) is three seconds, and New(1, -500_000_000) is half a
// second.
//
// New does not guard against the total magnitude falling outside [Min]/[Max];
// such inputs wrap like ordinary integer overflow. Use the unit constructors
// or checked arithmetic when the inputs aren't trusted.
func New(secs, nanos int64) Duration {
	secs += nanos / nanosPerSecond
	nanos %= nanosPerSecond
	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return unchecked(secs, int32(nanos))
}

// Weeks makes a Duration spanning `n` weeks.
func Weeks(n int64) Duration {
	return Seconds(n * secondsPerWeek)
}

// Days makes a Duration spanning `n` days.
func Days(n int64) Duration {
	return Seconds(n * secondsPerDay)
}

// Hours makes a Duration spanning `n` hours.
func Hours(n int64) Duration {
	return Seconds(n * secondsPerHour)
}

// Minutes makes a Duration spanning `n` minutes.
func Minutes(n int64) Duration {
	return Seconds(n * secondsPerMinute)
}

// Seconds makes a Duration spanning `n` seconds.
func Seconds(n int64) Duration {
	return unchecked(n, 0)
}

// Milliseconds makes a Duration spanning `n` milliseconds.
func Milliseconds(n int64) Duration {
	// Truncating division keeps the quotient and remainder agreeing in
	// sign, so no reconciliation is needed here.
	return unchecked(n/1_000, int32(n%1_000)*1_000_000)
}

// Microseconds makes a Duration spanning `n` microseconds.
func Microseconds(n int64) Duration {
	return unchecked(n/1_000_000, int32(n%1_000_000)*1_000)
}

// Nanoseconds makes a Duration spanning `n` nanoseconds.
func Nanoseconds(n int64) Duration {
	return unchecked(n/nanosPerSecond, int32(n%nanosPerSecond))
}

// SecondsFloat makes a Duration from a fractional count of seconds.
// Conversion truncates toward zero, so the integer and fractional parts
// can't disagree in sign. Values beyond the representable seconds range
// clamp to [Max] or [Min], and NaN comes back as [Zero].
func SecondsFloat(s float64) Duration {
	if math.IsNaN(s) {
		return Zero
	}
	// Go's out-of-range float-to-int conversion is implementation-defined,
	// not saturating, so clamp first. 2^63 is exactly representable, so
	// these comparisons are exact.
	if s >= float64(math.MaxInt64) {
		return Max
	}
	if s < float64(math.MinInt64) {
		return Min
	}
	secs := int64(s)
	nanos := int32((s - float64(secs)) * nanosPerSecond)
	return unchecked(secs, nanos)
}

// IsZero reports whether the span is empty.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// IsNegative reports whether the span is shorter than [Zero].
func (d Duration) IsNegative() bool {
	return d.secs < 0 || d.nanos < 0
}

// IsPositive reports whether the span is longer than [Zero].
func (d Duration) IsPositive() bool {
	return d.secs > 0 || d.nanos > 0
}

// WholeWeeks returns the span as a whole number of weeks, truncated toward
// zero.
func (d Duration) WholeWeeks() int64 {
	return d.secs / secondsPerWeek
}

// WholeDays returns the span as a whole number of days, truncated toward
// zero.
func (d Duration) WholeDays() int64 {
	return d.secs / secondsPerDay
}

// WholeHours returns the span as a whole number of hours, truncated toward
// zero.
func (d Duration) WholeHours() int64 {
	return d.secs / secondsPerHour
}

// WholeMinutes returns the span as a whole number of minutes, truncated
// toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.secs / secondsPerMinute
}

// WholeSeconds returns the span as a whole number of seconds, truncated
// toward zero.
func (d Duration) WholeSeconds() int64 {
	return d.secs
}

// WholeMilliseconds returns the span as a whole number of milliseconds,
// truncated toward zero. Spans beyond what an int64 count of milliseconds
// can hold (about ±292 million years) saturate at [math.MaxInt64] or
// [math.MinInt64].
func (d Duration) WholeMilliseconds() int64 {
	return d.scaleTo(1_000, int64(d.nanos)/1_000_000)
}

// WholeMicroseconds returns the span as a whole number of microseconds,
// truncated toward zero, saturating like [Duration.WholeMilliseconds] for
// spans beyond about ±292 thousand years.
func (d Duration) WholeMicroseconds() int64 {
	return d.scaleTo(1_000_000, int64(d.nanos)/1_000)
}

// WholeNanoseconds returns the span as a whole number of nanoseconds,
// saturating like [Duration.WholeMilliseconds] for spans beyond about
// ±292 years.
func (d Duration) WholeNanoseconds() int64 {
	return d.scaleTo(nanosPerSecond, int64(d.nanos))
}

// scaleTo returns secs*perSecond + subsec, saturating instead of wrapping.
// subsec always agrees in sign with secs, so it can only push further toward
// the bound that the multiplication already approached.
func (d Duration) scaleTo(perSecond, subsec int64) int64 {
	if d.secs > math.MaxInt64/perSecond {
		return math.MaxInt64
	}
	if d.secs < math.MinInt64/perSecond {
		return math.MinInt64
	}
	total := d.secs * perSecond
	if subsec > 0 && total > math.MaxInt64-subsec {
		return math.MaxInt64
	}
	if subsec < 0 && total < math.MinInt64-subsec {
		return math.MinInt64
	}
	return total + subsec
}

// SubsecMilliseconds returns just the subsecond part of the span, in
// milliseconds. The result is in (-1000, 1000) and agrees in sign with the
// span.
func (d Duration) SubsecMilliseconds() int32 {
	return d.nanos / 1_000_000
}

// SubsecMicroseconds returns just the subsecond part of the span, in
// microseconds. The result is in (-1e6, 1e6) and agrees in sign with the
// span.
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanos / 1_000
}

// SubsecNanoseconds returns just the subsecond part of the span, in
// nanoseconds. The result is in (-1e9, 1e9) and agrees in sign with the
// span.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanos
}

// Seconds returns the span as a fractional count of seconds. Large spans
// lose precision the way any float64 does.
func (d Duration) Seconds() float64 {
	return float64(d.secs) + float64(d.nanos)/nanosPerSecond
}

// Abs returns the magnitude of the span. The seconds part saturates, so
// Min.Abs() comes out as [Max] rather than overflowing.
func (d Duration) Abs() Duration {
	secs := d.secs
	if secs < 0 {
		if secs == math.MinInt64 {
			secs = math.MaxInt64
		} else {
			secs = -secs
		}
	}
	nanos := d.nanos
	if nanos < 0 {
		nanos = -nanos
	}
	return unchecked(secs, nanos)
}
