// Package instant provides monotonic points in time whose differences are
// signed [timespan.Duration] values. It exists for elapsed-time measurement
// only: no calendar fields, no formatting, just deltas between readings of
// the monotonic clock.
package instant

import (
	"time"

	"github.com/lambdcalculus/timespan/pkg/timespan"
)

// An Instant is an opaque point on the monotonic clock. Instants are plain
// values; compare them with [Instant.Before]/[Instant.After] and subtract
// them with [Instant.Sub].
type Instant struct {
	t time.Time
}

// Now returns the current instant.
func Now() Instant {
	return Instant{time.Now()}
}

// Elapsed returns the signed span from the instant to now. It is negative
// when the instant lies in the future (e.g. produced by [Instant.Add]).
func (i Instant) Elapsed() timespan.Duration {
	return timespan.FromStd(time.Since(i.t))
}

// Sub returns the signed span from o to i: positive when i is later,
// negative when earlier.
func (i Instant) Sub(o Instant) timespan.Duration {
	return timespan.FromStd(i.t.Sub(o.t))
}

// Add returns the instant shifted by d, which may point either direction.
// It panics, via [timespan.Duration.MustStd], when d is too large for the
// platform clock to represent.
func (i Instant) Add(d timespan.Duration) Instant {
	return Instant{i.t.Add(d.MustStd())}
}

// Before reports whether i precedes o.
func (i Instant) Before(o Instant) bool {
	return i.t.Before(o.t)
}

// After reports whether i follows o.
func (i Instant) After(o Instant) bool {
	return i.t.After(o.t)
}
