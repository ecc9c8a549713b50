package timespan

import (
	"math"
)

// Overflow-detecting int64 primitives. The saturating family needs to know
// *that* an operation overflowed, not just fail, so these return the wrapped
// value alongside the flag.

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// CheckedAdd returns d + o, or false if the sum falls outside [Min]/[Max].
// It never panics.
func (d Duration) CheckedAdd(o Duration) (Duration, bool) {
	secs, ok := addInt64(d.secs, o.secs)
	if !ok {
		return Zero, false
	}
	// Each part is below 1e9 in magnitude, so the raw sum stays well
	// within int32.
	nanos := d.nanos + o.nanos
	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if secs, ok = addInt64(secs, 1); !ok {
			return Zero, false
		}
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if secs, ok = subInt64(secs, 1); !ok {
			return Zero, false
		}
	}
	return unchecked(secs, nanos), true
}

// CheckedSub returns d - o, or false if the difference falls outside
// [Min]/[Max]. It never panics.
func (d Duration) CheckedSub(o Duration) (Duration, bool) {
	secs, ok := subInt64(d.secs, o.secs)
	if !ok {
		return Zero, false
	}
	nanos := d.nanos - o.nanos
	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if secs, ok = addInt64(secs, 1); !ok {
			return Zero, false
		}
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if secs, ok = subInt64(secs, 1); !ok {
			return Zero, false
		}
	}
	return unchecked(secs, nanos), true
}

// CheckedMul returns d * n, or false if the product falls outside
// [Min]/[Max]. It never panics.
func (d Duration) CheckedMul(n int32) (Duration, bool) {
	// The nanosecond product fits in an int64: under 1e9 times a 32-bit
	// factor.
	total := int64(d.nanos) * int64(n)
	carry := total / nanosPerSecond
	nanos := int32(total % nanosPerSecond)
	secs, ok := mulInt64(d.secs, int64(n))
	if !ok {
		return Zero, false
	}
	if secs, ok = addInt64(secs, carry); !ok {
		return Zero, false
	}
	return unchecked(secs, nanos), true
}

// CheckedDiv returns d / n, truncated toward zero, or false if n is zero or
// the quotient overflows (only Min / -1 can). It never panics.
//
// The seconds' division remainder is pushed down into the nanosecond part,
// so precision is only lost below a nanosecond.
func (d Duration) CheckedDiv(n int32) (Duration, bool) {
	if n == 0 {
		return Zero, false
	}
	rhs := int64(n)
	if d.secs == math.MinInt64 && rhs == -1 {
		return Zero, false
	}
	secs := d.secs / rhs
	rem := d.secs - secs*rhs
	// Both contributions agree in sign with the quotient and their sum
	// stays below 1e9, so no reconciliation is needed.
	nanos := int32(rem*nanosPerSecond/rhs) + d.nanos/n
	return unchecked(secs, nanos), true
}

// SaturatingAdd returns d + o, clamping to [Max] or [Min] instead of
// overflowing. Which bound is picked follows the sign of d's seconds, which
// on the overflowing paths matches the direction of the overflow.
func (d Duration) SaturatingAdd(o Duration) Duration {
	secs, ok := addInt64(d.secs, o.secs)
	if !ok {
		if d.secs > 0 {
			return Max
		}
		return Min
	}
	nanos := d.nanos + o.nanos
	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if secs == math.MaxInt64 {
			return Max
		}
		secs++
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if secs == math.MinInt64 {
			return Min
		}
		secs--
	}
	return unchecked(secs, nanos)
}

// SaturatingSub returns d - o, clamping to [Max] or [Min] instead of
// overflowing.
func (d Duration) SaturatingSub(o Duration) Duration {
	secs, ok := subInt64(d.secs, o.secs)
	if !ok {
		if d.secs > 0 {
			return Max
		}
		return Min
	}
	nanos := d.nanos - o.nanos
	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if secs == math.MaxInt64 {
			return Max
		}
		secs++
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if secs == math.MinInt64 {
			return Min
		}
		secs--
	}
	return unchecked(secs, nanos)
}

// SaturatingMul returns d * n, clamping to [Max] or [Min] instead of
// overflowing: [Max] when the operands agree in sign, [Min] otherwise.
// There is no saturating division; division can't overflow except for the
// zero divisor, which stays an explicit failure in [Duration.CheckedDiv].
func (d Duration) SaturatingMul(n int32) Duration {
	total := int64(d.nanos) * int64(n)
	carry := total / nanosPerSecond
	nanos := int32(total % nanosPerSecond)
	if secs, ok := mulInt64(d.secs, int64(n)); ok {
		if secs, ok = addInt64(secs, carry); ok {
			return unchecked(secs, nanos)
		}
	}
	if (d.secs > 0 && n > 0) || (d.secs < 0 && n < 0) {
		return Max
	}
	return Min
}

// Add returns d + o, panicking on overflow. Overflow while composing spans
// is treated as a programming error; use [Duration.CheckedAdd] or
// [Duration.SaturatingAdd] when extreme inputs are expected.
func (d Duration) Add(o Duration) Duration {
	sum, ok := d.CheckedAdd(o)
	if !ok {
		panic("timespan: duration addition overflowed")
	}
	return sum
}

// Sub returns d - o, panicking on overflow like [Duration.Add].
func (d Duration) Sub(o Duration) Duration {
	diff, ok := d.CheckedSub(o)
	if !ok {
		panic("timespan: duration subtraction overflowed")
	}
	return diff
}

// Neg returns the span with its direction flipped. The one boundary case:
// negating [Min] wraps its seconds, the same way negating [math.MinInt64]
// does.
func (d Duration) Neg() Duration {
	return unchecked(-d.secs, -d.nanos)
}

// Mul returns d * n, panicking on overflow like [Duration.Add].
func (d Duration) Mul(n int32) Duration {
	prod, ok := d.CheckedMul(n)
	if !ok {
		panic("timespan: duration multiplication overflowed")
	}
	return prod
}

// Div returns d / n, panicking on a zero divisor or overflow.
func (d Duration) Div(n int32) Duration {
	if n == 0 {
		panic("timespan: duration division by zero")
	}
	quot, ok := d.CheckedDiv(n)
	if !ok {
		panic("timespan: duration division overflowed")
	}
	return quot
}

// MulFloat returns the span scaled by f, going through fractional seconds.
func (d Duration) MulFloat(f float64) Duration {
	return SecondsFloat(d.Seconds() * f)
}

// DivFloat returns the span divided by f, going through fractional seconds.
func (d Duration) DivFloat(f float64) Duration {
	return SecondsFloat(d.Seconds() / f)
}

// DivDuration returns the ratio d / o as a float, not a span.
func (d Duration) DivDuration(o Duration) float64 {
	return d.Seconds() / o.Seconds()
}

// Cmp compares two spans, returning -1 if d is shorter than o, 0 if equal,
// and +1 if longer. Comparing parts lexicographically is sound because both
// spans are normalized.
func (d Duration) Cmp(o Duration) int {
	switch {
	case d.secs < o.secs:
		return -1
	case d.secs > o.secs:
		return 1
	case d.nanos < o.nanos:
		return -1
	case d.nanos > o.nanos:
		return 1
	}
	return 0
}
