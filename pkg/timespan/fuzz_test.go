package timespan

import (
	"math"
	"testing"
)

// checkNormalized fails the test when d violates the sign-consistency rule.
func checkNormalized(t *testing.T, d Duration) {
	t.Helper()
	secs, nanos := d.WholeSeconds(), d.SubsecNanoseconds()
	if nanos <= -nanosPerSecond || nanos >= nanosPerSecond {
		t.Fatalf("subsecond part %d out of range in %+v", nanos, d)
	}
	if (secs > 0 && nanos < 0) || (secs < 0 && nanos > 0) {
		t.Fatalf("parts disagree in sign: %ds, %dns", secs, nanos)
	}
}

func FuzzNew(f *testing.F) {
	f.Add(int64(0), int64(0))
	f.Add(int64(1), int64(2_000_000_000))
	f.Add(int64(-1), int64(500_000_000))
	f.Add(int64(math.MaxInt64), int64(999_999_999))
	f.Add(int64(math.MinInt64), int64(-999_999_999))
	f.Add(int64(1), int64(-2_500_000_000))
	f.Fuzz(func(t *testing.T, secs, nanos int64) {
		d := New(secs, nanos)
		checkNormalized(t, d)
		// Normalized parts must round-trip to the same value.
		if rt := New(d.WholeSeconds(), int64(d.SubsecNanoseconds())); rt != d {
			t.Fatalf("round-trip of New(%d, %d): got %+v, want %+v", secs, nanos, rt, d)
		}
	})
}

func FuzzSecondsFloat(f *testing.F) {
	f.Add(0.0)
	f.Add(1.5)
	f.Add(-2.75)
	f.Add(1e30)
	f.Add(-1e30)
	f.Add(math.Inf(1))
	f.Add(math.Inf(-1))
	f.Add(math.NaN())
	f.Add(float64(math.MinInt64))
	f.Fuzz(func(t *testing.T, s float64) {
		d := SecondsFloat(s)
		checkNormalized(t, d)
		// The sign survives the conversion for every non-NaN input.
		if s > 0 && d.IsNegative() {
			t.Fatalf("SecondsFloat(%g) came back negative: %+v", s, d)
		}
		if s < 0 && d.IsPositive() {
			t.Fatalf("SecondsFloat(%g) came back positive: %+v", s, d)
		}
	})
}

func FuzzCheckedAdd(f *testing.F) {
	f.Add(int64(0), int64(0), int64(0), int64(0))
	f.Add(int64(math.MaxInt64), int64(999_999_999), int64(0), int64(1))
	f.Add(int64(math.MinInt64), int64(-999_999_999), int64(0), int64(-1))
	f.Add(int64(-5), int64(0), int64(5), int64(0))
	f.Add(int64(1), int64(999_999_999), int64(2), int64(999_999_999))
	f.Fuzz(func(t *testing.T, secs1, nanos1, secs2, nanos2 int64) {
		d1, d2 := New(secs1, nanos1), New(secs2, nanos2)
		sat := d1.SaturatingAdd(d2)
		if sum, ok := d1.CheckedAdd(d2); ok {
			checkNormalized(t, sum)
			if sat != sum {
				t.Fatalf("checked %+v != saturating %+v for %+v + %+v", sum, sat, d1, d2)
			}
			// Addition commutes whenever it is representable.
			if rev, ok := d2.CheckedAdd(d1); !ok || rev != sum {
				t.Fatalf("%+v + %+v = %+v but reversed gave %+v (ok=%v)", d1, d2, sum, rev, ok)
			}
		} else {
			want := Min
			if d1.IsPositive() {
				want = Max
			}
			if sat != want {
				t.Fatalf("overflowing %+v + %+v saturated to %+v, want %+v", d1, d2, sat, want)
			}
		}
	})
}

func FuzzCheckedMulDiv(f *testing.F) {
	f.Add(int64(10), int32(-2))
	f.Add(int64(0), int32(0))
	f.Add(int64(math.MaxInt64), int32(2))
	f.Add(int64(-1_000_000_001), int32(3))
	f.Fuzz(func(t *testing.T, nanos int64, n int32) {
		d := Nanoseconds(nanos)
		if prod, ok := d.CheckedMul(n); ok {
			checkNormalized(t, prod)
		}
		quot, ok := d.CheckedDiv(n)
		if n == 0 {
			if ok {
				t.Fatalf("division of %+v by zero reported ok", d)
			}
			return
		}
		if ok {
			checkNormalized(t, quot)
			// |quotient| never exceeds |dividend|.
			if quot.Abs().Cmp(d.Abs()) > 0 {
				t.Fatalf("|%+v / %d| = %+v grew", d, n, quot)
			}
		}
	})
}
