// Package check implements spancheck's randomized invariant suites. Each
// suite hammers one algebraic property of [timespan.Duration] with seeded
// pseudo-random operands and reports any counterexample it finds.
package check

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lambdcalculus/timespan/internal/config"
	"github.com/lambdcalculus/timespan/pkg/instant"
	"github.com/lambdcalculus/timespan/pkg/logger"
	"github.com/lambdcalculus/timespan/pkg/timespan"
)

const nanosPerSecond = 1_000_000_000

// How many counterexamples get logged per suite before going quiet.
const maxLogged = 5

// A Suite checks one property. Run returns nil when the property held for
// the drawn operands, or an error describing the counterexample.
type Suite struct {
	Name string
	Run  func(r *rand.Rand) error
}

// A Result summarizes one suite's run.
type Result struct {
	Suite      string
	Iterations int
	Failures   int
	Elapsed    timespan.Duration
}

// Suites returns all known suites, in a stable order.
func Suites() []Suite {
	return []Suite{
		{"normalization", checkNormalization},
		{"sign-partition", checkSignPartition},
		{"identity", checkIdentity},
		{"inverse", checkInverse},
		{"saturation-agreement", checkSaturationAgreement},
		{"scale-inverse", checkScaleInverse},
		{"abs", checkAbs},
		{"units", checkUnits},
		{"std-roundtrip", checkStdRoundTrip},
	}
}

// Run executes the configured suites and returns their results. It errors
// only on an unknown suite name; property failures are counted (and logged)
// per suite instead.
func Run(conf *config.Check, log *logger.Logger) ([]Result, error) {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	suites, err := selectSuites(conf.Suites)
	if err != nil {
		return nil, err
	}
	log.Infof("check: Running %v suites, %v iterations each (seed %v).", len(suites), conf.Iterations, seed)

	results := make([]Result, 0, len(suites))
	for i, s := range suites {
		// Per-suite sources keep a suite's operands stable when the
		// selection changes.
		r := rand.New(rand.NewSource(seed + int64(i)))
		start := instant.Now()
		res := Result{Suite: s.Name, Iterations: conf.Iterations}
		for it := 0; it < conf.Iterations; it++ {
			if err := s.Run(r); err != nil {
				res.Failures++
				if res.Failures <= maxLogged {
					log.Errorf("check: %v: iteration %v: %v", s.Name, it, err)
				}
			}
		}
		res.Elapsed = start.Elapsed()
		if res.Failures > 0 {
			log.Errorf("check: %v: %v/%v iterations failed.", s.Name, res.Failures, res.Iterations)
		} else {
			log.Debugf("check: %v: ok (%v iterations in %.3fs).", s.Name, res.Iterations, res.Elapsed.Seconds())
		}
		results = append(results, res)
	}
	return results, nil
}

// selectSuites resolves configured suite names, or all suites for an empty
// selection.
func selectSuites(names []string) ([]Suite, error) {
	all := Suites()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Suite, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	var picked []Suite
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("check: Unknown suite %q.", name)
		}
		picked = append(picked, s)
	}
	return picked, nil
}

// randSpan draws a span, mixing sentinels, extreme magnitudes, subsecond
// spans, and ordinary ones. All inputs to [timespan.New] stay within its
// wrap-free domain.
func randSpan(r *rand.Rand) timespan.Duration {
	subsec := func() int64 {
		return int64(r.Intn(2*nanosPerSecond-1)) - (nanosPerSecond - 1)
	}
	switch r.Intn(12) {
	case 0:
		return timespan.Zero
	case 1:
		return timespan.Min
	case 2:
		return timespan.Max
	case 3, 4:
		// The whole 64-bit seconds range.
		return timespan.New(int64(r.Uint64()), subsec())
	case 5:
		// Subsecond only.
		return timespan.New(0, subsec())
	default:
		return timespan.New(r.Int63n(2_000_000)-1_000_000, subsec())
	}
}

func checkNormalization(r *rand.Rand) error {
	d := randSpan(r)
	secs, nanos := d.WholeSeconds(), d.SubsecNanoseconds()
	if nanos <= -nanosPerSecond || nanos >= nanosPerSecond {
		return fmt.Errorf("subsecond part %v out of range in %+v", nanos, d)
	}
	if (secs > 0 && nanos < 0) || (secs < 0 && nanos > 0) {
		return fmt.Errorf("parts disagree in sign: %vs, %vns", secs, nanos)
	}
	if rt := timespan.New(secs, int64(nanos)); rt != d {
		return fmt.Errorf("round-trip through New: got %+v, want %+v", rt, d)
	}
	return nil
}

func checkSignPartition(r *rand.Rand) error {
	d := randSpan(r)
	n := 0
	for _, b := range []bool{d.IsZero(), d.IsNegative(), d.IsPositive()} {
		if b {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%v of zero/negative/positive hold for %+v", n, d)
	}
	return nil
}

func checkIdentity(r *rand.Rand) error {
	d := randSpan(r)
	if got := d.Add(timespan.Zero); got != d {
		return fmt.Errorf("d + 0: got %+v, want %+v", got, d)
	}
	if got := d.Sub(timespan.Zero); got != d {
		return fmt.Errorf("d - 0: got %+v, want %+v", got, d)
	}
	if got := d.SaturatingAdd(timespan.Zero); got != d {
		return fmt.Errorf("saturating d + 0: got %+v, want %+v", got, d)
	}
	return nil
}

func checkInverse(r *rand.Rand) error {
	d := randSpan(r)
	if d == timespan.Min {
		// Negating Min wraps; documented boundary.
		return nil
	}
	sum, ok := d.CheckedAdd(d.Neg())
	if !ok {
		return fmt.Errorf("d + (-d) overflowed for %+v", d)
	}
	if sum != timespan.Zero {
		return fmt.Errorf("d + (-d): got %+v for %+v", sum, d)
	}
	return nil
}

func checkSaturationAgreement(r *rand.Rand) error {
	d1, d2 := randSpan(r), randSpan(r)

	sat := d1.SaturatingAdd(d2)
	if sum, ok := d1.CheckedAdd(d2); ok {
		if sat != sum {
			return fmt.Errorf("add: checked %+v != saturating %+v", sum, sat)
		}
	} else {
		// Addition can only overflow in the direction of the left
		// operand's sign.
		want := timespan.Min
		if d1.IsPositive() {
			want = timespan.Max
		}
		if sat != want {
			return fmt.Errorf("add overflow: saturating gave %+v, want %+v", sat, want)
		}
	}

	sat = d1.SaturatingSub(d2)
	if diff, ok := d1.CheckedSub(d2); ok {
		if sat != diff {
			return fmt.Errorf("sub: checked %+v != saturating %+v", diff, sat)
		}
	} else {
		if sat != timespan.Min && sat != timespan.Max {
			return fmt.Errorf("sub overflow: saturating gave unclamped %+v", sat)
		}
		// The direction is unambiguous when the seconds disagree in
		// sign outright.
		if d1.WholeSeconds() > 0 && d2.WholeSeconds() < 0 && sat != timespan.Max {
			return fmt.Errorf("sub overflow: saturating gave %+v, want Max", sat)
		}
		if d1.WholeSeconds() < 0 && d2.WholeSeconds() > 0 && sat != timespan.Min {
			return fmt.Errorf("sub overflow: saturating gave %+v, want Min", sat)
		}
	}
	return nil
}

// checkScaleInverse verifies (d * n) / n == d on operands where no
// truncation crosses the seconds boundary: the subsecond part is kept small
// enough that scaling it up never carries a whole second, which makes the
// round trip exact.
func checkScaleInverse(r *rand.Rand) error {
	n := int32(r.Intn(1_000) + 1)
	if r.Intn(2) == 0 {
		n = -n
	}
	secs := r.Int63n(2_000_000) - 1_000_000
	subsec := r.Int63n(1_000_000)
	if secs < 0 || (secs == 0 && r.Intn(2) == 0) {
		subsec = -subsec
	}
	d := timespan.New(secs, subsec)
	prod, ok := d.CheckedMul(n)
	if !ok {
		return fmt.Errorf("d * %v overflowed for %+v", n, d)
	}
	quot, ok := prod.CheckedDiv(n)
	if !ok {
		return fmt.Errorf("(d * %v) / %v overflowed for %+v", n, n, d)
	}
	if quot != d {
		return fmt.Errorf("(d * %v) / %v: got %+v, want %+v", n, n, quot, d)
	}
	return nil
}

func checkAbs(r *rand.Rand) error {
	d := randSpan(r)
	if d.Abs().IsNegative() {
		return fmt.Errorf("|d| negative for %+v", d)
	}
	if d == timespan.Min {
		return nil
	}
	if d.Abs() != d.Neg().Abs() {
		return fmt.Errorf("|d| != |-d| for %+v", d)
	}
	return nil
}

func checkUnits(r *rand.Rand) error {
	n := r.Int63n(2_000_000) - 1_000_000
	if s, ms := timespan.Seconds(n), timespan.Milliseconds(n*1_000); s != ms {
		return fmt.Errorf("%vs != %vms", n, n*1_000)
	}
	if ms, us := timespan.Milliseconds(n), timespan.Microseconds(n*1_000); ms != us {
		return fmt.Errorf("%vms != %vus", n, n*1_000)
	}
	if us, ns := timespan.Microseconds(n), timespan.Nanoseconds(n*1_000); us != ns {
		return fmt.Errorf("%vus != %vns", n, n*1_000)
	}
	if m, s := timespan.Minutes(n), timespan.Seconds(n*60); m != s {
		return fmt.Errorf("%vmin != %vs", n, n*60)
	}
	return nil
}

func checkStdRoundTrip(r *rand.Rand) error {
	sd := time.Duration(r.Uint64())
	d := timespan.FromStd(sd)
	back, err := d.Std()
	if err != nil {
		return fmt.Errorf("Std of FromStd(%v) failed: %v", sd, err)
	}
	if back != sd {
		return fmt.Errorf("round-trip of %v gave %v", sd, back)
	}
	if c := d.CmpStd(sd); c != 0 {
		return fmt.Errorf("CmpStd after round-trip of %v gave %v", sd, c)
	}
	return nil
}
