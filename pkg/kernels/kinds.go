// Package kernels implements the fifteen NIST SP 800-22 statistical test
// kernels: pure functions from a bit sequence (plus validated arguments,
// where the test is parameterized) to one or more TestResults.
package kernels

import (
	"fmt"
	"math"

	"github.com/jihwankim/nist-sts/pkg/errctx"
)

// TestKind identifies one of the fifteen independent statistical tests.
type TestKind int

const (
	Frequency TestKind = iota
	BlockFrequency
	Runs
	LongestRun
	Rank
	Spectral
	NonOverlappingTemplate
	OverlappingTemplate
	Universal
	LinearComplexity
	Serial
	ApproximateEntropy
	CumulativeSums
	Excursions
	ExcursionsVariant

	numTestKinds = 15
)

var kindNames = [numTestKinds]string{
	"Frequency",
	"BlockFrequency",
	"Runs",
	"LongestRun",
	"Rank",
	"Spectral",
	"NonOverlappingTemplate",
	"OverlappingTemplate",
	"Universal",
	"LinearComplexity",
	"Serial",
	"ApproximateEntropy",
	"CumulativeSums",
	"Excursions",
	"ExcursionsVariant",
}

func (k TestKind) String() string {
	if k < 0 || int(k) >= numTestKinds {
		return fmt.Sprintf("TestKind(%d)", int(k))
	}
	return kindNames[k]
}

// AllTestKinds returns the fifteen kinds in their canonical order.
func AllTestKinds() []TestKind {
	all := make([]TestKind, numTestKinds)
	for i := range all {
		all[i] = TestKind(i)
	}
	return all
}

// fail records a typed error on the calling goroutine's error slot and
// returns it as a plain Go error, so callers see the failure on both
// channels.
func fail(code errctx.Code, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	errctx.Set(code, msg)
	return fmt.Errorf("kernels: %s", msg)
}

// checkFinite guards a computed p-value: NaN and infinity each map to
// their own error kind.
func checkFinite(test string, p float64) error {
	if math.IsNaN(p) {
		return fail(errctx.NaN, "%s: p-value is NaN", test)
	}
	if math.IsInf(p, 0) {
		return fail(errctx.Infinite, "%s: p-value is infinite", test)
	}
	return nil
}
