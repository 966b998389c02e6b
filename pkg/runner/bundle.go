// Package runner holds the stateful dispatcher that accepts a bit
// sequence plus a per-test argument bundle, runs the requested subset (or
// all) of the fifteen kernels, in parallel across the shared worker pool,
// and hands out results on demand.
package runner

import "github.com/jihwankim/nist-sts/pkg/testargs"

// Bundle carries the validated argument set for every parameterized test.
// Tests with no parameters (Frequency, Runs, LongestRun, Rank, Spectral,
// Universal, CumulativeSums, Excursions, ExcursionsVariant) ignore it.
type Bundle struct {
	FrequencyBlock         testargs.FrequencyBlock
	NonOverlappingTemplate testargs.NonOverlappingTemplate
	OverlappingTemplate    testargs.OverlappingTemplate
	LinearComplexity       testargs.LinearComplexity
	Serial                 testargs.Serial
	ApproximateEntropy     testargs.ApproximateEntropy
}

// DefaultBundle builds a Bundle using each test's documented default
// argument, resolving the "auto" defaults (Block Frequency, Linear
// Complexity) against the sequence length n.
func DefaultBundle(n int) Bundle {
	return Bundle{
		FrequencyBlock:         testargs.AutoFrequencyBlock(n),
		NonOverlappingTemplate: testargs.DefaultNonOverlappingTemplate(),
		OverlappingTemplate:    testargs.DefaultOverlappingTemplate(),
		LinearComplexity:       testargs.AutoLinearComplexity(n),
		Serial:                 testargs.DefaultSerial(),
		ApproximateEntropy:     testargs.DefaultApproximateEntropy(),
	}
}
