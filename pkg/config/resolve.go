package config

import (
	"fmt"

	"github.com/jihwankim/nist-sts/pkg/kernels"
	"github.com/jihwankim/nist-sts/pkg/runner"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

var testNameToKind = map[string]kernels.TestKind{
	"Frequency":              kernels.Frequency,
	"BlockFrequency":         kernels.BlockFrequency,
	"Runs":                   kernels.Runs,
	"LongestRun":             kernels.LongestRun,
	"Rank":                   kernels.Rank,
	"Spectral":               kernels.Spectral,
	"NonOverlappingTemplate": kernels.NonOverlappingTemplate,
	"OverlappingTemplate":    kernels.OverlappingTemplate,
	"Universal":              kernels.Universal,
	"LinearComplexity":       kernels.LinearComplexity,
	"Serial":                 kernels.Serial,
	"ApproximateEntropy":     kernels.ApproximateEntropy,
	"CumulativeSums":         kernels.CumulativeSums,
	"Excursions":             kernels.Excursions,
	"ExcursionsVariant":      kernels.ExcursionsVariant,
}

// ResolveTests turns TestsConfig.Include into the list of TestKinds to
// dispatch, defaulting to all fifteen when Include is empty.
func (t TestsConfig) ResolveTests() ([]kernels.TestKind, error) {
	if len(t.Include) == 0 {
		return kernels.AllTestKinds(), nil
	}
	kinds := make([]kernels.TestKind, 0, len(t.Include))
	for _, name := range t.Include {
		k, ok := testNameToKind[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown test name %q", name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// ResolveBundle builds a runner.Bundle from the documented defaults
// (resolved against the sequence length n) overlaid with any explicit
// overrides in TestsConfig.
func (t TestsConfig) ResolveBundle(n int) (runner.Bundle, error) {
	bundle := runner.DefaultBundle(n)

	if o := t.FrequencyBlock; o != nil {
		fb, err := testargs.NewFrequencyBlock(o.M)
		if err != nil {
			return bundle, err
		}
		bundle.FrequencyBlock = fb
	}
	if o := t.NonOverlappingTemplate; o != nil {
		nt, err := testargs.NewNonOverlappingTemplate(o.M, o.N)
		if err != nil {
			return bundle, err
		}
		bundle.NonOverlappingTemplate = nt
	}
	if o := t.OverlappingTemplate; o != nil {
		ot, err := testargs.NewOverlappingTemplate(o.M, o.BlockM, o.K, o.Legacy)
		if err != nil {
			return bundle, err
		}
		bundle.OverlappingTemplate = ot
	}
	if o := t.LinearComplexity; o != nil {
		lc, err := testargs.NewLinearComplexity(o.M, n)
		if err != nil {
			return bundle, err
		}
		bundle.LinearComplexity = lc
	}
	if o := t.Serial; o != nil {
		s, err := testargs.NewSerial(o.M)
		if err != nil {
			return bundle, err
		}
		bundle.Serial = s
	}
	if o := t.ApproximateEntropy; o != nil {
		ae, err := testargs.NewApproximateEntropy(o.M)
		if err != nil {
			return bundle, err
		}
		bundle.ApproximateEntropy = ae
	}

	return bundle, nil
}
