package runner

import (
	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/kernels"
	"github.com/jihwankim/nist-sts/pkg/result"
)

// dispatch invokes the kernel for kind and normalizes its output to a
// result slice, since single-valued kernels return one TestResult while
// multi-valued ones return a slice.
func dispatch(seq *bitseq.Sequence, kind kernels.TestKind, bundle Bundle) ([]result.TestResult, error) {
	switch kind {
	case kernels.Frequency:
		r, err := kernels.RunFrequency(seq)
		return one(r, err)
	case kernels.BlockFrequency:
		r, err := kernels.RunBlockFrequency(seq, bundle.FrequencyBlock)
		return one(r, err)
	case kernels.Runs:
		r, err := kernels.RunRuns(seq)
		return one(r, err)
	case kernels.LongestRun:
		r, err := kernels.RunLongestRun(seq)
		return one(r, err)
	case kernels.Rank:
		r, err := kernels.RunRank(seq)
		return one(r, err)
	case kernels.Spectral:
		r, err := kernels.RunSpectral(seq)
		return one(r, err)
	case kernels.NonOverlappingTemplate:
		return kernels.RunNonOverlappingTemplate(seq, bundle.NonOverlappingTemplate)
	case kernels.OverlappingTemplate:
		r, err := kernels.RunOverlappingTemplate(seq, bundle.OverlappingTemplate)
		return one(r, err)
	case kernels.Universal:
		r, err := kernels.RunUniversal(seq)
		return one(r, err)
	case kernels.LinearComplexity:
		r, err := kernels.RunLinearComplexity(seq, bundle.LinearComplexity)
		return one(r, err)
	case kernels.Serial:
		return kernels.RunSerial(seq, bundle.Serial)
	case kernels.ApproximateEntropy:
		r, err := kernels.RunApproximateEntropy(seq, bundle.ApproximateEntropy)
		return one(r, err)
	case kernels.CumulativeSums:
		return kernels.RunCumulativeSums(seq)
	case kernels.Excursions:
		return kernels.RunExcursions(seq)
	case kernels.ExcursionsVariant:
		return kernels.RunExcursionsVariant(seq)
	default:
		panic("runner: dispatch called with an unvalidated TestKind")
	}
}

func one(r result.TestResult, err error) ([]result.TestResult, error) {
	if err != nil {
		return nil, err
	}
	return []result.TestResult{r}, nil
}
