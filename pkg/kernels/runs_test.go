package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
)

// Runs on an alternating 100-bit sequence: p extremely small.
func TestRunsAlternatingRejects(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(100))
	got, err := RunRuns(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P > 1e-6 {
		t.Errorf("p = %v, want extremely small (~1.5e-23)", got.P)
	}
}

func TestRunsPiEstimatorFailed(t *testing.T) {
	// Overwhelmingly biased toward ones: pi estimator must fail.
	bits := make([]bool, 1000)
	for i := range bits {
		if i < 950 {
			bits[i] = true
		}
	}
	seq := bitseq.FromBools(bits)
	got, err := RunRuns(seq)
	if err != nil {
		t.Fatalf("pi-estimator failure should be a successful call, got error: %v", err)
	}
	if got.P != 0.0 || got.Comment != "pi estimator failed" {
		t.Errorf("got %+v, want p=0 with pi-estimator comment", got)
	}
}

func TestRunsRejectsShortInput(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(10))
	if _, err := RunRuns(seq); err == nil {
		t.Error("n below minimum should be rejected")
	}
}
