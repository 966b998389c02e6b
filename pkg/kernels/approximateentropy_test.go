package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

// Approximate Entropy on an alternating 1024-bit sequence with M=2: p ~ 0.
func TestApproximateEntropyAlternatingRejects(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(1024))
	args, err := testargs.NewApproximateEntropy(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := RunApproximateEntropy(seq, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P > 1e-6 {
		t.Errorf("p = %v, want ~0", got.P)
	}
}

func TestApproximateEntropyRejectsRuntimeViolation(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(100))
	args, _ := testargs.NewApproximateEntropy(10)
	if _, err := RunApproximateEntropy(seq, args); err == nil {
		t.Error("runtime constraint violation should be rejected")
	}
}
