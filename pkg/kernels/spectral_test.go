package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
)

func TestSpectralOnPseudoRandomSequence(t *testing.T) {
	seq := bitseq.FromBools(pseudoRandomBits(1000, 2))
	got, err := RunSpectral(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P < 0 || got.P > 1 {
		t.Errorf("p = %v out of [0,1]", got.P)
	}
}

func TestSpectralAlternatingRejects(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(1000))
	got, err := RunSpectral(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P > 0.5 {
		t.Errorf("p = %v, want small for a pure-tone sequence", got.P)
	}
}

func TestSpectralRejectsEmpty(t *testing.T) {
	seq := bitseq.FromBools(nil)
	if _, err := RunSpectral(seq); err == nil {
		t.Error("empty sequence should be rejected")
	}
}
