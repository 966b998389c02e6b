package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

func TestRunOverlappingTemplateDefault(t *testing.T) {
	seq := bitseq.FromBools(pseudoRandomBits(1100000, 11))
	args := testargs.DefaultOverlappingTemplate()
	got, err := RunOverlappingTemplate(seq, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P < 0 || got.P > 1 {
		t.Errorf("p = %v out of [0,1]", got.P)
	}
}

func TestRunOverlappingTemplateLegacyUsesFixedVector(t *testing.T) {
	seq := bitseq.FromBools(pseudoRandomBits(1100000, 12))
	args, err := testargs.NewOverlappingTemplate(9, 1032, 6, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if legacyOverlappingPi[0] != 0.367879 {
		t.Fatalf("legacy pi vector mismatch: %v", legacyOverlappingPi)
	}
	got, err := RunOverlappingTemplate(seq, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P < 0 || got.P > 1 {
		t.Errorf("p = %v out of [0,1]", got.P)
	}
}

func TestRunOverlappingTemplateRejectsShortInput(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(100))
	args := testargs.DefaultOverlappingTemplate()
	if _, err := RunOverlappingTemplate(seq, args); err == nil {
		t.Error("n below minimum should be rejected")
	}
}
