package testargs

import "testing"

func TestNewFrequencyBlockRejectsZero(t *testing.T) {
	if _, err := NewFrequencyBlock(0); err == nil {
		t.Error("M=0 should be rejected")
	}
}

func TestAutoFrequencyBlockSatisfiesConstraints(t *testing.T) {
	for _, n := range []int{100, 1000, 1000000} {
		fb := AutoFrequencyBlock(n)
		if fb.M < 20 {
			t.Errorf("n=%d: M=%d, want >= 20", n, fb.M)
		}
		if fb.M <= n/100 {
			t.Errorf("n=%d: M=%d, want > n/100=%d", n, fb.M, n/100)
		}
		if n/fb.M >= 100 {
			t.Errorf("n=%d: M=%d gives %d blocks, want < 100", n, fb.M, n/fb.M)
		}
	}
}

func TestNewNonOverlappingTemplateValidation(t *testing.T) {
	if _, err := NewNonOverlappingTemplate(1, 8); err == nil {
		t.Error("m=1 should be rejected")
	}
	if _, err := NewNonOverlappingTemplate(22, 8); err == nil {
		t.Error("m=22 should be rejected")
	}
	if _, err := NewNonOverlappingTemplate(9, 0); err == nil {
		t.Error("N=0 should be rejected")
	}
	if _, err := NewNonOverlappingTemplate(9, 100); err == nil {
		t.Error("N=100 should be rejected (N<100 required)")
	}
	if got, err := NewNonOverlappingTemplate(9, 8); err != nil || got.M != 9 || got.N != 8 {
		t.Errorf("valid args rejected or mismatched: %+v, err=%v", got, err)
	}
}

func TestDefaultNonOverlappingTemplate(t *testing.T) {
	d := DefaultNonOverlappingTemplate()
	if d.M != 9 || d.N != 8 {
		t.Errorf("defaults = %+v, want M=9 N=8", d)
	}
}

func TestNewOverlappingTemplateLegacyForcesK(t *testing.T) {
	got, err := NewOverlappingTemplate(9, 1032, 6, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.K != 5 {
		t.Errorf("legacy K = %d, want forced 5", got.K)
	}
	if _, err := NewOverlappingTemplate(11, 1032, 6, true); err == nil {
		t.Error("legacy mode should reject m=11")
	}
}

func TestNewOverlappingTemplateDefaultMode(t *testing.T) {
	d := DefaultOverlappingTemplate()
	if d.M != 9 || d.BlockM != 1032 || d.K != 6 || d.Legacy {
		t.Errorf("defaults = %+v, unexpected", d)
	}
}

func TestNewLinearComplexityValidation(t *testing.T) {
	if _, err := NewLinearComplexity(100, 1000000); err == nil {
		t.Error("M=100 below floor should be rejected")
	}
	if _, err := NewLinearComplexity(1000, 100000); err == nil {
		t.Error("n/M < 200 should be rejected")
	}
	if _, err := NewLinearComplexity(1000, 1000000); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}
}

func TestAutoLinearComplexityBounds(t *testing.T) {
	for _, n := range []int{100000, 1000000, 50000000} {
		lc := AutoLinearComplexity(n)
		if lc.M < 500 || lc.M > 5000 {
			t.Errorf("n=%d: M=%d out of [500,5000]", n, lc.M)
		}
	}
}

func TestSerialRuntimeConstraint(t *testing.T) {
	s, err := NewSerial(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.CheckRuntime(1000000); err != nil {
		t.Errorf("M=16 should satisfy runtime constraint at n=1e6: %v", err)
	}
	if err := s.CheckRuntime(100); err == nil {
		t.Error("M=16 should violate runtime constraint at n=100")
	}
}

func TestNewSerialRejectsTooSmall(t *testing.T) {
	if _, err := NewSerial(1); err == nil {
		t.Error("M=1 should be rejected")
	}
}

func TestApproximateEntropyRuntimeConstraint(t *testing.T) {
	a, err := NewApproximateEntropy(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.CheckRuntime(1000000); err != nil {
		t.Errorf("M=10 should satisfy runtime constraint at n=1e6: %v", err)
	}
	if err := a.CheckRuntime(1000); err == nil {
		t.Error("M=10 should violate runtime constraint at n=1000")
	}
}
