package numeric

import (
	"math"
	"testing"
)

func TestSpectralMagnitudesConstantSequence(t *testing.T) {
	x := make([]float64, 16)
	for i := range x {
		x[i] = 1.0
	}
	mags := SpectralMagnitudes(x)
	if len(mags) != 8 {
		t.Fatalf("len(mags) = %d, want 8", len(mags))
	}
	// A constant sequence has all of its energy at DC; every other
	// coefficient should be near zero.
	for i := 1; i < len(mags); i++ {
		if mags[i] > 1e-9 {
			t.Errorf("mags[%d] = %v, want ~0 for constant input", i, mags[i])
		}
	}
	if mags[0] < float64(len(x))-1e-6 {
		t.Errorf("mags[0] = %v, want ~%v", mags[0], len(x))
	}
}

func TestSpectralMagnitudesEmpty(t *testing.T) {
	if got := SpectralMagnitudes(nil); got != nil {
		t.Errorf("SpectralMagnitudes(nil) = %v, want nil", got)
	}
}

func TestSpectralMagnitudesPureTone(t *testing.T) {
	n := 32
	k0 := 8
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * float64(k0) * float64(i) / float64(n))
	}
	mags := SpectralMagnitudes(x)
	// A unit cosine at bin k0 carries |X_k0| = n/2 and nothing elsewhere.
	if math.Abs(mags[k0]-float64(n)/2) > 1e-9 {
		t.Errorf("mags[%d] = %v, want %v", k0, mags[k0], float64(n)/2)
	}
	for i, m := range mags {
		if i != k0 && m > 1e-9 {
			t.Errorf("mags[%d] = %v, want ~0 away from the tone", i, m)
		}
	}
}

func TestPeakThreshold(t *testing.T) {
	got := PeakThreshold(1000)
	want := math.Sqrt(math.Log(20) * 1000)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PeakThreshold(1000) = %v, want %v", got, want)
	}
}
