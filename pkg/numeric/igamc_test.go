package numeric

import (
	"math"
	"testing"
)

func TestIgamcKnownValues(t *testing.T) {
	cases := []struct {
		a, x, want float64
	}{
		{1, 1, math.Exp(-1)},             // Q(1,x) = e^-x
		{1, 0, 1.0},                      // Q(a,0) = 1
		{0.5, 0.5, math.Erfc(math.Sqrt(0.5))}, // Q(1/2,x) = erfc(sqrt(x))
		{5, 0, 1.0},
	}
	for _, c := range cases {
		got, err := Igamc(c.a, c.x)
		if err != nil {
			t.Fatalf("Igamc(%v,%v) returned error: %v", c.a, c.x, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Igamc(%v,%v) = %.12f, want %.12f", c.a, c.x, got, c.want)
		}
	}
}

func TestIgamcMonotoneDecreasingInX(t *testing.T) {
	prev := math.Inf(1)
	for _, x := range []float64{0, 0.5, 1, 2, 5, 10} {
		got, err := Igamc(3, x)
		if err != nil {
			t.Fatalf("Igamc(3,%v) error: %v", x, err)
		}
		if got > prev {
			t.Errorf("Igamc(3,%v) = %v increased from previous %v", x, got, prev)
		}
		prev = got
	}
}

func TestIgamcRejectsInvalidDomain(t *testing.T) {
	if _, err := Igamc(0, 1); err == nil {
		t.Error("Igamc(0, 1) should fail: a must be > 0")
	}
	if _, err := Igamc(1, -1); err == nil {
		t.Error("Igamc(1, -1) should fail: x must be >= 0")
	}
}

func TestIgamcInRange(t *testing.T) {
	for _, a := range []float64{0.5, 1, 2.5, 10, 50} {
		for _, x := range []float64{0, 1, 5, 20, 100} {
			got, err := Igamc(a, x)
			if err != nil {
				continue
			}
			if got < 0 || got > 1 {
				t.Errorf("Igamc(%v,%v) = %v out of [0,1]", a, x, got)
			}
		}
	}
}
