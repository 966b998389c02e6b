package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
)

func TestRunExcursionsProducesEightResults(t *testing.T) {
	seq := bitseq.FromBools(pseudoRandomBits(1100000, 8))
	results, err := RunExcursions(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 8 {
		t.Fatalf("got %d results, want 8", len(results))
	}
	for _, r := range results {
		if r.P < 0 || r.P > 1 {
			t.Errorf("p = %v out of [0,1]", r.P)
		}
	}
}

func TestRunExcursionsRejectsShortInput(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(1000))
	if _, err := RunExcursions(seq); err == nil {
		t.Error("n below minimum should be rejected")
	}
}

func TestCycleBoundariesOnSimpleWalk(t *testing.T) {
	// bits 1,0,1,0 -> walk 0,1,0,1,0: returns to zero at indices 2 and 4.
	seq := bitseq.FromBools([]bool{true, false, true, false})
	s := cumulativeWalk(seq)
	bounds := cycleBoundaries(s)
	if len(bounds) != 2 || bounds[0] != 2 || bounds[1] != 4 {
		t.Errorf("cycleBoundaries = %v, want [2 4]", bounds)
	}
}

func TestCycleBoundariesClosesTrailingPartialCycle(t *testing.T) {
	// bits 1,0,1,1 -> walk 0,1,0,1,2: the walk ends away from zero, so the
	// final position closes the last cycle.
	seq := bitseq.FromBools([]bool{true, false, true, true})
	s := cumulativeWalk(seq)
	bounds := cycleBoundaries(s)
	if len(bounds) != 2 || bounds[0] != 2 || bounds[1] != 4 {
		t.Errorf("cycleBoundaries = %v, want [2 4]", bounds)
	}
}
