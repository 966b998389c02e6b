package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

func TestIsAperiodic(t *testing.T) {
	cases := []struct {
		tmpl []int
		want bool
	}{
		{[]int{0, 0, 1}, true},
		{[]int{0, 1, 0, 1}, false}, // prefix "01" == suffix "01"
		{[]int{1, 1, 1}, false},    // prefix "1" == suffix "1" (and "11"=="11")
		{[]int{0, 1, 1}, true},
	}
	for _, c := range cases {
		if got := isAperiodic(c.tmpl); got != c.want {
			t.Errorf("isAperiodic(%v) = %v, want %v", c.tmpl, got, c.want)
		}
	}
}

func TestAperiodicTemplatesCountForSmallM(t *testing.T) {
	// m=3: all 8 patterns minus periodic ones (000,111,010,101) leaves 4.
	templates := aperiodicTemplates(3)
	if len(templates) != 4 {
		t.Fatalf("got %d aperiodic templates for m=3, want 4", len(templates))
	}
}

func TestRunNonOverlappingTemplateProducesOnePerTemplate(t *testing.T) {
	seq := bitseq.FromBools(pseudoRandomBits(10000, 7))
	args, err := testargs.NewNonOverlappingTemplate(3, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := RunNonOverlappingTemplate(seq, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(aperiodicTemplates(3)) {
		t.Fatalf("got %d results, want %d", len(results), len(aperiodicTemplates(3)))
	}
	for _, r := range results {
		if r.P < 0 || r.P > 1 {
			t.Errorf("p = %v out of [0,1]", r.P)
		}
	}
}
