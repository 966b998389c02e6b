package reporting

import (
	"fmt"
	"time"

	"github.com/jihwankim/nist-sts/pkg/result"
)

// RunStatus summarizes how completely a run's requested tests executed.
type RunStatus string

const (
	StatusCompleted RunStatus = "completed"
	StatusPartial   RunStatus = "partial"
	StatusFailed    RunStatus = "failed"
)

// RunReport is the rendered outcome of one runner invocation: every
// requested test, the p-value(s) its kernel produced, and the threshold
// they were judged against.
type RunReport struct {
	RunID          string    `json:"run_id"`
	SequenceLength int       `json:"sequence_length"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Duration       string    `json:"duration"`
	Threshold      float64   `json:"threshold"`
	Status         RunStatus `json:"status"`

	Tests  []TestOutcome `json:"tests"`
	Errors []string      `json:"errors,omitempty"`
}

// TestOutcome groups the one-or-more p-values a single kernel produced
// under that kernel's name. Serial, Cumulative Sums, Random Excursions and
// its variant each emit several results from one invocation.
type TestOutcome struct {
	Name    string       `json:"name"`
	Results []ResultView `json:"results"`
}

// ResultView is a display-ready copy of a result.TestResult plus the
// pass/fail verdict computed against the run's threshold.
type ResultView struct {
	P       float64 `json:"p_value"`
	Passed  bool    `json:"passed"`
	Comment string  `json:"comment,omitempty"`
}

// NewRunReport starts a report for a sequence of the given length, judged
// against threshold. StartTime is stamped immediately.
func NewRunReport(runID string, sequenceLength int, threshold float64) *RunReport {
	return &RunReport{
		RunID:          runID,
		SequenceLength: sequenceLength,
		StartTime:      time.Now(),
		Threshold:      threshold,
	}
}

// AddOutcome records a kernel's results, converting each into a ResultView.
func (r *RunReport) AddOutcome(name string, results []result.TestResult) {
	views := make([]ResultView, len(results))
	for i, res := range results {
		views[i] = ResultView{
			P:       res.P,
			Passed:  res.Passed(r.Threshold),
			Comment: res.Comment,
		}
	}
	r.Tests = append(r.Tests, TestOutcome{Name: name, Results: views})
}

// AddError records that a requested test could not be retrieved, e.g.
// because its argument constraints rejected the sequence length.
func (r *RunReport) AddError(name string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", name, err))
}

// Finalize stamps EndTime/Duration and derives Status from how many of the
// requested tests actually produced an outcome.
func (r *RunReport) Finalize(requested int) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime).String()

	switch {
	case len(r.Tests) == 0:
		r.Status = StatusFailed
	case len(r.Errors) == 0 && len(r.Tests) == requested:
		r.Status = StatusCompleted
	default:
		r.Status = StatusPartial
	}
}

// Summary tallies pass/fail counts across every p-value in the report.
func (r *RunReport) Summary() (passed, failed int) {
	for _, t := range r.Tests {
		for _, res := range t.Results {
			if res.Passed {
				passed++
			} else {
				failed++
			}
		}
	}
	return
}
