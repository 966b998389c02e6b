package reporting

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat represents the progress output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTUI  OutputFormat = "tui"
)

// ProgressReporter streams per-kernel progress while a Runner dispatch is
// in flight, then prints the final summary once every result is in.
type ProgressReporter struct {
	format OutputFormat
	logger *Logger
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(format OutputFormat, logger *Logger) *ProgressReporter {
	return &ProgressReporter{
		format: format,
		logger: logger,
	}
}

// ReportTestStarted reports that a kernel has been submitted to the pool.
func (pr *ProgressReporter) ReportTestStarted(name string) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event": "test_started",
			"test":  name,
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("\r▶ running %s...", name)
	default:
		fmt.Printf("[START] %s\n", name)
	}
}

// ReportTestCompleted reports a kernel's outcome.
func (pr *ProgressReporter) ReportTestCompleted(outcome TestOutcome) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":   "test_completed",
			"outcome": outcome,
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("%s %s\n", statusGlyph(allPassed(outcome)), outcome.Name)
		for _, res := range outcome.Results {
			fmt.Printf("   p = %.6f %s\n", res.P, passFailWord(res.Passed))
		}
	default:
		fmt.Printf("[RESULT] %s: %s\n", outcome.Name, summarizeOutcome(outcome))
	}
}

// ReportTestFailed reports that a requested kernel could not be run.
func (pr *ProgressReporter) ReportTestFailed(name string, err error) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event": "test_failed",
			"test":  name,
			"error": err.Error(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("✗ %s: %v\n", name, err)
	default:
		fmt.Printf("[ERROR] %s: %v\n", name, err)
	}
}

// ReportRunCompleted prints the final summary for a finished run.
func (pr *ProgressReporter) ReportRunCompleted(report *RunReport) {
	switch pr.format {
	case FormatJSON:
		data, err := json.Marshal(report)
		if err != nil {
			pr.logger.Error("failed to marshal report", "error", err)
			return
		}
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		pr.printSummary(report)
	default:
		pr.printSummary(report)
	}
}

func (pr *ProgressReporter) printSummary(report *RunReport) {
	passed, failed := report.Summary()

	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  RUN %s  %s\n", report.RunID, report.Status)
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  sequence length: %d bits\n", report.SequenceLength)
	fmt.Printf("  threshold:       %v\n", report.Threshold)
	fmt.Printf("  duration:        %s\n", report.Duration)
	fmt.Printf("  p-values:        %d passed, %d failed\n", passed, failed)
	fmt.Println()

	for _, outcome := range report.Tests {
		fmt.Printf("  %-28s %s\n", outcome.Name, summarizeOutcome(outcome))
	}

	if len(report.Errors) > 0 {
		fmt.Println()
		fmt.Println("  errors:")
		for _, e := range report.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}
	fmt.Println(strings.Repeat("=", 72))
}

func summarizeOutcome(outcome TestOutcome) string {
	var parts []string
	for _, res := range outcome.Results {
		word := passFailWord(res.Passed)
		if res.Comment != "" {
			parts = append(parts, fmt.Sprintf("p=%.6f %s (%s)", res.P, word, res.Comment))
		} else {
			parts = append(parts, fmt.Sprintf("p=%.6f %s", res.P, word))
		}
	}
	return strings.Join(parts, ", ")
}

func allPassed(outcome TestOutcome) bool {
	for _, res := range outcome.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

func passFailWord(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func statusGlyph(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}

func (pr *ProgressReporter) clearLine() {
	fmt.Print("\033[K")
}
