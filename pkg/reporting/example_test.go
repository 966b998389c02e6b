package reporting_test

import (
	"fmt"
	"os"

	"github.com/jihwankim/nist-sts/pkg/reporting"
	"github.com/jihwankim/nist-sts/pkg/result"
)

// Example demonstrates building, saving, and rendering a run report.
func Example() {
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  reporting.LogLevelInfo,
		Format: reporting.LogFormatText,
		Output: os.Stdout,
	})

	storage, err := reporting.NewStorage("./run-reports", 10, logger)
	if err != nil {
		fmt.Printf("Failed to create storage: %v\n", err)
		return
	}
	defer os.RemoveAll("./run-reports")

	report := reporting.NewRunReport("run-12345", 1000000, 0.01)
	report.AddOutcome("Frequency", []result.TestResult{result.New(0.534146)})
	report.AddOutcome("Runs", []result.TestResult{result.New(0.500798)})
	report.Finalize(2)

	path, err := storage.SaveReport(report)
	if err != nil {
		fmt.Printf("Failed to save report: %v\n", err)
		return
	}
	fmt.Printf("Report saved successfully\n")

	summaries, err := storage.ListReports()
	if err != nil {
		fmt.Printf("Failed to list reports: %v\n", err)
		return
	}
	fmt.Printf("Found %d report(s)\n", len(summaries))

	loaded, err := storage.LoadReport(path)
	if err != nil {
		fmt.Printf("Failed to load report: %v\n", err)
		return
	}
	fmt.Printf("Loaded report for run: %s\n", loaded.RunID)

	formatter := reporting.NewFormatter(logger)
	textPath := "./run-reports/report.txt"
	if err := formatter.GenerateReport(report, reporting.ReportFormatText, textPath); err != nil {
		fmt.Printf("Failed to generate text report: %v\n", err)
		return
	}
	fmt.Printf("Text report generated\n")

	htmlPath := "./run-reports/report.html"
	if err := formatter.GenerateReport(report, reporting.ReportFormatHTML, htmlPath); err != nil {
		fmt.Printf("Failed to generate HTML report: %v\n", err)
		return
	}
	fmt.Printf("HTML report generated\n")

	// Output will vary due to timestamps, so we don't include it.
}
