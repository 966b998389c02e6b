package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ReportFormat represents the report output format.
type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
)

// Formatter renders a RunReport to disk in one of the supported formats.
type Formatter struct {
	logger *Logger
}

// NewFormatter creates a new report formatter.
func NewFormatter(logger *Logger) *Formatter {
	return &Formatter{logger: logger}
}

// GenerateReport generates a report in the specified format.
func (f *Formatter) GenerateReport(report *RunReport, format ReportFormat, outputPath string) error {
	switch format {
	case ReportFormatHTML:
		return f.generateHTMLReport(report, outputPath)
	case ReportFormatText:
		return f.generateTextReport(report, outputPath)
	case ReportFormatJSON:
		return fmt.Errorf("JSON format is saved directly via Storage.SaveReport")
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (f *Formatter) generateHTMLReport(report *RunReport, outputPath string) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"statusClass": func(passed bool) string {
			if passed {
				return "pass"
			}
			return "fail"
		},
		"statusIcon": func(passed bool) string {
			if passed {
				return "✅"
			}
			return "❌"
		},
	}).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	f.logger.Info("HTML report generated", "path", outputPath)
	return nil
}

func (f *Formatter) generateTextReport(report *RunReport, outputPath string) error {
	var buf bytes.Buffer

	buf.WriteString(strings.Repeat("=", 72) + "\n")
	buf.WriteString("   RANDOMNESS TEST RUN REPORT\n")
	buf.WriteString(strings.Repeat("=", 72) + "\n\n")

	buf.WriteString("RUN SUMMARY\n")
	buf.WriteString(strings.Repeat("-", 72) + "\n")
	buf.WriteString(fmt.Sprintf("Run ID:           %s\n", report.RunID))
	buf.WriteString(fmt.Sprintf("Status:           %s\n", report.Status))
	buf.WriteString(fmt.Sprintf("Sequence Length:  %d bits\n", report.SequenceLength))
	buf.WriteString(fmt.Sprintf("Threshold:        %v\n", report.Threshold))
	buf.WriteString(fmt.Sprintf("Start Time:       %s\n", report.StartTime.Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("End Time:         %s\n", report.EndTime.Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("Duration:         %s\n", report.Duration))
	passed, failed := report.Summary()
	buf.WriteString(fmt.Sprintf("P-values:         %d passed, %d failed\n", passed, failed))
	buf.WriteString("\n")

	if len(report.Tests) > 0 {
		buf.WriteString("TESTS\n")
		buf.WriteString(strings.Repeat("-", 72) + "\n")
		for _, outcome := range report.Tests {
			buf.WriteString(fmt.Sprintf("%-28s\n", outcome.Name))
			for _, res := range outcome.Results {
				status := "PASS"
				if !res.Passed {
					status = "FAIL"
				}
				if res.Comment != "" {
					buf.WriteString(fmt.Sprintf("   p = %.6f  [%s]  %s\n", res.P, status, res.Comment))
				} else {
					buf.WriteString(fmt.Sprintf("   p = %.6f  [%s]\n", res.P, status))
				}
			}
		}
		buf.WriteString("\n")
	}

	if len(report.Errors) > 0 {
		buf.WriteString("ERRORS\n")
		buf.WriteString(strings.Repeat("-", 72) + "\n")
		for i, err := range report.Errors {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, err))
		}
		buf.WriteString("\n")
	}

	buf.WriteString(strings.Repeat("=", 72) + "\n")
	buf.WriteString(fmt.Sprintf("Generated: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	buf.WriteString(strings.Repeat("=", 72) + "\n")

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	f.logger.Info("text report generated", "path", outputPath)
	return nil
}

// CompareReports generates a side-by-side comparison of several runs,
// useful for judging whether a generator's output quality drifts across
// samples.
func (f *Formatter) CompareReports(reports []*RunReport, outputPath string) error {
	if len(reports) < 2 {
		return fmt.Errorf("need at least 2 reports to compare")
	}

	var buf bytes.Buffer

	buf.WriteString(strings.Repeat("=", 72) + "\n")
	buf.WriteString("   RUN COMPARISON\n")
	buf.WriteString(strings.Repeat("=", 72) + "\n\n")

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartTime.Before(reports[j].StartTime)
	})

	buf.WriteString(fmt.Sprintf("%-20s %-12s %-10s %-10s %-10s\n",
		"Run ID", "Status", "Length", "Passed", "Failed"))
	buf.WriteString(strings.Repeat("-", 72) + "\n")

	for _, report := range reports {
		passed, failed := report.Summary()
		buf.WriteString(fmt.Sprintf("%-20s %-12s %-10d %-10d %-10d\n",
			truncate(report.RunID, 20),
			report.Status,
			report.SequenceLength,
			passed,
			failed,
		))
	}
	buf.WriteString("\n")

	buf.WriteString("PER-TEST COMPARISON\n")
	buf.WriteString(strings.Repeat("-", 72) + "\n")

	names := make(map[string]bool)
	for _, report := range reports {
		for _, outcome := range report.Tests {
			names[outcome.Name] = true
		}
	}
	sortedNames := make([]string, 0, len(names))
	for n := range names {
		sortedNames = append(sortedNames, n)
	}
	sort.Strings(sortedNames)

	for _, name := range sortedNames {
		buf.WriteString(fmt.Sprintf("\n%s:\n", name))
		for _, report := range reports {
			var found *TestOutcome
			for i := range report.Tests {
				if report.Tests[i].Name == name {
					found = &report.Tests[i]
					break
				}
			}
			if found != nil {
				buf.WriteString(fmt.Sprintf("  [%s] %s: %s\n",
					truncate(report.RunID, 12), report.Status, summarizeOutcome(*found)))
			} else {
				buf.WriteString(fmt.Sprintf("  [%s] not run\n", truncate(report.RunID, 12)))
			}
		}
	}
	buf.WriteString("\n")

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write comparison report: %w", err)
	}

	f.logger.Info("comparison report generated", "path", outputPath)
	return nil
}

// GetReportPath generates a report file path based on a run report and format.
func GetReportPath(report *RunReport, format ReportFormat, outputDir string) string {
	timestamp := report.StartTime.Format("20060102-150405")
	filename := fmt.Sprintf("report-%s-%s.%s", timestamp, report.RunID, string(format))
	return filepath.Join(outputDir, filename)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Randomness Test Run - {{.RunID}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1000px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            padding: 30px;
        }
        h1, h2 {
            color: #2c3e50;
            border-bottom: 2px solid #3498db;
            padding-bottom: 10px;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 8px 8px 0 0;
            margin: -30px -30px 30px -30px;
        }
        .info-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
            gap: 20px;
            margin: 20px 0;
        }
        .info-box {
            background-color: #ecf0f1;
            padding: 15px;
            border-radius: 4px;
        }
        .info-label {
            font-weight: bold;
            color: #7f8c8d;
            font-size: 0.9em;
            margin-bottom: 5px;
        }
        .info-value {
            font-size: 1.1em;
            color: #2c3e50;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
        }
        th, td {
            padding: 10px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        th {
            background-color: #3498db;
            color: white;
        }
        .pill {
            display: inline-block;
            padding: 2px 10px;
            border-radius: 4px;
            font-weight: bold;
        }
        .pill.pass { background-color: #27ae60; color: white; }
        .pill.fail { background-color: #e74c3c; color: white; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Randomness Test Run</h1>
            <p>Run ID: {{.RunID}}</p>
        </div>

        <h2>Summary</h2>
        <div class="info-grid">
            <div class="info-box">
                <div class="info-label">Status</div>
                <div class="info-value">{{.Status}}</div>
            </div>
            <div class="info-box">
                <div class="info-label">Sequence Length</div>
                <div class="info-value">{{.SequenceLength}} bits</div>
            </div>
            <div class="info-box">
                <div class="info-label">Threshold</div>
                <div class="info-value">{{.Threshold}}</div>
            </div>
            <div class="info-box">
                <div class="info-label">Duration</div>
                <div class="info-value">{{.Duration}}</div>
            </div>
        </div>

        {{if .Tests}}
        <h2>Tests</h2>
        <table>
            <thead>
                <tr><th>Test</th><th>p-value</th><th>Result</th><th>Comment</th></tr>
            </thead>
            <tbody>
                {{range .Tests}}
                {{$name := .Name}}
                {{range .Results}}
                <tr>
                    <td>{{$name}}</td>
                    <td>{{printf "%.6f" .P}}</td>
                    <td><span class="pill {{statusClass .Passed}}">{{statusIcon .Passed}} {{if .Passed}}PASS{{else}}FAIL{{end}}</span></td>
                    <td>{{.Comment}}</td>
                </tr>
                {{end}}
                {{end}}
            </tbody>
        </table>
        {{end}}

        {{if .Errors}}
        <h2>Errors</h2>
        <ul>
            {{range .Errors}}
            <li>{{.}}</li>
            {{end}}
        </ul>
        {{end}}

        <p style="text-align: center; color: #7f8c8d; margin-top: 30px;">
            Generated {{formatTime .EndTime}}
        </p>
    </div>
</body>
</html>
`
