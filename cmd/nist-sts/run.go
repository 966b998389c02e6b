package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/config"
	"github.com/jihwankim/nist-sts/pkg/reporting"
	"github.com/jihwankim/nist-sts/pkg/runner"
	"github.com/jihwankim/nist-sts/pkg/threadpool"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run the statistical test battery against a bit sequence",
	Long:  `Loads a bit sequence from a file and runs the requested subset of tests.`,
	RunE:  runTestBattery,
}

func init() {
	runCmd.Flags().String("input", "", "path to the input file holding the bit sequence")
	runCmd.Flags().String("input-format", "ascii", "input encoding: ascii ('0'/'1' text) or bytes (raw packed bits)")
	runCmd.Flags().Int("random", 0, "draw this many bits from crypto/rand instead of reading --input")
	runCmd.Flags().String("tests", "", "comma-separated test names to run (overrides the config's include list)")
	runCmd.Flags().Int("max-bits", 0, "cap the number of bits read from the input file (0 means no cap)")
	runCmd.Flags().Int("max-threads", 0, "maximum worker threads (0 means platform default)")
	runCmd.Flags().Float64("threshold", 0, "significance threshold override (0 means use config/default)")
	runCmd.Flags().String("format", "text", "progress/summary output format (text, json, tui)")
	runCmd.Flags().String("output", "", "directory to save a JSON run report (empty disables saving)")
}

func runTestBattery(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	inputFormat, _ := cmd.Flags().GetString("input-format")
	randomBits, _ := cmd.Flags().GetInt("random")
	testsFlag, _ := cmd.Flags().GetString("tests")
	maxBits, _ := cmd.Flags().GetInt("max-bits")
	maxThreads, _ := cmd.Flags().GetInt("max-threads")
	thresholdOverride, _ := cmd.Flags().GetFloat64("threshold")
	outputFormat, _ := cmd.Flags().GetString("format")
	outputDir, _ := cmd.Flags().GetString("output")

	if inputPath == "" && randomBits <= 0 {
		return fmt.Errorf("either --input or --random is required")
	}
	if inputPath != "" && randomBits > 0 {
		return fmt.Errorf("--input and --random are mutually exclusive")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if maxThreads > 0 {
		cfg.Execution.MaxThreads = maxThreads
	}
	if thresholdOverride > 0 {
		cfg.Execution.Threshold = thresholdOverride
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logLevel := reporting.LogLevel(cfg.Logging.Level)
	if verbose {
		logLevel = reporting.LogLevelDebug
	}
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  logLevel,
		Format: reporting.LogFormat(cfg.Logging.Format),
		Output: os.Stdout,
	})

	logger.Info("nist-sts starting", "version", version, "input", inputPath)

	var seq *bitseq.Sequence
	if randomBits > 0 {
		seq, err = randomSequence(randomBits)
	} else {
		seq, err = loadSequence(inputPath, inputFormat, maxBits)
	}
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	logger.Info("loaded bit sequence", "bits", seq.Len())

	if cfg.Execution.MaxThreads > 0 {
		if err := threadpool.SetMaxWorkers(cfg.Execution.MaxThreads); err != nil {
			logger.Warn("max-threads not applied", "error", err)
		}
	}

	if testsFlag != "" {
		cfg.Tests.Include = strings.Split(testsFlag, ",")
	}
	kinds, err := cfg.Tests.ResolveTests()
	if err != nil {
		return fmt.Errorf("failed to resolve test list: %w", err)
	}
	bundle, err := cfg.Tests.ResolveBundle(seq.Len())
	if err != nil {
		return fmt.Errorf("failed to resolve test arguments: %w", err)
	}

	r := runner.New()
	status := r.RunTests(seq, kinds, bundle)
	if status == runner.StatusInvalidTestList {
		return fmt.Errorf("requested test list was invalid (duplicate or unknown test name)")
	}

	report := reporting.NewRunReport(runID(inputPath), seq.Len(), cfg.Execution.Threshold)
	for _, k := range kinds {
		results, err := r.TakeResult(k)
		if err != nil {
			report.AddError(k.String(), err)
			continue
		}
		report.AddOutcome(k.String(), results)
	}
	report.Finalize(len(kinds))

	progress := reporting.NewProgressReporter(reporting.OutputFormat(outputFormat), logger)
	progress.ReportRunCompleted(report)

	if outputDir != "" {
		storage, err := reporting.NewStorage(outputDir, 20, logger)
		if err != nil {
			return fmt.Errorf("failed to open report storage: %w", err)
		}
		if _, err := storage.SaveReport(report); err != nil {
			logger.Warn("failed to save report", "error", err)
		}
	}

	if status == runner.StatusPartialFailure {
		return fmt.Errorf("one or more tests failed to complete; see report errors")
	}
	return nil
}

// loadSequence reads path and builds a bitseq.Sequence according to format,
// which is either "ascii" ('0'/'1' text, every other byte skipped) or
// "bytes" (raw packed bits, MSB-first per byte).
func loadSequence(path, format string, maxBits int) (*bitseq.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case "ascii", "":
		return bitseq.FromString(string(data), maxBits), nil
	case "bytes":
		seq := bitseq.FromBytes(data)
		if maxBits > 0 {
			seq.Crop(maxBits)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("unknown --input-format %q (want ascii or bytes)", format)
	}
}

// randomSequence draws n bits from crypto/rand for ad-hoc smoke-testing of
// the battery itself. Generation is strictly the CLI's business; the core
// packages never produce bits.
func randomSequence(n int) (*bitseq.Sequence, error) {
	raw := make([]byte, (n+7)/8)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("crypto/rand: %w", err)
	}
	seq := bitseq.FromBytes(raw)
	seq.Crop(n)
	return seq, nil
}

// runID derives a stable, human-readable identifier for a report from the
// input file's base name.
func runID(inputPath string) string {
	if inputPath == "" {
		return "run-random"
	}
	return fmt.Sprintf("run-%s", filepath.Base(inputPath))
}
