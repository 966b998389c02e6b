package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	version = "dev" // Will be set by build flags
)

var rootCmd = &cobra.Command{
	Use:   "nist-sts",
	Short: "NIST SP 800-22 statistical randomness test battery",
	Long: `nist-sts runs the fifteen NIST SP 800-22 statistical tests against a bit
sequence and reports, for each test, a p-value quantifying how plausibly the
sequence could have been drawn from an ideal uniform random source.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (empty means built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
}

// Commands are defined in separate files:
// - runCmd in run.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
