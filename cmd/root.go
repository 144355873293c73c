package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/tabfit-cli/internal/config"
	"github.com/KaramelBytes/tabfit-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tabfit",
	Short: "tabfit: fit a linear regression over a tabular file and report metrics",
	Long:  `tabfit is a one-shot batch CLI that loads a delimited tabular file, cleans it, fits an ordinary least-squares model against the last numeric column, and emits fit-quality metrics as a JSON record.`,
	// Errors are reported as a single JSON record; suppress cobra's own
	// error and usage echo for command failures.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute is the entry point called by main.main(). On failure it emits
// exactly one error record to stderr and exits non-zero.
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		report.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tabfit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults.
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
