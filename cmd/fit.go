package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/tabfit-cli/internal/pipeline"
	"github.com/KaramelBytes/tabfit-cli/internal/table"
	"github.com/spf13/cobra"
)

var (
	fitOutputPath   string
	fitDelimiter    string
	fitTestFraction float64
	fitSeed         int64
	fitPretty       bool
	fitFormat       string
)

var fitCmd = &cobra.Command{
	Use:   "fit <file>",
	Short: "Run the regression pipeline over a CSV/TSV and print the result record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		lopt := table.DefaultOptions()
		popt := pipeline.DefaultOptions()
		pretty := fitPretty
		format := fitFormat
		delim := fitDelimiter
		if cfg != nil {
			popt.TestFraction = cfg.TestFraction
			popt.Seed = cfg.Seed
			if !cmd.Flags().Changed("pretty") {
				pretty = cfg.Pretty
			}
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				format = cfg.Format
			}
			if delim == "" {
				delim = cfg.Delimiter
			}
		}
		if cmd.Flags().Changed("test-fraction") {
			popt.TestFraction = fitTestFraction
		}
		if cmd.Flags().Changed("seed") {
			popt.Seed = fitSeed
		}
		if popt.TestFraction <= 0 || popt.TestFraction >= 1 {
			return fmt.Errorf("test fraction must be in (0, 1), got %v", popt.TestFraction)
		}
		switch delim {
		case "":
		case ",":
			lopt.Delimiter = ','
		case ";":
			lopt.Delimiter = ';'
		case "\t", "tab":
			lopt.Delimiter = '\t'
		default:
			return fmt.Errorf("unsupported --delimiter: %s", delim)
		}
		switch format {
		case "json", "markdown":
		default:
			return fmt.Errorf("unsupported --format: %s (use json|markdown)", format)
		}

		t, err := table.Load(path, lopt)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		res, err := pipeline.Run(t, popt)
		if err != nil {
			return err
		}

		if fitOutputPath != "" {
			if err := res.WriteFile(fitOutputPath, pretty); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote result to %s\n", fitOutputPath)
			return nil
		}
		if format == "markdown" {
			fmt.Println(res.Markdown())
			return nil
		}
		return res.Encode(os.Stdout, pretty)
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)
	fitCmd.Flags().StringVarP(&fitOutputPath, "output", "o", "", "optional path to write the result record (JSON)")
	fitCmd.Flags().StringVar(&fitDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' (sniffed if omitted)")
	fitCmd.Flags().Float64Var(&fitTestFraction, "test-fraction", 0.2, "fraction of rows held out for evaluation")
	fitCmd.Flags().Int64Var(&fitSeed, "seed", 42, "random seed for the train/test split")
	fitCmd.Flags().BoolVar(&fitPretty, "pretty", false, "indent the JSON result")
	fitCmd.Flags().StringVar(&fitFormat, "format", "json", "output format: json | markdown")
}
