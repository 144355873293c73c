package cmd

import (
	"fmt"

	"github.com/KaramelBytes/tabfit-cli/internal/table"
	"github.com/spf13/cobra"
)

var inspectDelimiter string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Load a CSV/TSV and print its schema summary without fitting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lopt := table.DefaultOptions()
		delim := inspectDelimiter
		if delim == "" && cfg != nil {
			delim = cfg.Delimiter
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
		t, err := table.Load(args[0], lopt)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		fmt.Print(t.SummaryText())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' (sniffed if omitted)")
}
