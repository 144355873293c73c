package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/tabfit-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tabfit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("test_fraction: %.3f\n", cfg.TestFraction)
		fmt.Printf("seed: %d\n", cfg.Seed)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		}
		fmt.Printf("pretty: %t\n", cfg.Pretty)
		fmt.Printf("format: %s\n", cfg.Format)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "test_fraction":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f >= 1 {
				return fmt.Errorf("invalid test_fraction: %s (must be in (0, 1))", val)
			}
			cfg.TestFraction = f
		case "seed":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %s", val)
			}
			cfg.Seed = n
		case "delimiter":
			switch val {
			case ",", ";", "tab":
				cfg.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ','|';'|'tab')", val)
			}
		case "pretty":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid pretty: %s", val)
			}
			cfg.Pretty = b
		case "format":
			switch val {
			case "json", "markdown":
				cfg.Format = val
			default:
				return fmt.Errorf("invalid format: %s (use json|markdown)", val)
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
