package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Pipeline constants, surfaced as launch-time configuration.
	TestFraction float64 `mapstructure:"test_fraction" yaml:"test_fraction"`
	Seed         int64   `mapstructure:"seed" yaml:"seed"`

	// Loader / output preferences.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	Pretty    bool   `mapstructure:"pretty" yaml:"pretty"`
	Format    string `mapstructure:"format" yaml:"format"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tabfit/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tabfit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABFIT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("test_fraction", 0.2)
	v.SetDefault("seed", 42)
	v.SetDefault("delimiter", "")
	v.SetDefault("pretty", false)
	v.SetDefault("format", "json")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tabfit")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return nil, fmt.Errorf("test_fraction must be in (0, 1), got %v", c.TestFraction)
	}
	switch c.Format {
	case "json", "markdown":
	default:
		return nil, fmt.Errorf("format must be 'json' or 'markdown', got %q", c.Format)
	}
	return &c, nil
}
