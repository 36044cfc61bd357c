package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play would use, as YAML.

Config files are searched in this order:
  --config <path>
  ~/.hanoi/configs/hanoi.{yaml,yml,toml}
  ./configs/hanoi.{yaml,yml,toml}
  built-in defaults

Redirect the output to start a config of your own:
  hanoi config > ~/.hanoi/configs/hanoi.yaml

With --defaults the built-in YAML is printed verbatim, comments included.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config and exit")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().IntVar(&flagDisks, "disks", 0, "Number of disks, overrides --difficulty")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Stdout write errors are not actionable
		return
	}

	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.MarshalYAML(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", src)
	os.Stdout.Write(data) //nolint:errcheck // Stdout write errors are not actionable
}
