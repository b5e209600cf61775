package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeloop/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play and serve would use, as YAML.

Search order:
  1. --config path
  2. ~/.snakeloop/config.yaml
  3. ./configs/snakeloop.yaml
  4. built-in defaults

Examples:
  snakeloop config > ~/.snakeloop/config.yaml
  snakeloop config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
