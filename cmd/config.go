package cmd

import (
	"fmt"

	"github.com/eve-anki/shipdeck/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after defaults, the config file and environment
overrides (SHIPDECK_SDE, SHIPDECK_RENDERS, SHIPDECK_CATALOG, SHIPDECK_CARDS,
SHIPDECK_LOG_LEVEL) have been applied.

The output is a valid config file and can be used as a starting point.`,
		Example: `  # Write a config file with every setting spelled out
  shipdeck config > shipdeck.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	return cmd
}
