package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rules YAML",
	Long: `Print the built-in rules file. Save it to ~/.tetris/configs/tetris.yaml
or pass it with 'tetris play --config' after editing.

Examples:
  tetris config > my-tetris.yaml
  tetris play --config my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("tetris"))
		return err
	},
}
