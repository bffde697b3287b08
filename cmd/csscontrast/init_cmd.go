package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csscontrast.yaml config file",
	Long:  `Create a .csscontrast.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".csscontrast.yaml"); err == nil && !force {
			return fmt.Errorf(".csscontrast.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".csscontrast.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .csscontrast.yaml")
		return nil
	},
}

const defaultConfig = `# csscontrast configuration
# Docs: https://github.com/yacobolo/csscontrast

root: .
output: contrast-report.json   # relative to root unless absolute
format: summary                # summary | json | markdown
verbose: false
color: false

# Scanning
exclude: []
#  - "node_modules/**"
#  - "dist/**"
respect-gitignore: false
resolve-all: false

# CI
strict: false
level: aa                      # aa | aa-large | aaa
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
