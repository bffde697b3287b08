package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csscontrast",
	Short: "WCAG contrast checker for CSS color tokens",
	Long: `Scan .html and .css files for :root color tokens and check the
WCAG contrast of semantic pairs such as text on bg and primary on white.
Writes contrast-report.json into the scanned directory.`,
	// No subcommand runs check with the same flags.
	// loadConfig is called here since checkCmd's PreRunE doesn't run on this path.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(cmd, args)
	},
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and statistics")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".csscontrast.yaml", "Config file path")
	addCheckFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
