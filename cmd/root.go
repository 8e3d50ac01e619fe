package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "linebalance",
	Short: "Line balance reports and move planning for student allocations",
	Long: `linebalance reads a student allocations export, detects courses whose
enrollment is unevenly spread across scheduling lines, and proposes an
ordered, safeguarded set of student moves that reduces the imbalance.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
