package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ptm",
	Short: "Weekly review reports for a personal time-tracking log",
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(excelCmd)
	rootCmd.AddCommand(weeksCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
