package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"kitchen-guard/alerts"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print today's alert summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return alerts.NewLog(logDir).PrintDailySummary(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
