package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kitchen-guard/config"
	"kitchen-guard/utils"
)

var (
	configPath string
	logDir     string
	silent     bool
	noLog      bool

	// cfg is the effective threshold config shared by subcommands,
	// loaded in the root PersistentPreRunE.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kitchen-guard",
	Short: "Kitchen hazard alerts from detector and classifier output",
	Long: `kitchen-guard consumes the JSON documents an upstream object
detector and state classifier emit per camera frame, evaluates the
kitchen hazard rules (fire/smoke, unattended stove, unsecured knife,
overheating pan), and renders prioritized safety alerts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command with a context that listens for
// Ctrl+C (SIGINT) or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", utils.GetEnv("KITCHEN_CONFIG", ""), "Threshold config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", utils.GetEnv("KITCHEN_LOG_DIR", "logs"), "Directory for daily alert logs")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "Disable the terminal bell on alerts")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Disable writing alerts to the daily log")
}
