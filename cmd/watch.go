package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mdobak/go-xerrors"
	"github.com/spf13/cobra"

	"kitchen-guard/alerts"
	"kitchen-guard/safety"
	"kitchen-guard/utils"
	"kitchen-guard/vision"
)

var (
	watchDetectionsDir      string
	watchClassificationsDir string
	watchInterval           time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously evaluate new frames as the upstream models write them",
	Long: `watch polls the detection and classification directories and runs
each newly paired frame through one long-lived checker, so cooldown
suppression spans frames. Ctrl+C stops monitoring and prints the daily
summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchDetectionsDir, "detections-dir", utils.GetEnv("KITCHEN_DETECTIONS_DIR", "detections"), "Directory the detector writes batch JSON into")
	watchCmd.Flags().StringVar(&watchClassificationsDir, "classifications-dir", utils.GetEnv("KITCHEN_CLASSIFICATIONS_DIR", "classifications"), "Directory the classifier writes batch JSON into")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "Poll interval")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(ctx context.Context) error {
	checker := safety.NewChecker(cfg)
	alertLog := alerts.NewLog(logDir)
	notifier := alerts.NewNotifier(alertLog, !silent, !noLog)
	logger := utils.GetLogger()

	fmt.Printf("[START] Monitoring %s + %s every %s\n", watchDetectionsDir, watchClassificationsDir, watchInterval)
	fmt.Printf("   - Safe distance: %.0fpx\n", cfg.SafeDistanceThreshold)
	fmt.Printf("   - Confidence threshold: %.2f\n", cfg.ConfidenceThreshold)
	fmt.Println("   Press Ctrl+C to stop")
	fmt.Println()

	seen := make(map[string]bool)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n\n[STOP] Monitoring stopped")
			return alertLog.PrintDailySummary(os.Stdout)
		case <-ticker.C:
			pairs, err := framePairs(watchDetectionsDir, watchClassificationsDir)
			if err != nil {
				logger.ErrorContext(ctx, "failed to list frame documents", slog.Any("error", xerrors.New(err)))
				continue
			}

			for _, pair := range pairs {
				if seen[pair.Stem] {
					continue
				}
				seen[pair.Stem] = true

				frame, err := vision.LoadFrame(pair.Detections, pair.Classifications)
				if err != nil {
					logger.ErrorContext(ctx, "failed to load frame",
						slog.String("stem", pair.Stem),
						slog.Any("error", xerrors.New(err)))
					continue
				}

				raised := checker.Evaluate(frame.Detections, frame.Classifications)
				if err := notifier.Send(raised); err != nil {
					logger.ErrorContext(ctx, "failed to deliver alerts",
						slog.String("stem", pair.Stem),
						slog.Any("error", xerrors.New(err)))
				}
			}
		}
	}
}
