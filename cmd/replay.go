package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mdobak/go-xerrors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"kitchen-guard/alerts"
	"kitchen-guard/safety"
	"kitchen-guard/utils"
	"kitchen-guard/vision"
)

var (
	replayDetectionsDir      string
	replayClassificationsDir string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Batch-process a recorded frame sequence",
	Long: `replay runs every paired frame document through one checker in
stem order, logging emitted alerts, then prints the daily summary and
the worst status seen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.Context())
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayDetectionsDir, "detections-dir", utils.GetEnv("KITCHEN_DETECTIONS_DIR", "detections"), "Directory of recorded detection batches")
	replayCmd.Flags().StringVar(&replayClassificationsDir, "classifications-dir", utils.GetEnv("KITCHEN_CLASSIFICATIONS_DIR", "classifications"), "Directory of recorded classification batches")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(ctx context.Context) error {
	pairs, err := framePairs(replayDetectionsDir, replayClassificationsDir)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no paired frame documents under %s and %s", replayDetectionsDir, replayClassificationsDir)
	}

	checker := safety.NewChecker(cfg)
	alertLog := alerts.NewLog(logDir)
	logger := utils.GetLogger()

	bar := progressbar.NewOptions(len(pairs),
		progressbar.OptionSetDescription("replaying frames"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	emitted := 0
	failed := 0
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := vision.LoadFrame(pair.Detections, pair.Classifications)
		if err != nil {
			logger.ErrorContext(ctx, "skipping unreadable frame",
				slog.String("stem", pair.Stem),
				slog.Any("error", xerrors.New(err)))
			failed++
			bar.Add(1)
			continue
		}

		raised := checker.Evaluate(frame.Detections, frame.Classifications)
		if !noLog {
			for _, alert := range raised {
				if err := alertLog.Append(alert); err != nil {
					logger.ErrorContext(ctx, "failed to log alert",
						slog.String("type", string(alert.Type)),
						slog.Any("error", xerrors.New(err)))
				}
			}
		}
		emitted += len(raised)
		bar.Add(1)
	}

	fmt.Printf("\nProcessed %d frame(s): %d alert(s) emitted, %d unreadable\n", len(pairs), emitted, failed)

	status := safety.OverallStatus(checker.History())
	fmt.Printf("Worst status over the run: %s (%s)\n", status.Status, status.Color)

	if !noLog {
		return alertLog.PrintDailySummary(os.Stdout)
	}
	return nil
}
