package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mdobak/go-xerrors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"kitchen-guard/alerts"
	"kitchen-guard/models"
	"kitchen-guard/safety"
	"kitchen-guard/utils"
	"kitchen-guard/vision"
)

var (
	checkDetectionsPath      string
	checkClassificationsPath string
	checkJSON                bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate one frame's detector and classifier output",
	Long: `check loads a detection batch and a classification batch for a
single frame, runs the hazard rules, and renders the alerts. The exit
code is 2 when a CRITICAL hazard is present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context())
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkDetectionsPath, "detections", "d", "", "Detection batch JSON file")
	checkCmd.Flags().StringVarP(&checkClassificationsPath, "classifications", "c", "", "Classification batch JSON file")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the safety status document instead of the console rendering")

	checkCmd.MarkFlagRequired("detections")
	checkCmd.MarkFlagRequired("classifications")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context) error {
	frame, err := vision.LoadFrame(checkDetectionsPath, checkClassificationsPath)
	if err != nil {
		logger := utils.GetLogger()
		logger.ErrorContext(ctx, "failed to load frame", slog.Any("error", xerrors.New(err)))
		return err
	}

	checker := safety.NewChecker(cfg)
	raised := checker.Evaluate(frame.Detections, frame.Classifications)

	if checkJSON {
		status := safety.OverallStatus(raised)
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal safety status: %w", err)
		}
		fmt.Println(string(data))
	} else {
		notifier := alerts.NewNotifier(alerts.NewLog(logDir), !silent, !noLog)
		if err := notifier.Send(raised); err != nil {
			return err
		}
	}

	if lo.SomeBy(raised, func(a models.Alert) bool { return a.Severity == models.SeverityCritical }) {
		os.Exit(2)
	}
	return nil
}
