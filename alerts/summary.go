package alerts

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"kitchen-guard/models"
)

// Summary aggregates one day's logged alerts.
type Summary struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"by_type"`
	BySeverity map[string]int `json:"by_severity"`
}

// Summarize counts the alerts logged for a day by type and severity.
func (l *Log) Summarize(day time.Time) (Summary, error) {
	logged, err := l.ForDay(day)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Total: len(logged),
		ByType: lo.CountValuesBy(logged, func(a models.Alert) string {
			return string(a.Type)
		}),
		BySeverity: lo.CountValuesBy(logged, func(a models.Alert) string {
			return string(a.Severity)
		}),
	}, nil
}

// PrintDailySummary renders today's summary block.
func (l *Log) PrintDailySummary(w io.Writer) error {
	return l.PrintSummary(w, time.Now())
}

// PrintSummary renders the summary block for the given day.
func (l *Log) PrintSummary(w io.Writer, day time.Time) error {
	summary, err := l.Summarize(day)
	if err != nil {
		return err
	}

	line := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "[SUMMARY] DAILY ALERT SUMMARY")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total Alerts Today: %d\n", summary.Total)

	if summary.Total > 0 {
		fmt.Fprintln(w, "\nBy Type:")
		printCounts(w, summary.ByType)
		fmt.Fprintln(w, "\nBy Severity:")
		printCounts(w, summary.BySeverity)
	} else {
		fmt.Fprintln(w, "[OK] No alerts today - Kitchen has been safe!")
	}

	fmt.Fprintln(w, line)
	return nil
}

func printCounts(w io.Writer, counts map[string]int) {
	keys := lo.Keys(counts)
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "  - %s: %d\n", key, counts[key])
	}
}
