package alerts

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"kitchen-guard/models"
)

// ANSI palette for the console sink. HIGH and MEDIUM share yellow.
const (
	colorRed    = "\033[91m"
	colorYellow = "\033[93m"
	colorBlue   = "\033[94m"
	colorReset  = "\033[0m"
)

// Notifier renders alert batches to the console, optionally ringing
// the terminal bell and appending to the daily log.
type Notifier struct {
	Out     io.Writer
	Audio   bool
	Logging bool

	log *Log
}

// NewNotifier returns a Notifier writing to stdout.
func NewNotifier(log *Log, audio, logging bool) *Notifier {
	return &Notifier{
		Out:     os.Stdout,
		Audio:   audio,
		Logging: logging,
		log:     log,
	}
}

// Send renders every alert in the batch, plays its severity tone, and
// appends it to the daily log. An empty batch prints the all-clear
// line.
func (n *Notifier) Send(batch []models.Alert) error {
	if len(batch) == 0 {
		fmt.Fprintln(n.Out, "\n[OK] No hazards detected. Kitchen is safe!")
		return nil
	}

	fmt.Fprintf(n.Out, "\n[!] SAFETY ALERT: %d hazard(s) detected!\n\n", len(batch))

	for _, alert := range batch {
		n.printAlert(alert)

		if n.Audio {
			n.ringBell(alert.Severity)
		}
		if n.Logging {
			if err := n.log.Append(alert); err != nil {
				return err
			}
		}
	}

	if n.Logging {
		fmt.Fprintf(n.Out, "\n[LOG] Alerts logged to: %s\n", n.log.Dir())
	}

	return nil
}

func (n *Notifier) printAlert(alert models.Alert) {
	color := severityColor(alert.Severity)
	line := strings.Repeat("=", 70)

	fmt.Fprintf(n.Out, "\n%s%s%s\n", color, line, colorReset)
	fmt.Fprintf(n.Out, "%s[%s] %s%s\n", color, alert.Severity, alert.Type, colorReset)
	fmt.Fprintf(n.Out, "%s%s%s\n", color, alert.Message, colorReset)
	fmt.Fprintf(n.Out, "%sTime: %s%s\n", color, alert.Timestamp.Format(time.RFC3339), colorReset)
	fmt.Fprintf(n.Out, "%sFrame: %s%s\n", color, alert.FrameNumber, colorReset)

	if len(alert.Details) > 0 {
		fmt.Fprintf(n.Out, "%sDetails:%s\n", color, colorReset)
		keys := lo.Keys(alert.Details)
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(n.Out, "  - %s: %v\n", key, alert.Details[key])
		}
	}

	fmt.Fprintf(n.Out, "%s%s%s\n", color, line, colorReset)
}

// ringBell writes terminal bells: 3 for CRITICAL, 2 for HIGH and
// MEDIUM, 1 for LOW.
func (n *Notifier) ringBell(severity models.Severity) {
	beeps := 1
	switch severity {
	case models.SeverityCritical:
		beeps = 3
	case models.SeverityHigh, models.SeverityMedium:
		beeps = 2
	}
	for i := 0; i < beeps; i++ {
		fmt.Fprint(n.Out, "\a")
	}
}

func severityColor(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return colorRed
	case models.SeverityHigh, models.SeverityMedium:
		return colorYellow
	case models.SeverityLow:
		return colorBlue
	}
	return colorReset
}
