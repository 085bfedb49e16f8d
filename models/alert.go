package models

import "time"

// AlertType tags the hazard an alert reports.
type AlertType string

const (
	AlertFireDetected    AlertType = "FIRE_DETECTED"
	AlertSmokeDetected   AlertType = "SMOKE_DETECTED"
	AlertStoveUnattended AlertType = "STOVE_UNATTENDED"
	AlertStoveTooFar     AlertType = "STOVE_TOO_FAR"
	AlertKnifeUnattended AlertType = "KNIFE_UNATTENDED"
	AlertPanOverheating  AlertType = "PAN_OVERHEATING"
)

// Severity ranks alert urgency.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Rank returns the numeric urgency of a severity, higher meaning more
// urgent. Unrecognized severities rank zero.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// StatusLabel maps a severity to the aggregate kitchen status it
// implies and its display color.
func (s Severity) StatusLabel() (label, color string) {
	switch s {
	case SeverityCritical:
		return "EMERGENCY", "red"
	case SeverityHigh:
		return "DANGER", "orange"
	case SeverityMedium:
		return "WARNING", "yellow"
	case SeverityLow:
		return "CAUTION", "blue"
	}
	return "UNKNOWN", "gray"
}

// Alert is one hazard the rule set raised for a frame.
type Alert struct {
	Type        AlertType      `json:"type"`
	Severity    Severity       `json:"severity"`
	Message     string         `json:"message"`
	VoiceAlert  string         `json:"voice_alert,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
	FrameNumber FrameNumber    `json:"frame_number"`
}

// SafetyStatus is the aggregate verdict for one frame: SAFE, or the
// status implied by the highest-severity alert present.
type SafetyStatus struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Alerts     []Alert `json:"alerts"`
	Color      string  `json:"color"`
	AlertCount int     `json:"alert_count,omitempty"`
}
