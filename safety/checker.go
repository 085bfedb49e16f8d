package safety

// Hazard Rule Engine for Kitchen Frames
//
// This package evaluates one camera frame's worth of upstream output
// (object detections plus per-crop state classifications) and derives
// prioritized safety alerts.
//
// How It Works:
//
// 1. Rule Evaluation:
//    - Each hazard has one rule, a pure function over the frame data
//      and the immutable thresholds
//    - Rules never fail: a missing detection, classification, or an
//      unknown class/status is simply not a match
//    - Only detections at or above the confidence floor are visible
//      to any rule
//
// 2. Fixed Priority Order:
//    - fire/smoke, then pan overheating, then stove unattended, then
//      knife unattended
//    - Alerts keep this order in the returned batch; it is not a
//      strict severity sort
//
// 3. Cooldown Suppression:
//    - Per alert type, a repeat within the cooldown window is dropped
//      outright
//    - The clock resets only when an alert of that type is actually
//      emitted; a window of zero disables suppression
//
// 4. Aggregate Status:
//    - SAFE when the batch is empty, otherwise the highest-severity
//      alert decides (EMERGENCY/DANGER/WARNING/CAUTION), first one
//      winning on ties
//
// The Checker owns the cooldown state and the emitted-alert history;
// access is serialized so concurrent frame sources cannot double-emit
// inside one window.

import (
	"sync"
	"time"

	"kitchen-guard/config"
	"kitchen-guard/models"
)

// Checker runs the hazard rules over frames and applies cooldown
// suppression across calls.
type Checker struct {
	cfg config.Config

	mu        sync.Mutex
	lastAlert map[models.AlertType]time.Time
	history   []models.Alert
}

// NewChecker returns a Checker with fresh cooldown state.
func NewChecker(cfg config.Config) *Checker {
	return &Checker{
		cfg:       cfg,
		lastAlert: make(map[models.AlertType]time.Time),
	}
}

// Config returns the thresholds the checker evaluates with.
func (c *Checker) Config() config.Config {
	return c.cfg
}

// Evaluate runs EvaluateAt with the current wall clock.
func (c *Checker) Evaluate(det models.DetectionBatch, cls models.ClassificationBatch) []models.Alert {
	return c.EvaluateAt(det, cls, time.Now())
}

// EvaluateAt runs every hazard rule against one frame, stamps the
// results with the given instant and the frame number, applies
// cooldown suppression, and returns the emitted batch in rule order.
func (c *Checker) EvaluateAt(det models.DetectionBatch, cls models.ClassificationBatch, now time.Time) []models.Alert {
	checks := []*models.Alert{
		CheckFireSmoke(det.Detections, c.cfg),
		CheckPanOverheating(det.Detections, cls.Classifications, c.cfg),
		CheckStoveUnattended(det.Detections, cls.Classifications, c.cfg),
		CheckKnifeUnattended(det.Detections, cls.Classifications, c.cfg),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	alerts := make([]models.Alert, 0, len(checks))
	for _, alert := range checks {
		if alert == nil {
			continue
		}
		if !c.pastCooldown(alert.Type, now) {
			continue
		}
		alert.Timestamp = now
		alert.FrameNumber = det.FrameNumber
		c.lastAlert[alert.Type] = now
		alerts = append(alerts, *alert)
	}

	c.history = append(c.history, alerts...)
	return alerts
}

// Status evaluates a frame and folds the emitted alerts into the
// aggregate kitchen status.
func (c *Checker) Status(det models.DetectionBatch, cls models.ClassificationBatch) models.SafetyStatus {
	return OverallStatus(c.Evaluate(det, cls))
}

// History returns a copy of every alert this checker has emitted.
func (c *Checker) History() []models.Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Alert(nil), c.history...)
}

// pastCooldown reports whether the cooldown window for an alert type
// has elapsed. Callers hold c.mu.
func (c *Checker) pastCooldown(t models.AlertType, now time.Time) bool {
	last, ok := c.lastAlert[t]
	if !ok {
		return true
	}
	return now.Sub(last) >= c.cfg.CooldownWindow()
}

// OverallStatus derives the aggregate kitchen status for an alert
// batch. Ties on severity resolve to the earliest alert in rule order.
func OverallStatus(alerts []models.Alert) models.SafetyStatus {
	if len(alerts) == 0 {
		return models.SafetyStatus{
			Status:  "SAFE",
			Message: "Kitchen is safe! All clear.",
			Alerts:  []models.Alert{},
			Color:   "green",
		}
	}

	top := alerts[0]
	for _, a := range alerts[1:] {
		if a.Severity.Rank() > top.Severity.Rank() {
			top = a
		}
	}

	label, color := top.Severity.StatusLabel()
	return models.SafetyStatus{
		Status:     label,
		Message:    top.Message,
		Alerts:     alerts,
		Color:      color,
		AlertCount: len(alerts),
	}
}
