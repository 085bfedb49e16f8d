package safety

import (
	"fmt"

	"kitchen-guard/config"
	"kitchen-guard/models"
)

// Pixel radius within which a pan counts as sitting on the stove
// burner. Fixed, not config-driven.
const panProximityPx = 150

func locationOf(d models.Detection) any {
	if len(d.Center) == 0 {
		return "unknown"
	}
	return d.Center
}

// CheckFireSmoke raises the evacuation-grade alert when fire or smoke
// clears the confidence floor. Fire wins when both are present.
func CheckFireSmoke(detections []models.Detection, cfg config.Config) *models.Alert {
	if fire, ok := FindBest(detections, models.ClassFire, cfg.ConfidenceThreshold); ok {
		return &models.Alert{
			Type:       models.AlertFireDetected,
			Severity:   models.SeverityCritical,
			Message:    "DANGER DANGER DANGER! FIRE DETECTED IN KITCHEN! EVACUATE NOW AND CALL 911!",
			VoiceAlert: "Fire detected! Danger! Danger! Danger! Evacuate immediately!",
			Details: map[string]any{
				"hazard":          "fire",
				"confidence":      fire.Confidence,
				"location":        locationOf(fire),
				"action_required": "EVACUATE AND CALL EMERGENCY SERVICES",
			},
		}
	}

	if smoke, ok := FindBest(detections, models.ClassSmoke, cfg.ConfidenceThreshold); ok {
		return &models.Alert{
			Type:       models.AlertSmokeDetected,
			Severity:   models.SeverityCritical,
			Message:    "DANGER! SMOKE DETECTED! Possible fire hazard - check kitchen immediately!",
			VoiceAlert: "Smoke detected! Danger! Check the kitchen immediately!",
			Details: map[string]any{
				"hazard":          "smoke",
				"confidence":      smoke.Confidence,
				"location":        locationOf(smoke),
				"action_required": "CHECK FOR FIRE SOURCE IMMEDIATELY",
			},
		}
	}

	return nil
}

// CheckStoveUnattended raises an alert when the stove is classified ON
// with nobody in frame, or with the nearest person beyond the safe
// distance.
func CheckStoveUnattended(detections []models.Detection, classifications map[string]models.Classification, cfg config.Config) *models.Alert {
	stove, ok := FindBest(detections, models.ClassStove, cfg.ConfidenceThreshold)
	if !ok {
		return nil
	}

	stoveState, ok := ClassificationFor(stove, classifications)
	if !ok || stoveState.Status != models.StatusOn {
		return nil
	}

	person, found := FindBest(detections, models.ClassPerson, cfg.ConfidenceThreshold)
	if !found {
		return &models.Alert{
			Type:       models.AlertStoveUnattended,
			Severity:   models.SeverityHigh,
			Message:    "ALERT! Stove/fire is ON and left UNATTENDED! This is DANGEROUS! Please return to the kitchen immediately!",
			VoiceAlert: "Warning! The stove is on and unattended! This is dangerous! Please return to the kitchen!",
			Details: map[string]any{
				"stove_status":     stoveState.Status,
				"stove_confidence": stoveState.Confidence,
				"person_detected":  false,
				"risk_level":       "HIGH - No supervision",
				"action_required":  "Return to kitchen immediately",
			},
		}
	}

	distance := Distance(stove.Center, person.Center)
	if distance > cfg.SafeDistanceThreshold {
		return &models.Alert{
			Type:       models.AlertStoveTooFar,
			Severity:   models.SeverityMedium,
			Message:    fmt.Sprintf("WARNING: Stove is ON but you're too far away (%dpx)! Stay close while cooking to prevent accidents!", int(distance)),
			VoiceAlert: "Warning! You are too far from the active stove. Please stay close while cooking.",
			Details: map[string]any{
				"stove_status":        stoveState.Status,
				"distance_from_stove": int(distance),
				"safe_distance":       cfg.SafeDistanceThreshold,
				"person_detected":     true,
				"risk_level":          "MEDIUM - Too far from heat source",
			},
		}
	}

	return nil
}

// CheckKnifeUnattended raises an alert when a knife is classified
// unattended and nobody is close enough to it. A person strictly
// inside the danger radius vetoes the alert even when the classifier
// says unattended.
func CheckKnifeUnattended(detections []models.Detection, classifications map[string]models.Classification, cfg config.Config) *models.Alert {
	knife, ok := FindBest(detections, models.ClassKnife, cfg.ConfidenceThreshold)
	if !ok {
		return nil
	}

	knifeState, _ := ClassificationFor(knife, classifications)
	isUnattended := knifeState.Status == models.StatusUnattended

	personNearby := false
	if person, found := FindBest(detections, models.ClassPerson, cfg.ConfidenceThreshold); found && len(knife.Center) > 0 {
		personNearby = Distance(knife.Center, person.Center) < cfg.KnifeDangerDistance
	}

	if isUnattended && !personNearby {
		features := knifeState.Features
		if features == nil {
			features = map[string]any{}
		}
		return &models.Alert{
			Type:       models.AlertKnifeUnattended,
			Severity:   models.SeverityMedium,
			Message:    "WARNING: Knife is left unattended! This could be DANGEROUS! Please store the knife safely in a drawer or knife block.",
			VoiceAlert: "Warning! A knife is left unattended. This could be dangerous. Please store it safely.",
			Details: map[string]any{
				"knife_status":    knifeState.Status,
				"confidence":      knifeState.Confidence,
				"features":        features,
				"person_nearby":   personNearby,
				"risk_level":      "MEDIUM - Sharp object unsecured",
				"action_required": "Store knife in drawer or knife block",
			},
		}
	}

	return nil
}

// CheckPanOverheating raises an alert when an empty pan sits on an
// active burner.
func CheckPanOverheating(detections []models.Detection, classifications map[string]models.Classification, cfg config.Config) *models.Alert {
	pan, ok := FindBest(detections, models.ClassPan, cfg.ConfidenceThreshold)
	if !ok {
		return nil
	}
	stove, ok := FindBest(detections, models.ClassStove, cfg.ConfidenceThreshold)
	if !ok {
		return nil
	}

	stoveState, ok := ClassificationFor(stove, classifications)
	if !ok || stoveState.Status != models.StatusOn {
		return nil
	}

	panState, _ := ClassificationFor(pan, classifications)

	if len(pan.Center) == 0 || len(stove.Center) == 0 {
		return nil
	}

	if Distance(pan.Center, stove.Center) < panProximityPx && panState.Status == models.StatusEmpty {
		return &models.Alert{
			Type:       models.AlertPanOverheating,
			Severity:   models.SeverityHigh,
			Message:    "DANGER! Empty pan on active stove! This can cause FIRE or damage! Add food/liquid or remove from heat!",
			VoiceAlert: "Danger! Empty pan on hot stove! Risk of fire! Please add contents or remove the pan!",
			Details: map[string]any{
				"pan_status":      panState.Status,
				"stove_status":    stoveState.Status,
				"risk_level":      "HIGH - Fire hazard",
				"action_required": "Add contents to pan or remove from heat",
			},
		}
	}

	return nil
}
