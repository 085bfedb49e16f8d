package vision

import (
	"encoding/json"
	"fmt"
	"os"

	"kitchen-guard/models"
	"kitchen-guard/safety"
)

// Frame pairs the two upstream documents describing one camera frame.
type Frame struct {
	Detections      models.DetectionBatch
	Classifications models.ClassificationBatch
}

// LoadDetections reads and validates one detection batch document.
// Any malformed record aborts the whole batch; the returned error is
// how callers tell "bad input" apart from "no hazards".
func LoadDetections(path string) (models.DetectionBatch, error) {
	batch := models.DetectionBatch{FrameNumber: models.FrameUnknown}

	data, err := os.ReadFile(path)
	if err != nil {
		return batch, fmt.Errorf("read detections: %w", err)
	}
	if err := json.Unmarshal(data, &batch); err != nil {
		return batch, fmt.Errorf("parse detections %s: %w", path, err)
	}
	if err := validateDetections(&batch); err != nil {
		return batch, fmt.Errorf("invalid detections %s: %w", path, err)
	}

	return batch, nil
}

// LoadClassifications reads and validates one classification batch
// document.
func LoadClassifications(path string) (models.ClassificationBatch, error) {
	var batch models.ClassificationBatch

	data, err := os.ReadFile(path)
	if err != nil {
		return batch, fmt.Errorf("read classifications: %w", err)
	}
	if err := json.Unmarshal(data, &batch); err != nil {
		return batch, fmt.Errorf("parse classifications %s: %w", path, err)
	}
	if err := validateClassifications(batch); err != nil {
		return batch, fmt.Errorf("invalid classifications %s: %w", path, err)
	}

	return batch, nil
}

// LoadFrame loads the detector and classifier documents for one frame.
func LoadFrame(detectionsPath, classificationsPath string) (Frame, error) {
	det, err := LoadDetections(detectionsPath)
	if err != nil {
		return Frame{}, err
	}
	cls, err := LoadClassifications(classificationsPath)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Detections: det, Classifications: cls}, nil
}

// validateDetections checks record shape and derives missing centers
// from the box midpoint. Unknown classes pass; they are non-matches,
// not errors.
func validateDetections(batch *models.DetectionBatch) error {
	for i := range batch.Detections {
		d := &batch.Detections[i]

		if d.Confidence < 0 || d.Confidence > 1 {
			return fmt.Errorf("detection %d: confidence %v outside [0,1]", i, d.Confidence)
		}
		if len(d.BBox) != 4 {
			return fmt.Errorf("detection %d: bbox needs 4 coordinates, got %d", i, len(d.BBox))
		}
		if d.BBox[0] > d.BBox[2] || d.BBox[1] > d.BBox[3] {
			return fmt.Errorf("detection %d: bbox corners out of order", i)
		}

		switch len(d.Center) {
		case 0:
			d.Center = safety.CenterOf(d.BBox)
		case 2:
		default:
			return fmt.Errorf("detection %d: center needs 2 coordinates, got %d", i, len(d.Center))
		}
	}
	return nil
}

// validateClassifications checks every crop record carries a status
// and an in-range confidence. Unknown status strings pass.
func validateClassifications(batch models.ClassificationBatch) error {
	for key, c := range batch.Classifications {
		if c.Status == "" {
			return fmt.Errorf("classification %q: missing status", key)
		}
		if c.Confidence < 0 || c.Confidence > 1 {
			return fmt.Errorf("classification %q: confidence %v outside [0,1]", key, c.Confidence)
		}
	}
	return nil
}
