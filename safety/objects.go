package safety

import (
	"kitchen-guard/models"

	"github.com/samber/lo"
)

// FindBest returns the first detection of a class clearing the
// confidence floor, in detection list order.
func FindBest(detections []models.Detection, class models.ObjectClass, confidenceFloor float64) (models.Detection, bool) {
	return lo.Find(detections, func(d models.Detection) bool {
		return d.Class == class && d.Confidence >= confidenceFloor
	})
}

// FindAll returns every detection of a class clearing the confidence
// floor, preserving list order.
func FindAll(detections []models.Detection, class models.ObjectClass, confidenceFloor float64) []models.Detection {
	return lo.Filter(detections, func(d models.Detection, _ int) bool {
		return d.Class == class && d.Confidence >= confidenceFloor
	})
}

// ClassificationFor resolves the classifier record for a detection by
// its crop basename. Detections without a crop have no classification.
func ClassificationFor(d models.Detection, classifications map[string]models.Classification) (models.Classification, bool) {
	key := d.CropBasename()
	if key == "" {
		return models.Classification{}, false
	}
	c, ok := classifications[key]
	return c, ok
}
