package models

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"
)

// ObjectClass is the closed vocabulary of objects the upstream
// detector reports. Labels outside the vocabulary parse to
// ClassUnknown, which never satisfies a hazard rule.
type ObjectClass string

const (
	ClassPerson  ObjectClass = "person"
	ClassStove   ObjectClass = "stove"
	ClassKnife   ObjectClass = "knife"
	ClassPan     ObjectClass = "pan"
	ClassPot     ObjectClass = "pot"
	ClassFire    ObjectClass = "fire"
	ClassSmoke   ObjectClass = "smoke"
	ClassUnknown ObjectClass = "unknown"
)

// ParseObjectClass maps a detector label onto the known vocabulary.
// "oven" folds into ClassStove, matching the detector's COCO label
// normalization.
func ParseObjectClass(label string) ObjectClass {
	switch label {
	case "person":
		return ClassPerson
	case "stove", "oven":
		return ClassStove
	case "knife":
		return ClassKnife
	case "pan":
		return ClassPan
	case "pot":
		return ClassPot
	case "fire":
		return ClassFire
	case "smoke":
		return ClassSmoke
	}
	return ClassUnknown
}

func (c *ObjectClass) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("object class must be a string: %v", err)
	}
	*c = ParseObjectClass(label)
	return nil
}

// Classifier status vocabulary. Stoves report ON/OFF, knives
// in-use/unattended, pans in-use/empty; objects the classifier has no
// model for come back as "detected".
const (
	StatusOn         = "ON"
	StatusOff        = "OFF"
	StatusInUse      = "in-use"
	StatusUnattended = "unattended"
	StatusEmpty      = "empty"
	StatusDetected   = "detected"
)

// FrameNumber is a frame index that may be unknown. Unknown frames
// marshal as the string "unknown".
type FrameNumber int

// FrameUnknown marks an absent frame index.
const FrameUnknown FrameNumber = -1

// Known reports whether the frame index was actually supplied.
func (f FrameNumber) Known() bool { return f >= 0 }

func (f FrameNumber) String() string {
	if !f.Known() {
		return "unknown"
	}
	return strconv.Itoa(int(f))
}

func (f FrameNumber) MarshalJSON() ([]byte, error) {
	if !f.Known() {
		return json.Marshal("unknown")
	}
	return json.Marshal(int(f))
}

func (f *FrameNumber) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FrameNumber(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "unknown" || s == "" {
			*f = FrameUnknown
			return nil
		}
		return fmt.Errorf("invalid frame number %q", s)
	}

	return fmt.Errorf("invalid frame number: %s", string(data))
}

// Detection is one object the detector located in a frame.
type Detection struct {
	Class      ObjectClass `json:"class"`
	Confidence float64     `json:"confidence"`
	BBox       []int       `json:"bbox"`
	Center     []int       `json:"center,omitempty"`
	CropPath   string      `json:"cropped_image_path,omitempty"`
}

// CropBasename returns the filename component of the crop path, the
// key the classifier output is indexed by. Empty when the detection
// carries no crop.
func (d Detection) CropBasename() string {
	if d.CropPath == "" {
		return ""
	}
	return path.Base(d.CropPath)
}

// Classification is the classifier's state verdict for one crop.
type Classification struct {
	Status     string         `json:"status"`
	Confidence float64        `json:"confidence"`
	Features   map[string]any `json:"features,omitempty"`
}

// DetectionBatch is the per-frame document the detector emits.
type DetectionBatch struct {
	Timestamp   string      `json:"timestamp"`
	FrameNumber FrameNumber `json:"frame_number"`
	Detections  []Detection `json:"detections"`
}

// ClassificationBatch is the per-frame document the classifier emits,
// keyed by crop basename.
type ClassificationBatch struct {
	Timestamp       string                    `json:"timestamp"`
	Classifications map[string]Classification `json:"classifications"`
}
