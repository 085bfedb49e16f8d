package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseObjectClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  ObjectClass
	}{
		{"person", ClassPerson},
		{"stove", ClassStove},
		{"oven", ClassStove},
		{"knife", ClassKnife},
		{"pan", ClassPan},
		{"pot", ClassPot},
		{"fire", ClassFire},
		{"smoke", ClassSmoke},
		{"toaster", ClassUnknown},
		{"", ClassUnknown},
		{"Stove", ClassUnknown},
	}

	for _, tc := range cases {
		if got := ParseObjectClass(tc.label); got != tc.want {
			t.Fatalf("ParseObjectClass(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestObjectClassUnmarshalFoldsOven(t *testing.T) {
	t.Parallel()

	var d Detection
	if err := json.Unmarshal([]byte(`{"class": "oven", "confidence": 0.9, "bbox": [0, 0, 10, 10]}`), &d); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if d.Class != ClassStove {
		t.Fatalf("expected oven to fold into stove, got %s", d.Class)
	}
}

func TestFrameNumberMarshal(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(FrameNumber(7))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != "7" {
		t.Fatalf("expected 7, got %s", data)
	}

	data, err = json.Marshal(FrameUnknown)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != `"unknown"` {
		t.Fatalf("expected \"unknown\", got %s", data)
	}
}

func TestFrameNumberUnmarshal(t *testing.T) {
	t.Parallel()

	var f FrameNumber
	if err := json.Unmarshal([]byte("12"), &f); err != nil {
		t.Fatalf("failed to unmarshal a number: %v", err)
	}
	if f != 12 || !f.Known() {
		t.Fatalf("expected a known frame 12, got %s", f)
	}

	if err := json.Unmarshal([]byte(`"unknown"`), &f); err != nil {
		t.Fatalf("failed to unmarshal \"unknown\": %v", err)
	}
	if f.Known() {
		t.Fatalf("expected an unknown frame, got %s", f)
	}

	if err := json.Unmarshal([]byte(`"seven"`), &f); err == nil {
		t.Fatalf("expected an error for a non-numeric frame string")
	}
}

func TestFrameNumberAbsentStaysUnknown(t *testing.T) {
	t.Parallel()

	batch := DetectionBatch{FrameNumber: FrameUnknown}
	if err := json.Unmarshal([]byte(`{"timestamp": "2025-07-15T10:30:00"}`), &batch); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if batch.FrameNumber.Known() {
		t.Fatalf("expected the preset unknown to survive, got %s", batch.FrameNumber)
	}
}

func TestCropBasename(t *testing.T) {
	t.Parallel()

	d := Detection{CropPath: "outputs/crops/stove_000.jpg"}
	if got := d.CropBasename(); got != "stove_000.jpg" {
		t.Fatalf("expected stove_000.jpg, got %q", got)
	}

	if got := (Detection{}).CropBasename(); got != "" {
		t.Fatalf("expected an empty basename without a crop, got %q", got)
	}
}

func TestSeverityRankOrder(t *testing.T) {
	t.Parallel()

	order := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Fatalf("expected %s to outrank %s", order[i], order[i-1])
		}
	}
	if Severity("BOGUS").Rank() != 0 {
		t.Fatalf("expected unrecognized severities to rank zero")
	}
}

func TestSeverityStatusLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		severity Severity
		label    string
		color    string
	}{
		{SeverityCritical, "EMERGENCY", "red"},
		{SeverityHigh, "DANGER", "orange"},
		{SeverityMedium, "WARNING", "yellow"},
		{SeverityLow, "CAUTION", "blue"},
	}

	for _, tc := range cases {
		label, color := tc.severity.StatusLabel()
		if label != tc.label || color != tc.color {
			t.Fatalf("StatusLabel(%s) = %s/%s, want %s/%s", tc.severity, label, color, tc.label, tc.color)
		}
	}
}

func TestSafetyStatusOmitsZeroAlertCount(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(SafetyStatus{Status: "SAFE", Message: "ok", Alerts: []Alert{}, Color: "green"})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if strings.Contains(string(data), "alert_count") {
		t.Fatalf("expected alert_count omitted when zero, got %s", data)
	}
}
