package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.SafeDistanceThreshold != 200 {
		t.Fatalf("expected safe distance 200, got %v", cfg.SafeDistanceThreshold)
	}
	if cfg.ConfidenceThreshold != 0.7 {
		t.Fatalf("expected confidence floor 0.7, got %v", cfg.ConfidenceThreshold)
	}
	if cfg.AlertCooldownSeconds != 5 {
		t.Fatalf("expected cooldown 5s, got %v", cfg.AlertCooldownSeconds)
	}
	if cfg.KnifeDangerDistance != 100 {
		t.Fatalf("expected knife danger distance 100, got %v", cfg.KnifeDangerDistance)
	}
	if cfg.CooldownWindow() != 5*time.Second {
		t.Fatalf("expected a 5s window, got %v", cfg.CooldownWindow())
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "safe_distance_threshold: 300\nalert_cooldown: 2.5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.SafeDistanceThreshold != 300 {
		t.Fatalf("expected safe distance 300, got %v", cfg.SafeDistanceThreshold)
	}
	if cfg.CooldownWindow() != 2500*time.Millisecond {
		t.Fatalf("expected a 2.5s window, got %v", cfg.CooldownWindow())
	}
	// Untouched keys keep their defaults.
	if cfg.ConfidenceThreshold != 0.7 {
		t.Fatalf("expected default confidence floor, got %v", cfg.ConfidenceThreshold)
	}
}

func TestLoadJSONConfig(t *testing.T) {
	path := writeConfig(t, "config.json", `{"confidence_threshold": 0.5, "knife_danger_distance": 80}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load JSON config: %v", err)
	}
	if cfg.ConfidenceThreshold != 0.5 {
		t.Fatalf("expected confidence floor 0.5, got %v", cfg.ConfidenceThreshold)
	}
	if cfg.KnifeDangerDistance != 80 {
		t.Fatalf("expected knife danger distance 80, got %v", cfg.KnifeDangerDistance)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "confidence_threshold: 0.5\n")
	t.Setenv("KITCHEN_CONFIDENCE_THRESHOLD", "0.9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ConfidenceThreshold != 0.9 {
		t.Fatalf("expected the environment to win, got %v", cfg.ConfidenceThreshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
	if !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("expected a read error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"zero safe distance", "safe_distance_threshold: 0\n", "safe_distance_threshold"},
		{"confidence above one", "confidence_threshold: 1.2\n", "confidence_threshold"},
		{"negative cooldown", "alert_cooldown: -1\n", "alert_cooldown"},
		{"zero knife distance", "knife_danger_distance: 0\n", "knife_danger_distance"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.yaml", tc.doc))
			if err == nil {
				t.Fatalf("expected an error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}
