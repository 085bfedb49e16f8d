package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the safety thresholds.
//
// Values are layered: built-in defaults, then an optional config file,
// then environment variables, later sources winning. The file keys
// match the documents the upstream tooling already ships, and since
// YAML is a superset of JSON both formats load.
type Config struct {
	// Max pixel distance between a person and an active stove before
	// the stove counts as left alone.
	SafeDistanceThreshold float64 `yaml:"safe_distance_threshold" json:"safe_distance_threshold" env:"KITCHEN_SAFE_DISTANCE_THRESHOLD"`
	// Minimum detection confidence before a detection is visible to
	// any rule.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" json:"confidence_threshold" env:"KITCHEN_CONFIDENCE_THRESHOLD"`
	// Seconds between repeated alerts of the same type. Zero disables
	// suppression.
	AlertCooldownSeconds float64 `yaml:"alert_cooldown" json:"alert_cooldown" env:"KITCHEN_ALERT_COOLDOWN"`
	// Pixel radius in which a person counts as attending a knife.
	KnifeDangerDistance float64 `yaml:"knife_danger_distance" json:"knife_danger_distance" env:"KITCHEN_KNIFE_DANGER_DISTANCE"`
}

// Default returns the built-in thresholds.
func Default() Config {
	return Config{
		SafeDistanceThreshold: 200,
		ConfidenceThreshold:   0.7,
		AlertCooldownSeconds:  5,
		KnifeDangerDistance:   100,
	}
}

// Load builds the effective config. An empty path skips the file
// layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// CooldownWindow returns the alert cooldown as a duration.
func (c Config) CooldownWindow() time.Duration {
	return time.Duration(c.AlertCooldownSeconds * float64(time.Second))
}

// Validate checks the thresholds are in range.
func (c Config) Validate() error {
	if c.SafeDistanceThreshold <= 0 {
		return fmt.Errorf("safe_distance_threshold must be positive, got %v", c.SafeDistanceThreshold)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be within [0,1], got %v", c.ConfidenceThreshold)
	}
	if c.AlertCooldownSeconds < 0 {
		return fmt.Errorf("alert_cooldown must not be negative, got %v", c.AlertCooldownSeconds)
	}
	if c.KnifeDangerDistance <= 0 {
		return fmt.Errorf("knife_danger_distance must be positive, got %v", c.KnifeDangerDistance)
	}
	return nil
}
