// Package config loads guard limits from a YAML file. A missing or empty
// path falls back to the compiled-in cart-pole defaults, and partial files
// inherit defaults per field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region file-format
// limitsFile is the on-disk YAML shape. Pointer fields distinguish "not set"
// from an explicit zero.
type limitsFile struct {
	Limits struct {
		MaxPosition    *float64 `yaml:"max_position"`
		MaxAngle       *float64 `yaml:"max_angle"`
		MaxForce       *float64 `yaml:"max_force"`
		PositionMargin *float64 `yaml:"position_margin"`
		AngleMargin    *float64 `yaml:"angle_margin"`
	} `yaml:"limits"`
}

// #endregion file-format

// #region load
// LoadLimits reads guard limits from the given YAML path. An empty path or a
// missing file returns DefaultLimits with no error.
func LoadLimits(path string) (guard.Limits, error) {
	limits := guard.DefaultLimits()
	if path == "" {
		return limits, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return limits, nil
		}
		return guard.Limits{}, fmt.Errorf("read limits file %s: %w", path, err)
	}

	var f limitsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return guard.Limits{}, fmt.Errorf("parse limits file %s: %w", path, err)
	}

	if f.Limits.MaxPosition != nil {
		limits.MaxPosition = *f.Limits.MaxPosition
	}
	if f.Limits.MaxAngle != nil {
		limits.MaxAngle = *f.Limits.MaxAngle
	}
	if f.Limits.MaxForce != nil {
		limits.MaxForce = *f.Limits.MaxForce
	}
	if f.Limits.PositionMargin != nil {
		limits.PositionMargin = *f.Limits.PositionMargin
	}
	if f.Limits.AngleMargin != nil {
		limits.AngleMargin = *f.Limits.AngleMargin
	}

	if err := ValidateLimits(limits); err != nil {
		return guard.Limits{}, fmt.Errorf("limits file %s: %w", path, err)
	}
	return limits, nil
}

// #endregion load

// #region validate
// ValidateLimits rejects envelopes the guard cannot meaningfully enforce.
func ValidateLimits(l guard.Limits) error {
	if l.MaxPosition <= 0 {
		return fmt.Errorf("max_position must be positive, got %v", l.MaxPosition)
	}
	if l.MaxAngle <= 0 {
		return fmt.Errorf("max_angle must be positive, got %v", l.MaxAngle)
	}
	if l.MaxForce <= 0 {
		return fmt.Errorf("max_force must be positive, got %v", l.MaxForce)
	}
	if l.PositionMargin < 0 || l.AngleMargin < 0 {
		return fmt.Errorf("margins must be non-negative")
	}
	if l.PositionMargin >= l.MaxPosition {
		return fmt.Errorf("position_margin %v leaves no guard envelope inside max_position %v", l.PositionMargin, l.MaxPosition)
	}
	if l.AngleMargin >= l.MaxAngle {
		return fmt.Errorf("angle_margin %v leaves no guard envelope inside max_angle %v", l.AngleMargin, l.MaxAngle)
	}
	return nil
}

// #endregion validate
