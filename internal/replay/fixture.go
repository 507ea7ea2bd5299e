package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded episode.
type Fixture struct {
	Description string         `json:"description"`
	EpisodeID   string         `json:"episode_id"`
	Limits      *FixtureLimits `json:"limits,omitempty"`
	Steps       []FixtureStep  `json:"steps"`
}

// FixtureLimits mirrors guard.Limits with JSON tags. A nil Limits section in
// the fixture means the default cart-pole envelope.
type FixtureLimits struct {
	MaxPosition    float64 `json:"max_position"`
	MaxAngle       float64 `json:"max_angle"`
	MaxForce       float64 `json:"max_force"`
	PositionMargin float64 `json:"position_margin"`
	AngleMargin    float64 `json:"angle_margin"`
}

// FixtureStep is one recorded control step with its expected outcome.
type FixtureStep struct {
	Step     int64       `json:"step"`
	State    guard.State `json:"state"`
	Force    float64     `json:"force"`
	Expected string      `json:"expected"` // "allow" | "reject"
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToLimits converts the fixture's limits section, falling back to defaults.
func (f *Fixture) ToLimits() guard.Limits {
	if f.Limits == nil {
		return guard.DefaultLimits()
	}
	return guard.Limits{
		MaxPosition:    f.Limits.MaxPosition,
		MaxAngle:       f.Limits.MaxAngle,
		MaxForce:       f.Limits.MaxForce,
		PositionMargin: f.Limits.PositionMargin,
		AngleMargin:    f.Limits.AngleMargin,
	}
}

// ToSteps converts the fixture steps to replay steps.
func (f *Fixture) ToSteps() []Step {
	steps := make([]Step, len(f.Steps))
	for i, fs := range f.Steps {
		steps[i] = Step{
			Step:     fs.Step,
			State:    fs.State,
			Force:    fs.Force,
			Expected: fs.Expected,
		}
	}
	return steps
}

// #endregion fixture-loader
