package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// helper: write a fixture JSON file and return its path.
func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episode.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleFixture = `{
  "description": "two-step episode with one violation",
  "episode_id": "ep-42",
  "steps": [
    {
      "step": 0,
      "state": {"cart_position": 0.0, "cart_velocity": 0.0, "pole_angle": 0.0, "pole_angular_velocity": 0.0},
      "force": 0.0,
      "expected": "allow"
    },
    {
      "step": 1,
      "state": {"cart_position": 2.35, "cart_velocity": 0.1, "pole_angle": 0.0, "pole_angular_velocity": 0.0},
      "force": 0.0,
      "expected": "reject"
    }
  ]
}`

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, sampleFixture)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if f.EpisodeID != "ep-42" {
		t.Errorf("expected episode ep-42, got %s", f.EpisodeID)
	}
	if len(f.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(f.Steps))
	}
	if f.Steps[1].State.CartPosition != 2.35 {
		t.Errorf("state not parsed: %+v", f.Steps[1].State)
	}
}

func TestFixtureDefaultsLimitsWhenOmitted(t *testing.T) {
	path := writeFixture(t, sampleFixture)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.ToLimits() != guard.DefaultLimits() {
		t.Errorf("expected default limits, got %+v", f.ToLimits())
	}
}

func TestFixtureExplicitLimits(t *testing.T) {
	path := writeFixture(t, `{
  "episode_id": "ep-1",
  "limits": {"max_position": 4.8, "max_angle": 0.418, "max_force": 20, "position_margin": 0.2, "angle_margin": 0.02},
  "steps": []
}`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	l := f.ToLimits()
	if l.MaxPosition != 4.8 || l.MaxForce != 20 {
		t.Errorf("limits not applied: %+v", l)
	}
}

func TestLoadFixtureErrors(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeFixture(t, "{not json")
	if _, err := LoadFixture(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestFixtureRoundTripThroughReplay(t *testing.T) {
	path := writeFixture(t, sampleFixture)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatal(err)
	}

	results := Replay(f.ToSteps(), f.ToLimits())
	sum := Summarize(results)

	if sum.Divergence != 0 {
		t.Fatalf("expected no divergence, got %d", sum.Divergence)
	}
	if sum.Allowed != 1 || sum.Rejected != 1 {
		t.Errorf("expected 1 allow / 1 reject, got %d / %d", sum.Allowed, sum.Rejected)
	}
}
