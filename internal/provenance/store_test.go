package provenance

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// helper: open a store backed by a temp file.
func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "checks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(episodeID string, step int64, allowed bool) CheckRecord {
	return CheckRecord{
		EpisodeID: episodeID,
		Step:      step,
		State:     guard.State{CartPosition: 0.5, PoleAngle: 0.05},
		Force:     3.0,
		Allowed:   allowed,
		Reason:    "within guard envelope",
		SpecHash:  "deadbeef",
	}
}

func TestRecordFillsIDAndTimestamp(t *testing.T) {
	s := tempStore(t)

	rec, err := s.Record(record("ep-1", 0, true))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.CheckID == "" {
		t.Error("expected a generated check ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected a generated timestamp")
	}
}

func TestEpisodeReturnsStepOrder(t *testing.T) {
	s := tempStore(t)

	// Insert out of order.
	for _, step := range []int64{2, 0, 1} {
		if _, err := s.Record(record("ep-1", step, true)); err != nil {
			t.Fatalf("record step %d: %v", step, err)
		}
	}
	if _, err := s.Record(record("ep-2", 0, false)); err != nil {
		t.Fatal(err)
	}

	checks, err := s.Episode("ep-1")
	if err != nil {
		t.Fatalf("episode: %v", err)
	}
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	for i, c := range checks {
		if c.Step != int64(i) {
			t.Errorf("expected step %d at index %d, got %d", i, i, c.Step)
		}
		if c.EpisodeID != "ep-1" {
			t.Errorf("wrong episode: %s", c.EpisodeID)
		}
	}
}

func TestRecordRoundTripsState(t *testing.T) {
	s := tempStore(t)

	in := CheckRecord{
		EpisodeID: "ep-1",
		Step:      7,
		State: guard.State{
			CartPosition:        2.35,
			CartVelocity:        -0.4,
			PoleAngle:           0.21,
			PoleAngularVelocity: 1.5,
		},
		Force:          15.0,
		Allowed:        false,
		Reason:         "guard violation: cart position 2.3500 outside guard bound 2.3000",
		ViolationsJSON: `[{"Kind":"cart_position"}]`,
		SpecHash:       "deadbeef",
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if _, err := s.Record(in); err != nil {
		t.Fatalf("record: %v", err)
	}

	checks, err := s.Episode("ep-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(checks))
	}
	got := checks[0]
	if got.State != in.State {
		t.Errorf("state round-trip mismatch: %+v != %+v", got.State, in.State)
	}
	if got.Force != in.Force || got.Allowed || got.ViolationsJSON != in.ViolationsJSON {
		t.Errorf("record round-trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("timestamp mismatch: %v != %v", got.CreatedAt, in.CreatedAt)
	}
}

func TestViolationCount(t *testing.T) {
	s := tempStore(t)

	for i := 0; i < 4; i++ {
		if _, err := s.Record(record("ep-1", int64(i), i%2 == 0)); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.ViolationCount()
	if err != nil {
		t.Fatalf("violation count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 violations, got %d", n)
	}
}

func TestSummarizeEpisode(t *testing.T) {
	s := tempStore(t)

	for step := int64(3); step <= 8; step++ {
		if _, err := s.Record(record("ep-9", step, step != 8)); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := s.SummarizeEpisode("ep-9")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Checks != 6 || sum.Violations != 1 {
		t.Errorf("expected 6 checks / 1 violation, got %d / %d", sum.Checks, sum.Violations)
	}
	if sum.FirstStep != 3 || sum.LastStep != 8 {
		t.Errorf("expected step range [3, 8], got [%d, %d]", sum.FirstStep, sum.LastStep)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	s := tempStore(t)

	early := record("ep-1", 0, true)
	early.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := record("ep-1", 1, true)
	late.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.Record(early); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record(late); err != nil {
		t.Fatal(err)
	}

	checks, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}
	if checks[0].Step != 1 {
		t.Errorf("expected newest check first, got step %d", checks[0].Step)
	}
}
