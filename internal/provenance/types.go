package provenance

import (
	"time"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region check-record
// CheckRecord is one row in the check_log table: a single guard evaluation
// with its inputs, outcome, and the spec hash active at decision time.
type CheckRecord struct {
	CheckID   string
	EpisodeID string
	Step      int64
	State     guard.State
	Force     float64
	Allowed   bool
	Reason    string
	// ViolationsJSON holds the serialized []guard.Violation for rejected
	// checks, kept verbatim for deterministic replay.
	ViolationsJSON string
	SpecHash       string
	CreatedAt      time.Time
}

// #endregion check-record

// #region episode-summary
// EpisodeSummary aggregates the outcome of one episode's checks.
type EpisodeSummary struct {
	EpisodeID  string
	Checks     int
	Violations int
	FirstStep  int64
	LastStep   int64
}

// #endregion episode-summary
