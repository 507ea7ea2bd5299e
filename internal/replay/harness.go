// Package replay re-evaluates recorded episodes against a guard envelope.
// Training runs log every check; replay answers "would this episode have
// passed under these bounds?" without touching the original log.
package replay

import (
	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region types

// Actions a replayed check can resolve to.
const (
	ActionAllow  = "allow"
	ActionReject = "reject"
)

// Step is one recorded control step for replay.
type Step struct {
	Step     int64
	State    guard.State
	Force    float64
	Expected string // "allow" | "reject"; empty when no reference outcome exists
}

// Result captures the outcome of replaying one step.
type Result struct {
	Step     int64
	Action   string
	Reason   string
	Expected string
	// Match is false when a reference outcome exists and differs.
	Match    bool
	Decision guard.Decision
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total      int
	Allowed    int
	Rejected   int
	Matches    int
	Divergence int
}

// #endregion types

// #region replay

// Replay evaluates every step against the given limits. Operates entirely
// in-memory; the guard is stateless, so steps are independent.
func Replay(steps []Step, limits guard.Limits) []Result {
	checker := guard.NewChecker(limits)
	results := make([]Result, 0, len(steps))

	for _, step := range steps {
		decision := checker.Evaluate(step.State, guard.Action{Force: step.Force})

		action := ActionReject
		if decision.Allowed {
			action = ActionAllow
		}

		results = append(results, Result{
			Step:     step.Step,
			Action:   action,
			Reason:   decision.Reason,
			Expected: step.Expected,
			Match:    step.Expected == "" || step.Expected == action,
			Decision: decision,
		})
	}

	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Action {
		case ActionAllow:
			s.Allowed++
		case ActionReject:
			s.Rejected++
		}
		if r.Match {
			s.Matches++
		} else {
			s.Divergence++
		}
	}
	return s
}

// #endregion replay
