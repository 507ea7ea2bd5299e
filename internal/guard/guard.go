package guard

import (
	"fmt"
	"io"
	"math"
	"os"
)

// ViolationMessage is the diagnostic line emitted when a check fails.
// Hosts grep for it, so the text is load-bearing.
const ViolationMessage = "Safety guard violation detected!"

// #region checker
// Checker evaluates whether a proposed state/action pair stays inside the
// guard envelope. Each call is stateless and safe for concurrent use.
type Checker struct {
	limits Limits
	diag   io.Writer
}

// NewChecker creates a checker with the given limits. Diagnostics go to stdout.
func NewChecker(limits Limits) *Checker {
	return &Checker{limits: limits, diag: os.Stdout}
}

// NewCheckerWithDiag creates a checker with an injected diagnostic sink.
// Used for testing without capturing stdout.
func NewCheckerWithDiag(limits Limits, diag io.Writer) *Checker {
	return &Checker{limits: limits, diag: diag}
}

// Limits returns the envelope the checker was built with.
func (c *Checker) Limits() Limits {
	return c.limits
}

// #endregion checker

// #region predicates
// Safe reports whether the state is inside the absolute safety envelope:
// pole still recoverable, cart still on track. The comparison is inclusive,
// and NaN resolves to unsafe.
func (c *Checker) Safe(s State) bool {
	return within(s.CartPosition, c.limits.MaxPosition) &&
		within(s.PoleAngle, c.limits.MaxAngle)
}

// Guard reports whether the state/action pair is inside the tightened guard
// envelope, leaving margin for one control step's dynamics.
func (c *Checker) Guard(s State, a Action) bool {
	return within(s.CartPosition, c.limits.GuardPosition()) &&
		within(s.PoleAngle, c.limits.GuardAngle()) &&
		within(a.Force, c.limits.MaxForce)
}

// #endregion predicates

// #region evaluate
// Evaluate checks each guard bound in fixed order (position, angle, force)
// and collects a violation per breached bound. Pure; no I/O.
func (c *Checker) Evaluate(s State, a Action) Decision {
	var violations []Violation

	if !within(s.CartPosition, c.limits.GuardPosition()) {
		violations = append(violations, Violation{
			Kind:   ViolationPosition,
			Reason: fmt.Sprintf("cart position %.4f outside guard bound %.4f", s.CartPosition, c.limits.GuardPosition()),
			Value:  s.CartPosition,
			Bound:  c.limits.GuardPosition(),
		})
	}

	if !within(s.PoleAngle, c.limits.GuardAngle()) {
		violations = append(violations, Violation{
			Kind:   ViolationAngle,
			Reason: fmt.Sprintf("pole angle %.4f outside guard bound %.4f", s.PoleAngle, c.limits.GuardAngle()),
			Value:  s.PoleAngle,
			Bound:  c.limits.GuardAngle(),
		})
	}

	if !within(a.Force, c.limits.MaxForce) {
		violations = append(violations, Violation{
			Kind:   ViolationForce,
			Reason: fmt.Sprintf("force %.4f outside bound %.4f", a.Force, c.limits.MaxForce),
			Value:  a.Force,
			Bound:  c.limits.MaxForce,
		})
	}

	if len(violations) > 0 {
		return Decision{
			Allowed:    false,
			Reason:     fmt.Sprintf("guard violation: %s", violations[0].Reason),
			Violations: violations,
		}
	}

	return Decision{
		Allowed: true,
		Reason:  "within guard envelope",
	}
}

// #endregion evaluate

// #region check-safety
// CheckSafety is the host-facing entry point: true iff the pair passes the
// guard envelope. On violation it writes exactly one diagnostic line.
func (c *Checker) CheckSafety(s State, a Action) bool {
	decision := c.Evaluate(s, a)
	if !decision.Allowed {
		fmt.Fprintln(c.diag, ViolationMessage)
		return false
	}
	return true
}

// #endregion check-safety

// #region package-level
var defaultChecker = NewChecker(DefaultLimits())

// Safe checks the absolute envelope with the default cart-pole limits.
func Safe(s State) bool {
	return defaultChecker.Safe(s)
}

// Guard checks the tightened envelope with the default cart-pole limits.
func Guard(s State, a Action) bool {
	return defaultChecker.Guard(s, a)
}

// CheckSafety checks with the default limits, printing the diagnostic to
// stdout on violation.
func CheckSafety(s State, a Action) bool {
	return defaultChecker.CheckSafety(s, a)
}

// #endregion package-level

// #region helpers
// within is the inclusive magnitude bound shared by every predicate.
// |v| <= bound is false for NaN, so invalid inputs land on the unsafe side.
func within(v, bound float64) bool {
	return math.Abs(v) <= bound
}

// #endregion helpers
