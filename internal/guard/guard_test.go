package guard

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// helper: centered state with selected fields overridden.
func stateAt(position, angle float64) State {
	return State{CartPosition: position, PoleAngle: angle}
}

func TestCheckSafetyAllowsCenteredState(t *testing.T) {
	var diag bytes.Buffer
	c := NewCheckerWithDiag(DefaultLimits(), &diag)

	ok := c.CheckSafety(State{}, Action{})

	if !ok {
		t.Fatal("expected centered state with zero force to pass")
	}
	if diag.Len() != 0 {
		t.Fatalf("expected no diagnostic output, got %q", diag.String())
	}
}

func TestCheckSafetyRejectsPositionPastGuardBound(t *testing.T) {
	var diag bytes.Buffer
	c := NewCheckerWithDiag(DefaultLimits(), &diag)

	ok := c.CheckSafety(stateAt(2.35, 0), Action{})

	if ok {
		t.Fatal("expected position 2.35 to fail the guard bound 2.3")
	}
	if got := diag.String(); got != ViolationMessage+"\n" {
		t.Fatalf("expected exactly one diagnostic line, got %q", got)
	}
}

func TestCheckSafetyRejectsExcessForce(t *testing.T) {
	var diag bytes.Buffer
	c := NewCheckerWithDiag(DefaultLimits(), &diag)

	ok := c.CheckSafety(State{}, Action{Force: 15.0})

	if ok {
		t.Fatal("expected force 15.0 to fail the 10.0 bound")
	}
	if lines := strings.Count(diag.String(), "\n"); lines != 1 {
		t.Fatalf("expected exactly one diagnostic line, got %d", lines)
	}
}

func TestCheckSafetyBoundaryInclusive(t *testing.T) {
	var diag bytes.Buffer
	c := NewCheckerWithDiag(DefaultLimits(), &diag)

	// Exactly on every guard bound at once.
	if !c.CheckSafety(stateAt(2.3, 0.1995), Action{Force: 10.0}) {
		t.Fatal("expected exact guard boundary to pass (inclusive bounds)")
	}
	if diag.Len() != 0 {
		t.Fatalf("boundary pass should not emit diagnostics, got %q", diag.String())
	}

	// One ulp past the position bound flips the result.
	past := math.Nextafter(2.3, 3)
	if c.CheckSafety(stateAt(past, 0), Action{}) {
		t.Fatalf("expected position %v to fail", past)
	}
}

func TestGuardAngleBoundaryInclusive(t *testing.T) {
	c := NewChecker(DefaultLimits())

	if !c.Guard(stateAt(0, 0.1995), Action{}) {
		t.Fatal("expected angle exactly 0.1995 to pass the guard bound")
	}
	if c.Guard(stateAt(0, math.Nextafter(0.1995, 1)), Action{}) {
		t.Fatal("expected angle one ulp past 0.1995 to fail")
	}
	if !c.Guard(stateAt(0, -0.1995), Action{}) {
		t.Fatal("bounds are symmetric; expected angle -0.1995 to pass")
	}
}

func TestGuardStrictlyStrongerThanSafe(t *testing.T) {
	c := NewChecker(DefaultLimits())

	// Sweep the margin region and beyond: Guard(s, a) must imply Safe(s).
	for pos := -2.6; pos <= 2.6; pos += 0.05 {
		for angle := -0.22; angle <= 0.22; angle += 0.005 {
			s := stateAt(pos, angle)
			if c.Guard(s, Action{}) && !c.Safe(s) {
				t.Fatalf("guard passed but safe failed at pos=%v angle=%v", pos, angle)
			}
		}
	}

	// Margin region: safe but not guarded.
	s := stateAt(2.35, 0)
	if !c.Safe(s) {
		t.Fatal("expected 2.35 to be inside the absolute envelope")
	}
	if c.Guard(s, Action{}) {
		t.Fatal("expected 2.35 to be outside the guard envelope")
	}
}

func TestEvaluateForceMonotonicity(t *testing.T) {
	c := NewChecker(DefaultLimits())
	s := stateAt(1.0, 0.1)

	at := c.Evaluate(s, Action{Force: 10.0})
	if !at.Allowed {
		t.Fatalf("expected force 10.0 to pass: %s", at.Reason)
	}

	past := c.Evaluate(s, Action{Force: math.Nextafter(10.0, 11)})
	if past.Allowed {
		t.Fatal("expected force past 10.0 to fail")
	}
	if len(past.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d", len(past.Violations))
	}
	if past.Violations[0].Kind != ViolationForce {
		t.Fatalf("expected ViolationForce, got %s", past.Violations[0].Kind)
	}
}

func TestEvaluateCollectsAllViolationsInOrder(t *testing.T) {
	c := NewChecker(DefaultLimits())

	d := c.Evaluate(stateAt(3.0, 0.5), Action{Force: 20.0})

	if d.Allowed {
		t.Fatal("expected rejection")
	}
	if len(d.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d", len(d.Violations))
	}
	kinds := []ViolationKind{ViolationPosition, ViolationAngle, ViolationForce}
	for i, want := range kinds {
		if d.Violations[i].Kind != want {
			t.Errorf("violation %d: expected %s, got %s", i, want, d.Violations[i].Kind)
		}
	}
	if d.Reason == "" {
		t.Error("expected a non-empty rejection reason")
	}
}

func TestNaNResolvesToUnsafe(t *testing.T) {
	c := NewChecker(DefaultLimits())
	nan := math.NaN()

	if c.Safe(stateAt(nan, 0)) {
		t.Error("NaN position should not be safe")
	}
	if c.Guard(stateAt(0, nan), Action{}) {
		t.Error("NaN angle should not pass the guard")
	}
	d := c.Evaluate(State{}, Action{Force: nan})
	if d.Allowed {
		t.Error("NaN force should be rejected")
	}
	if len(d.Violations) != 1 || d.Violations[0].Kind != ViolationForce {
		t.Errorf("expected a single force violation, got %+v", d.Violations)
	}
}

func TestDerivedGuardBounds(t *testing.T) {
	l := DefaultLimits()

	if got := l.GuardPosition(); got != 2.3 {
		t.Errorf("guard position bound: expected 2.3, got %v", got)
	}
	if got := l.GuardAngle(); got != 0.1995 {
		t.Errorf("guard angle bound: expected 0.1995, got %v", got)
	}
}

func TestPackageLevelEntryPoints(t *testing.T) {
	if !Safe(stateAt(2.4, 0.2095)) {
		t.Error("expected absolute boundary to be safe (inclusive)")
	}
	if Safe(stateAt(2.41, 0)) {
		t.Error("expected position past the track end to be unsafe")
	}
	if !Guard(State{}, Action{}) {
		t.Error("expected zero state/action to pass the guard")
	}
}
