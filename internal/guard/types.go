package guard

import "math"

// #region violation-kind
// ViolationKind enumerates the guard bounds that can be breached.
type ViolationKind string

const (
	ViolationPosition ViolationKind = "cart_position"
	ViolationAngle    ViolationKind = "pole_angle"
	ViolationForce    ViolationKind = "force"
)

// #endregion violation-kind

// #region violation
// Violation records one breached bound with the offending value.
type Violation struct {
	Kind   ViolationKind `json:"kind"`
	Reason string        `json:"reason"`
	Value  float64       `json:"value"`
	Bound  float64       `json:"bound"`
}

// #endregion violation

// #region state-action
// State is a cart-pole state snapshot. The guard only reads it; ownership
// stays with the caller.
type State struct {
	CartPosition        float64 `json:"cart_position"`
	CartVelocity        float64 `json:"cart_velocity"`
	PoleAngle           float64 `json:"pole_angle"`
	PoleAngularVelocity float64 `json:"pole_angular_velocity"`
}

// Action is the proposed control force for one step.
type Action struct {
	Force float64 `json:"force"`
}

// #endregion state-action

// #region limits
// Limits holds the safety envelope bounds and the guard margins.
type Limits struct {
	MaxPosition    float64 // absolute cart position bound (track half-length)
	MaxAngle       float64 // absolute pole angle bound, radians
	MaxForce       float64 // max applied force magnitude
	PositionMargin float64 // guard tightening on position
	AngleMargin    float64 // guard tightening on angle
}

// DefaultLimits returns the cart-pole v1 envelope: the pole falls past
// 0.2095 rad and the track ends at |x| = 2.4.
func DefaultLimits() Limits {
	return Limits{
		MaxPosition:    2.4,
		MaxAngle:       0.2095,
		MaxForce:       10.0,
		PositionMargin: 0.1,
		AngleMargin:    0.01,
	}
}

// GuardPosition is the tightened position bound (MaxPosition - PositionMargin).
func (l Limits) GuardPosition() float64 {
	return roundDecimal(l.MaxPosition - l.PositionMargin)
}

// GuardAngle is the tightened angle bound (MaxAngle - AngleMargin).
func (l Limits) GuardAngle() float64 {
	return roundDecimal(l.MaxAngle - l.AngleMargin)
}

// roundDecimal keeps a derived bound at decimal precision. Bounds and
// margins are decimal quantities; without this, 0.2095 - 0.01 lands one ulp
// below 0.1995 and the inclusive boundary check rejects a state that sits
// exactly on the documented bound.
func roundDecimal(v float64) float64 {
	return math.Round(v*1e12) / 1e12
}

// #endregion limits

// #region decision
// Decision is the output of a guard evaluation.
type Decision struct {
	Allowed    bool
	Reason     string
	Violations []Violation // non-empty iff not allowed
}

// #endregion decision
