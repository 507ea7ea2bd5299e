// Package codegen emits the C99 runtime guard for a given envelope, the
// artifact embedded controllers compile against. The header carries the
// spec hash so a deployed guard can be traced to its bounds.
package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/danielpatrickdp/cartpole-guard/internal/attest"
	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region template
const guardTemplate = `// Runtime guard for the cart-pole safety envelope
// Generated from specification hash: {{.SpecHash}}

#include <stdio.h>
#include <math.h>
#include <stdbool.h>

// State structure
typedef struct {
    double cart_position;
    double cart_velocity;
    double pole_angle;
    double pole_angular_velocity;
} State;

// Action structure
typedef struct {
    double force;
} Action;

// Constants
#define MAX_POSITION {{.MaxPosition}}
#define MAX_ANGLE {{.MaxAngle}}
#define MAX_FORCE {{.MaxForce}}

// Safety predicate
bool safe(State* state) {
    return fabs(state->cart_position) <= MAX_POSITION &&
           fabs(state->pole_angle) <= MAX_ANGLE;
}

// Guard predicate
bool guard(State* state, Action* action) {
    return fabs(state->cart_position) <= MAX_POSITION - {{.PositionMargin}} &&
           fabs(state->pole_angle) <= MAX_ANGLE - {{.AngleMargin}} &&
           fabs(action->force) <= MAX_FORCE;
}

// Runtime guard function
bool runtime_guard(State* state, Action* action) {
    if (!guard(state, action)) {
        printf("Safety guard violation detected!\n");
        return false;
    }
    return true;
}

// Main guard interface
bool check_safety(State* state, Action* action) {
    return runtime_guard(state, action);
}
`

var tmpl = template.Must(template.New("guard").Parse(guardTemplate))

// #endregion template

// #region emit
type templateData struct {
	SpecHash       string
	MaxPosition    string
	MaxAngle       string
	MaxForce       string
	PositionMargin string
	AngleMargin    string
}

// EmitC renders the C guard source for the given limits.
func EmitC(limits guard.Limits) (string, error) {
	data := templateData{
		SpecHash:       attest.Fingerprint(limits),
		MaxPosition:    cFloat(limits.MaxPosition),
		MaxAngle:       cFloat(limits.MaxAngle),
		MaxForce:       cFloat(limits.MaxForce),
		PositionMargin: cFloat(limits.PositionMargin),
		AngleMargin:    cFloat(limits.AngleMargin),
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render guard template: %w", err)
	}
	return b.String(), nil
}

// WriteC renders the guard and writes it as guard.c under dir.
func WriteC(dir string, limits guard.Limits) (string, error) {
	src, err := EmitC(limits)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "guard.c")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// #endregion emit

// #region helpers
// cFloat renders a bound as a C double literal, keeping a trailing .0 on
// whole numbers so the constant reads as floating point.
func cFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// #endregion helpers
