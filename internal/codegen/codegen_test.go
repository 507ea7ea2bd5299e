package codegen

import (
	"os"
	"strings"
	"testing"

	"github.com/danielpatrickdp/cartpole-guard/internal/attest"
	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

func TestEmitCDefaultLimits(t *testing.T) {
	src, err := EmitC(guard.DefaultLimits())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		"Generated from specification hash: " + attest.Fingerprint(guard.DefaultLimits()),
		"#define MAX_POSITION 2.4",
		"#define MAX_ANGLE 0.2095",
		"#define MAX_FORCE 10.0",
		"MAX_POSITION - 0.1",
		"MAX_ANGLE - 0.01",
		`printf("Safety guard violation detected!\n");`,
		"bool check_safety(State* state, Action* action)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestEmitCDeterministic(t *testing.T) {
	a, err := EmitC(guard.DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	b, err := EmitC(guard.DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("emission must be deterministic")
	}
}

func TestEmitCCustomLimits(t *testing.T) {
	l := guard.Limits{
		MaxPosition:    4.8,
		MaxAngle:       0.418,
		MaxForce:       20,
		PositionMargin: 0.2,
		AngleMargin:    0.02,
	}
	src, err := EmitC(l)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "#define MAX_FORCE 20.0") {
		t.Error("whole-number bounds must render with a trailing .0")
	}
	if !strings.Contains(src, "#define MAX_POSITION 4.8") {
		t.Error("custom position bound not rendered")
	}
	if strings.Contains(src, attest.Fingerprint(guard.DefaultLimits())) {
		t.Error("custom limits must not carry the default spec hash")
	}
}

func TestWriteC(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteC(dir, guard.DefaultLimits())
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want, err := EmitC(guard.DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Fatal("file content differs from emitted source")
	}
}
