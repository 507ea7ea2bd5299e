package attest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

func TestCanonicalDefaultLimits(t *testing.T) {
	got := Canonical(guard.DefaultLimits())
	want := "max_position=2.400000;max_angle=0.209500;max_force=10.000000;position_margin=0.100000;angle_margin=0.010000"
	if got != want {
		t.Fatalf("canonical form changed:\n got %s\nwant %s", got, want)
	}
}

func TestFingerprintDefaultLimits(t *testing.T) {
	got := Fingerprint(guard.DefaultLimits())
	// Pinned: downstream systems store this hash, so it must stay stable.
	want := "6547dc2449d40ac8a694272cc42bedf394976d99fd3ff53cdf48781ddf4141e8"
	if got != want {
		t.Fatalf("fingerprint changed: got %s, want %s", got, want)
	}
}

func TestFingerprintVariesWithLimits(t *testing.T) {
	a := Fingerprint(guard.DefaultLimits())

	l := guard.DefaultLimits()
	l.MaxForce = 12.0
	b := Fingerprint(l)

	if a == b {
		t.Fatal("different limits must produce different fingerprints")
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.c")
	if err := os.WriteFile(path, []byte("bool guard;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h1, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash file: %v", err)
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}

	h2, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Fatal("hash must be deterministic")
	}

	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
