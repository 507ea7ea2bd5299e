// Package attest fingerprints the active safety specification so every
// artifact (provenance rows, check replies, generated guard code) can be
// traced back to the exact bounds it was produced under.
package attest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region fingerprint
// Canonical renders limits in the fixed form that is hashed. Field order and
// precision are part of the format; changing either changes every hash.
func Canonical(l guard.Limits) string {
	return fmt.Sprintf(
		"max_position=%.6f;max_angle=%.6f;max_force=%.6f;position_margin=%.6f;angle_margin=%.6f",
		l.MaxPosition, l.MaxAngle, l.MaxForce, l.PositionMargin, l.AngleMargin,
	)
}

// Fingerprint returns the hex SHA-256 of the canonical limits rendering.
func Fingerprint(l guard.Limits) string {
	sum := sha256.Sum256([]byte(Canonical(l)))
	return hex.EncodeToString(sum[:])
}

// #endregion fingerprint

// #region artifact-hash
// HashFile returns the hex SHA-256 of a generated artifact on disk.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// #endregion artifact-hash
