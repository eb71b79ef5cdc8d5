// Package fs implements filesystem-backed ports.
package fs

import (
	"crypto/md5" //nolint:gosec // MD5 is the checksum format archives carry
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes file digests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// FileMD5 computes the hex MD5 digest of a file's content.
func (h *Hasher) FileMD5(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := md5.New() //nolint:gosec // Integrity check against index checksums, not security
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
