package fs_test

import (
	"crypto/md5" //nolint:gosec // Comparing against the digest the adapter computes
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/internal/adapters/fs"
)

func TestHasher_FileMD5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.tar.bz2")
	content := []byte("archive bytes")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	sum := md5.Sum(content) //nolint:gosec // Test reference digest
	want := hex.EncodeToString(sum[:])

	got, err := fs.NewHasher().FileMD5(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHasher_FileMD5_Missing(t *testing.T) {
	_, err := fs.NewHasher().FileMD5(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
