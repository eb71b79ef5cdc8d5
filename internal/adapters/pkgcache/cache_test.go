package pkgcache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/internal/adapters/pkgcache"
	"go.trai.ch/den/internal/core/domain"
)

func newCache(t *testing.T) (*pkgcache.Cache, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "pkgs")
	c, err := pkgcache.New(dir)
	require.NoError(t, err)
	return c, dir
}

func putArchive(t *testing.T, dir string, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("archive bytes"), 0o644))
}

func putExtracted(t *testing.T, dir string, base string) {
	t.Helper()
	info := filepath.Join(dir, base, "info")
	require.NoError(t, os.MkdirAll(info, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(info, "files"), []byte("bin/app\n"), 0o644))
}

func TestCache_Fetched(t *testing.T) {
	c, dir := newCache(t)

	_, ok := c.Fetched("zlib-1.2.8-0")
	assert.False(t, ok)

	putArchive(t, dir, "zlib-1.2.8-0.tar.bz2")
	path, ok := c.Fetched("zlib-1.2.8-0")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "zlib-1.2.8-0.tar.bz2"), path)
}

func TestCache_Fetched_EmptyArchive(t *testing.T) {
	c, dir := newCache(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zlib-1.2.8-0.tar.bz2"), nil, 0o644))

	_, ok := c.Fetched("zlib-1.2.8-0")
	assert.False(t, ok)
}

func TestCache_Fetched_SlotOwnership(t *testing.T) {
	c, dir := newCache(t)
	putArchive(t, dir, "zlib-1.2.8-0.tar.bz2")
	require.NoError(t, c.RecordURL("https://conda.example.org/forge/linux-64/zlib-1.2.8-0.tar.bz2", "forge::zlib-1.2.8-0"))

	// The slot belongs to forge now, so the unlabeled dist misses.
	_, ok := c.Fetched("zlib-1.2.8-0")
	assert.False(t, ok)

	path, ok := c.Fetched("forge::zlib-1.2.8-0")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "zlib-1.2.8-0.tar.bz2"), path)
}

func TestCache_Extracted(t *testing.T) {
	c, dir := newCache(t)

	_, ok := c.Extracted("zlib-1.2.8-0")
	assert.False(t, ok)

	putExtracted(t, dir, "zlib-1.2.8-0")
	path, ok := c.Extracted("zlib-1.2.8-0")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "zlib-1.2.8-0"), path)
}

func TestCache_Conflict(t *testing.T) {
	c, dir := newCache(t)

	// Empty slot: no conflict either way.
	_, ok := c.Conflict("forge::zlib-1.2.8-0")
	assert.False(t, ok)

	putArchive(t, dir, "zlib-1.2.8-0.tar.bz2")

	conflict, ok := c.Conflict("forge::zlib-1.2.8-0")
	require.True(t, ok)
	assert.Equal(t, domain.Dist("zlib-1.2.8-0"), conflict)

	_, ok = c.Conflict("zlib-1.2.8-0")
	assert.False(t, ok)

	require.NoError(t, c.RecordURL("https://conda.example.org/forge/linux-64/zlib-1.2.8-0.tar.bz2", "forge::zlib-1.2.8-0"))
	conflict, ok = c.Conflict("zlib-1.2.8-0")
	require.True(t, ok)
	assert.Equal(t, domain.Dist("forge::zlib-1.2.8-0"), conflict)
}

func TestCache_ChannelPrefix(t *testing.T) {
	c, _ := newCache(t)
	url := "file:///local/channel/linux-64/pkg-1.0-0.tar.bz2"

	_, ok := c.ChannelPrefix(url)
	assert.False(t, ok)

	require.NoError(t, c.RecordURL(url, "forge::pkg-1.0-0"))
	label, ok := c.ChannelPrefix(url)
	require.True(t, ok)
	assert.Equal(t, "forge::", label)
}

func TestCache_LedgerSurvivesReload(t *testing.T) {
	c, dir := newCache(t)
	url := "https://conda.example.org/forge/linux-64/pkg-1.0-0.tar.bz2"
	require.NoError(t, c.RecordURL(url, "forge::pkg-1.0-0"))

	reloaded, err := pkgcache.New(dir)
	require.NoError(t, err)
	label, ok := reloaded.ChannelPrefix(url)
	require.True(t, ok)
	assert.Equal(t, "forge::", label)
}

func TestCache_RemoveArchive(t *testing.T) {
	c, dir := newCache(t)
	putArchive(t, dir, "zlib-1.2.8-0.tar.bz2")
	require.NoError(t, c.RecordURL("https://repo.example.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2", "zlib-1.2.8-0"))

	require.NoError(t, c.RemoveArchive("zlib-1.2.8-0"))
	_, ok := c.Fetched("zlib-1.2.8-0")
	assert.False(t, ok)
	_, ok = c.ChannelPrefix("https://repo.example.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2")
	assert.False(t, ok)

	// Removing an absent archive is not an error.
	require.NoError(t, c.RemoveArchive("zlib-1.2.8-0"))
}

func TestCache_RemoveExtracted(t *testing.T) {
	c, dir := newCache(t)
	putExtracted(t, dir, "zlib-1.2.8-0")

	require.NoError(t, c.RemoveExtracted("zlib-1.2.8-0"))
	_, ok := c.Extracted("zlib-1.2.8-0")
	assert.False(t, ok)

	require.NoError(t, c.RemoveExtracted("zlib-1.2.8-0"))
}
