package host_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/internal/adapters/host"
	"go.trai.ch/den/internal/core/domain"
)

func testConfig(t *testing.T) domain.Config {
	t.Helper()

	root := t.TempDir()
	return domain.Config{
		RootPrefix: root,
		EnvsDirs:   []string{filepath.Join(root, "envs")},
	}
}

func TestHost_RegisterEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	h := host.New(testConfig(t))
	require.NoError(t, h.RegisterEnv("/opt/envs/science"))
	require.NoError(t, h.RegisterEnv("/opt/envs/web"))

	data, err := os.ReadFile(filepath.Join(home, ".conda", host.EnvRegistryFileName))
	require.NoError(t, err)
	assert.Equal(t, "/opt/envs/science\n/opt/envs/web\n", string(data))
}

func TestHost_TouchNonAdmin_NonWindows(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RootPrefix, domain.NonAdminFileName), nil, 0o644))

	h := host.NewHostWithOS(cfg, "linux")
	prefix := filepath.Join(cfg.RootPrefix, "envs", "science")
	require.NoError(t, h.TouchNonAdmin(prefix))

	assert.NoFileExists(t, filepath.Join(prefix, domain.NonAdminFileName))
}

func TestHost_TouchNonAdmin_Windows(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.RootPrefix, domain.NonAdminFileName), nil, 0o644))

	h := host.NewHostWithOS(cfg, "windows")
	prefix := filepath.Join(cfg.RootPrefix, "envs", "science")
	require.NoError(t, h.TouchNonAdmin(prefix))

	assert.FileExists(t, filepath.Join(prefix, domain.NonAdminFileName))
}

func TestHost_TouchNonAdmin_ElevatedRoot(t *testing.T) {
	cfg := testConfig(t)

	h := host.NewHostWithOS(cfg, "windows")
	prefix := filepath.Join(cfg.RootPrefix, "envs", "science")
	require.NoError(t, h.TouchNonAdmin(prefix))

	// No marker on the root means none on derived environments.
	assert.NoFileExists(t, filepath.Join(prefix, domain.NonAdminFileName))
}

func TestHost_ListPrefixes(t *testing.T) {
	cfg := testConfig(t)
	envsDir := cfg.EnvsDirs[0]
	require.NoError(t, os.MkdirAll(filepath.Join(envsDir, "science"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(envsDir, "web"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(envsDir, ".trash"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(envsDir, "notes.txt"), []byte("x"), 0o644))

	h := host.New(cfg)
	prefixes, err := h.ListPrefixes()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(envsDir, "science"),
		filepath.Join(envsDir, "web"),
		cfg.RootPrefix,
	}, prefixes)
}

func TestHost_ListPrefixes_MissingEnvsDir(t *testing.T) {
	cfg := testConfig(t)

	h := host.New(cfg)
	prefixes, err := h.ListPrefixes()
	require.NoError(t, err)

	// Only the root remains when no environments directory exists yet.
	assert.Equal(t, []string{cfg.RootPrefix}, prefixes)
}

func TestHost_ActivationEnv(t *testing.T) {
	t.Setenv("PATH", "/usr/local/bin:/usr/bin")
	t.Setenv("EDITOR", "vi")

	cfg := testConfig(t)
	h := host.NewHostWithOS(cfg, "linux")
	prefix := filepath.Join(cfg.RootPrefix, "envs", "science")

	env := h.ActivationEnv(prefix)

	wantPath := "PATH=" + filepath.Join(prefix, "bin") + string(os.PathListSeparator) + "/usr/local/bin:/usr/bin"
	assert.Contains(t, env, wantPath)
	assert.Contains(t, env, "EDITOR=vi")

	paths := 0
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			paths++
		}
	}
	assert.Equal(t, 1, paths)
}

func TestHost_ActivationEnv_Windows(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	cfg := testConfig(t)
	h := host.NewHostWithOS(cfg, "windows")
	prefix := filepath.Join(cfg.RootPrefix, "envs", "science")

	env := h.ActivationEnv(prefix)

	found := false
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			found = true
			assert.Contains(t, kv, filepath.Join(prefix, "Scripts"))
		}
	}
	assert.True(t, found)
}
