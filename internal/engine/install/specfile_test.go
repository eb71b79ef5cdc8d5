package install_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/internal/engine/install"
)

func TestReadSpecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.txt")
	content := `# This file may be used to create an environment using:
# $ den install --file <this file>
@EXPLICIT

https://repo.example.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2:#4d3d6c6f67f2c7e8b9a0f1e2d3c4b5a6
  https://repo.example.com/pkgs/main/linux-64/readline-6.2-2.tar.bz2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := install.ReadSpecFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"@EXPLICIT",
		"https://repo.example.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2:#4d3d6c6f67f2c7e8b9a0f1e2d3c4b5a6",
		"https://repo.example.com/pkgs/main/linux-64/readline-6.2-2.tar.bz2",
	}, lines)
}

func TestReadSpecFile_Missing(t *testing.T) {
	_, err := install.ReadSpecFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
