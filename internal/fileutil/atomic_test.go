package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, WriteFileAtomic(filepath.Join(dir, "a.yaml"), []byte("x: 1\n"), 0o600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.yaml", entries[0].Name())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "a.yaml"), []byte("x"), 0o600)
	assert.ErrorContains(t, err, "failed to create temp file")
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	type row struct {
		Name string `yaml:"name"`
		Wins int    `yaml:"wins"`
	}
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, WriteYAML(path, []row{{Name: "mozart", Wins: 3}}, 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []row
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, []row{{Name: "mozart", Wins: 3}}, got)
}
