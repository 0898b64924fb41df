package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	fs := NewOSFileSystem()
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	require.NoError(t, fs.MkdirAll(dir, 0o755))
	assert.True(t, Exists(fs, dir))

	path := filepath.Join(dir, "file.txt")
	assert.False(t, Exists(fs, path))

	require.NoError(t, fs.WriteFile(path, []byte("first"), 0o644))
	require.NoError(t, fs.WriteFile(path, []byte("second"), 0o644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should be left behind")
}

func TestOSFileSystem_ReadMissing(t *testing.T) {
	_, err := NewOSFileSystem().ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
