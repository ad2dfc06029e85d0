package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "data")
	store, err := NewLocalStorage(baseDir)
	require.NoError(t, err)
	assert.Equal(t, baseDir, store.BaseDir())

	name, err := store.Save("reports/summary.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "reports/summary.csv", name)

	file, err := store.Open("reports/summary.csv")
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck

	raw, err := os.ReadFile(filepath.Join(baseDir, "reports", "summary.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(raw))
}

func TestLocalStorageOpenMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("missing.csv")
	require.Error(t, err)
}

func TestCopyDir(t *testing.T) {
	source := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(source, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "top.txt"), []byte("top"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(source, "nested", "deep.txt"), []byte("deep"), 0o644))

	target := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyDir(source, target))

	raw, err := os.ReadFile(filepath.Join(target, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "top", string(raw))

	raw, err = os.ReadFile(filepath.Join(target, "nested", "deep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(raw))
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1234"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("56"), 0o644))

	size, err := DirSize(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)
}

func TestDirSizeMissingPath(t *testing.T) {
	size, err := DirSize(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestListByDepth(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "level1", "level2", "level3"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level1", "level2", "deep.txt"), []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level1", "level2", "level3", "deeper.txt"), []byte("z"), 0o644))

	entries, err := ListByDepth(dir, 2)
	require.NoError(t, err)

	assert.Contains(t, entries, "  root.txt")
	assert.Contains(t, entries, "  level1")
	assert.Contains(t, entries, "    level2")
	for _, entry := range entries {
		assert.NotContains(t, entry, "level3", "entries below the depth cap are skipped")
		assert.NotContains(t, entry, "deep.txt")
	}
}
