package memory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteDelete(t *testing.T) {
	t.Parallel()

	storage := New()
	path := filepath.Join(storage.LogDir(), "2025-06-10.toml")

	_, err := storage.ReadString(path)
	assert.Error(t, err)

	require.NoError(t, storage.WriteString(path, "contents"))
	assert.True(t, storage.Exists(path))

	text, err := storage.ReadString(path)
	require.NoError(t, err)
	assert.Equal(t, "contents", text)

	require.NoError(t, storage.Delete(path))
	assert.False(t, storage.Exists(path))
	assert.Error(t, storage.Delete(path))
}

func TestAddFileSeedsFixture(t *testing.T) {
	t.Parallel()

	storage := New()
	storage.AddFile(storage.ConfigFile(), `timezone = "UTC"`)

	text, err := storage.ReadString(storage.ConfigFile())
	require.NoError(t, err)
	assert.Contains(t, text, "UTC")
}

func TestReadBytesReturnsCopy(t *testing.T) {
	t.Parallel()

	storage := New()
	path := filepath.Join(storage.PlanDir(), "local.20250101.toml")
	require.NoError(t, storage.WriteBytes(path, []byte("abc")))

	data, err := storage.ReadBytes(path)
	require.NoError(t, err)
	data[0] = 'z'

	again, err := storage.ReadBytes(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestListFilesMatchesPatternWithinDir(t *testing.T) {
	t.Parallel()

	storage := New()
	storage.AddFile(filepath.Join(storage.PlanDir(), "local.20250101.toml"), "")
	storage.AddFile(filepath.Join(storage.PlanDir(), "jira.20250301.toml"), "")
	storage.AddFile(filepath.Join(storage.PlanDir(), "notes.txt"), "")
	storage.AddFile(filepath.Join(storage.LogDir(), "2025-06-10.toml"), "")

	files, err := storage.ListFiles(storage.PlanDir(), "*.toml")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "jira.20250301.toml")
	assert.Contains(t, files[1], "local.20250101.toml")
}

func TestListFilesEmptyDir(t *testing.T) {
	t.Parallel()

	files, err := New().ListFiles("/faff/plans", "*.toml")
	require.NoError(t, err)
	assert.Empty(t, files)
}
