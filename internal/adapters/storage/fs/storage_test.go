package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/ports"
)

func TestInitCreatesDataDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	storage, err := Init(root)
	require.NoError(t, err)

	assert.Equal(t, root, storage.RootDir())
	assert.DirExists(t, filepath.Join(root, ".faff"))
}

func TestInitFailsWhenDataDirExists(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := Init(root)
	require.NoError(t, err)

	_, err = Init(root)
	assert.Error(t, err)
}

func TestNewUsesConfiguredDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dataDir := filepath.Join(root, ".faff")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	config := viper.New()
	config.Set("dir", dataDir)

	storage, err := New(config)
	require.NoError(t, err)
	assert.Equal(t, root, storage.RootDir())
	assert.Equal(t, filepath.Join(dataDir, "logs"), storage.LogDir())
}

func TestNewRejectsMissingConfiguredDir(t *testing.T) {
	t.Parallel()

	config := viper.New()
	config.Set("dir", filepath.Join(t.TempDir(), "nope"))

	_, err := New(config)
	assert.Error(t, err)
}

func TestFromPathWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".faff"), 0o755))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	storage, err := FromPath(nested)
	require.NoError(t, err)
	assert.Equal(t, root, storage.RootDir())
}

func TestFromPathNoWorkspace(t *testing.T) {
	t.Parallel()

	_, err := FromPath(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".faff")
}

func TestFileOperations(t *testing.T) {
	t.Parallel()

	storage, err := Init(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, storage.CreateDirAll(storage.LogDir()))

	path := filepath.Join(storage.LogDir(), "2025-06-10.toml")
	assert.False(t, storage.Exists(path))

	require.NoError(t, storage.WriteString(path, "contents"))
	assert.True(t, storage.Exists(path))

	text, err := storage.ReadString(path)
	require.NoError(t, err)
	assert.Equal(t, "contents", text)

	require.NoError(t, storage.Delete(path))
	assert.False(t, storage.Exists(path))

	_, err = storage.ReadString(path)
	assert.Error(t, err)
}

func TestListFiles(t *testing.T) {
	t.Parallel()

	storage, err := Init(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, storage.CreateDirAll(storage.PlanDir()))

	require.NoError(t, storage.WriteString(filepath.Join(storage.PlanDir(), "local.20250101.toml"), ""))
	require.NoError(t, storage.WriteString(filepath.Join(storage.PlanDir(), "jira.20250301.toml"), ""))
	require.NoError(t, storage.WriteString(filepath.Join(storage.PlanDir(), "README.md"), ""))

	files, err := storage.ListFiles(storage.PlanDir(), "*.toml")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "jira.20250301.toml")
	assert.Contains(t, files[1], "local.20250101.toml")
}

func TestListFilesMissingDir(t *testing.T) {
	t.Parallel()

	storage, err := Init(t.TempDir())
	require.NoError(t, err)

	files, err := storage.ListFiles(storage.PlanDir(), "*.toml")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPathHelpers(t *testing.T) {
	t.Parallel()

	storage, err := Init(t.TempDir())
	require.NoError(t, err)

	date := domain.NewDate(2025, time.June, 10)
	assert.Equal(t, filepath.Join(storage.LogDir(), "2025-06-10.toml"), ports.LogFilePath(storage, date))
	assert.Equal(t, filepath.Join(storage.PlanDir(), "local.20250610.toml"), ports.PlanFilePath(storage, "local", date))
	assert.Equal(t, filepath.Join(storage.TimesheetDir(), "acme.2025-06-10.json"), ports.TimesheetFilePath(storage, "acme", date))
}
