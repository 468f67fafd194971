// Package fs implements the storage port on the real filesystem. The data
// directory is a .faff directory found by walking up from the working
// directory, or named explicitly through configuration.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/faffage/faff/internal/ports"
)

const (
	dataDirName = ".faff"
	dataDirKey  = "dir"
	envPrefix   = "FAFF"
	fileMode    = 0o644
	dirMode     = 0o755
)

type Storage struct {
	root string
	dir  string
}

var _ ports.Storage = (*Storage)(nil)

// New resolves the data directory and returns a Storage rooted there. The
// viper key "dir" (env FAFF_DIR) overrides discovery; otherwise the search
// walks up from the current working directory.
func New(cfg *viper.Viper) (*Storage, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	cfg.SetEnvPrefix(envPrefix)
	cfg.AutomaticEnv()
	cfg.SetDefault(dataDirKey, "")

	if dir := cfg.GetString(dataDirKey); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve data directory %q: %w", dir, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("data directory %q is not a directory", dir)
		}
		return &Storage{root: filepath.Dir(abs), dir: abs}, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return FromPath(cwd)
}

// FromPath walks up from start looking for a .faff directory.
func FromPath(start string) (*Storage, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve start path %q: %w", start, err)
	}

	for {
		candidate := filepath.Join(current, dataDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Storage{root: current, dir: candidate}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, fmt.Errorf("no %s directory found from %s", dataDirName, start)
		}
		current = parent
	}
}

// Init creates a fresh .faff directory under root and returns a Storage for
// it. Fails if one already exists there.
func Init(root string) (*Storage, error) {
	dir := filepath.Join(root, dataDirName)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%s already exists", dir)
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &Storage{root: root, dir: dir}, nil
}

func (s *Storage) RootDir() string      { return s.root }
func (s *Storage) LogDir() string       { return filepath.Join(s.dir, "logs") }
func (s *Storage) PlanDir() string      { return filepath.Join(s.dir, "plans") }
func (s *Storage) IdentityDir() string  { return filepath.Join(s.dir, "keys") }
func (s *Storage) TimesheetDir() string { return filepath.Join(s.dir, "timesheets") }
func (s *Storage) ConfigFile() string   { return filepath.Join(s.dir, "config.toml") }

func (s *Storage) ReadString(path string) (string, error) {
	data, err := s.ReadBytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Storage) WriteString(path string, data string) error {
	return s.WriteBytes(path, []byte(data))
}

func (s *Storage) ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return data, nil
}

func (s *Storage) WriteBytes(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}

func (s *Storage) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete file %s: %w", path, err)
	}
	return nil
}

func (s *Storage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Storage) CreateDirAll(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

func (s *Storage) ListFiles(dir string, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("list %s in %s: %w", pattern, dir, err)
	}
	if matches == nil && !s.Exists(dir) {
		// A missing directory simply has no files.
		return nil, nil
	}
	return matches, nil
}
