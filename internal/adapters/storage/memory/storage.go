// Package memory implements the storage port with an in-process map. It is
// not persistent and exists for tests and ephemeral hosts.
package memory

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/faffage/faff/internal/ports"
)

type Storage struct {
	mu    sync.RWMutex
	root  string
	files map[string][]byte
}

var _ ports.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{root: "/faff", files: make(map[string][]byte)}
}

// AddFile seeds the store with a file, creating a fixture in one call.
func (s *Storage) AddFile(filePath string, contents string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filepath.Clean(filePath)] = []byte(contents)
}

func (s *Storage) RootDir() string      { return s.root }
func (s *Storage) LogDir() string       { return filepath.Join(s.root, "logs") }
func (s *Storage) PlanDir() string      { return filepath.Join(s.root, "plans") }
func (s *Storage) IdentityDir() string  { return filepath.Join(s.root, "keys") }
func (s *Storage) TimesheetDir() string { return filepath.Join(s.root, "timesheets") }
func (s *Storage) ConfigFile() string   { return filepath.Join(s.root, "config.toml") }

func (s *Storage) ReadString(filePath string) (string, error) {
	data, err := s.ReadBytes(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Storage) WriteString(filePath string, data string) error {
	return s.WriteBytes(filePath, []byte(data))
}

func (s *Storage) ReadBytes(filePath string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[filepath.Clean(filePath)]
	if !ok {
		return nil, fmt.Errorf("read file %s: not found", filePath)
	}
	return slices.Clone(data), nil
}

func (s *Storage) WriteBytes(filePath string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filepath.Clean(filePath)] = slices.Clone(data)
	return nil
}

func (s *Storage) Delete(filePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clean := filepath.Clean(filePath)
	if _, ok := s.files[clean]; !ok {
		return fmt.Errorf("delete file %s: not found", filePath)
	}
	delete(s.files, clean)
	return nil
}

func (s *Storage) Exists(filePath string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.files[filepath.Clean(filePath)]
	return ok
}

func (s *Storage) CreateDirAll(string) error { return nil }

func (s *Storage) ListFiles(dir string, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := filepath.Clean(dir) + string(filepath.Separator)

	var matches []string
	for filePath := range s.files {
		if !strings.HasPrefix(filePath, prefix) {
			continue
		}
		ok, err := path.Match(pattern, filepath.Base(filePath))
		if err != nil {
			return nil, fmt.Errorf("list %s in %s: %w", pattern, dir, err)
		}
		if ok {
			matches = append(matches, filePath)
		}
	}

	slices.Sort(matches)
	return matches, nil
}
