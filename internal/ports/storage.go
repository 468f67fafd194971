package ports

import (
	"fmt"
	"path/filepath"

	"github.com/faffage/faff/internal/domain"
)

// Storage abstracts the workspace data directory. The core performs no
// direct filesystem access; every component receives a Storage and works in
// terms of paths it hands out.
type Storage interface {
	RootDir() string
	LogDir() string
	PlanDir() string
	IdentityDir() string
	TimesheetDir() string
	ConfigFile() string

	ReadString(path string) (string, error)
	WriteString(path string, data string) error
	ReadBytes(path string) ([]byte, error)
	WriteBytes(path string, data []byte) error
	Delete(path string) error
	Exists(path string) bool
	CreateDirAll(path string) error
	ListFiles(dir string, pattern string) ([]string, error)
}

func LogFilePath(s Storage, date domain.Date) string {
	return filepath.Join(s.LogDir(), date.String()+".toml")
}

func PlanFilePath(s Storage, source string, validFrom domain.Date) string {
	return filepath.Join(s.PlanDir(), fmt.Sprintf("%s.%s.toml", source, validFrom.Compact()))
}

func TimesheetFilePath(s Storage, audienceID string, date domain.Date) string {
	return filepath.Join(s.TimesheetDir(), fmt.Sprintf("%s.%s.json", audienceID, date))
}
