// Package config loads the workspace config file: the timezone every log is
// recorded in, plus declarations of remote plan sources and timesheet
// audiences that the wiring layer binds to integration plugins.
package config

import (
	"fmt"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/faffage/faff/internal/ports"
)

type Config struct {
	Timezone    *time.Location
	PlanRemotes []PlanRemote
	Audiences   []Audience
}

// PlanRemote names an external plan source and the plugin that serves it.
type PlanRemote struct {
	Name     string
	Plugin   string
	Settings map[string]any
	Defaults PlanDefaults
}

// PlanDefaults are vocabulary terms folded into every plan pulled from a
// remote that does not supply its own.
type PlanDefaults struct {
	Roles      []string
	Objectives []string
	Actions    []string
}

// Audience names a timesheet recipient, the plugin that compiles and submits
// for it, and the signing identities it accepts.
type Audience struct {
	Name       string
	Plugin     string
	Settings   map[string]any
	SigningIDs []string
}

type fileSchema struct {
	Timezone  string           `toml:"timezone"`
	Remotes   []remoteSchema   `toml:"plan_remote"`
	Audiences []audienceSchema `toml:"timesheet_audience"`
}

type remoteSchema struct {
	Name     string         `toml:"name"`
	Plugin   string         `toml:"plugin"`
	Settings map[string]any `toml:"config"`
	Defaults defaultsSchema `toml:"defaults"`
}

type defaultsSchema struct {
	Roles      []string `toml:"roles"`
	Objectives []string `toml:"objectives"`
	Actions    []string `toml:"actions"`
}

type audienceSchema struct {
	Name       string         `toml:"name"`
	Plugin     string         `toml:"plugin"`
	Settings   map[string]any `toml:"config"`
	SigningIDs []string       `toml:"signing_ids"`
}

// Parse decodes a config document and resolves its timezone.
func Parse(text string) (Config, error) {
	var schema fileSchema
	if err := toml.Unmarshal([]byte(text), &schema); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if schema.Timezone == "" {
		return Config{}, fmt.Errorf("config is missing %q", "timezone")
	}
	timezone, err := time.LoadLocation(schema.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", schema.Timezone, err)
	}

	cfg := Config{Timezone: timezone}
	for _, remote := range schema.Remotes {
		cfg.PlanRemotes = append(cfg.PlanRemotes, PlanRemote{
			Name:     remote.Name,
			Plugin:   remote.Plugin,
			Settings: remote.Settings,
			Defaults: PlanDefaults(remote.Defaults),
		})
	}
	for _, audience := range schema.Audiences {
		cfg.Audiences = append(cfg.Audiences, Audience(audience))
	}

	return cfg, nil
}

// Load reads and parses the config file from storage.
func Load(storage ports.Storage) (Config, error) {
	text, err := storage.ReadString(storage.ConfigFile())
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(text)
}
