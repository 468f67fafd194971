package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faffage/faff/internal/adapters/storage/memory"
)

func TestParseMinimalConfig(t *testing.T) {
	cfg, err := Parse(`timezone = "Europe/London"`)
	require.NoError(t, err)

	assert.Equal(t, "Europe/London", cfg.Timezone.String())
	assert.Empty(t, cfg.PlanRemotes)
	assert.Empty(t, cfg.Audiences)
}

func TestParseFullConfig(t *testing.T) {
	text := `timezone = "UTC"

[[plan_remote]]
name = "jira"
plugin = "jira-cloud"

[plan_remote.config]
base_url = "https://acme.atlassian.net"
project = "PLAT"

[plan_remote.defaults]
roles = ["engineer"]
objectives = ["platform"]
actions = ["build"]

[[timesheet_audience]]
name = "acme"
plugin = "acme-billing"
signing_ids = ["key-1", "key-2"]

[timesheet_audience.config]
endpoint = "https://billing.acme.example"
`

	cfg, err := Parse(text)
	require.NoError(t, err)

	require.Len(t, cfg.PlanRemotes, 1)
	remote := cfg.PlanRemotes[0]
	assert.Equal(t, "jira", remote.Name)
	assert.Equal(t, "jira-cloud", remote.Plugin)
	assert.Equal(t, "PLAT", remote.Settings["project"])
	assert.Equal(t, []string{"engineer"}, remote.Defaults.Roles)

	require.Len(t, cfg.Audiences, 1)
	audience := cfg.Audiences[0]
	assert.Equal(t, "acme", audience.Name)
	assert.Equal(t, "acme-billing", audience.Plugin)
	assert.Equal(t, []string{"key-1", "key-2"}, audience.SigningIDs)
	assert.Equal(t, "https://billing.acme.example", audience.Settings["endpoint"])
}

func TestParseMissingTimezone(t *testing.T) {
	_, err := Parse(`[[plan_remote]]
name = "jira"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestParseInvalidTimezone(t *testing.T) {
	_, err := Parse(`timezone = "Mars/Olympus"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars/Olympus")
}

func TestParseMalformedTOML(t *testing.T) {
	_, err := Parse(`timezone = `)
	assert.Error(t, err)
}

func TestLoadReadsConfigFromStorage(t *testing.T) {
	storage := memory.New()
	storage.AddFile(storage.ConfigFile(), `timezone = "UTC"`)

	cfg, err := Load(storage)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone.String())
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(memory.New())
	assert.Error(t, err)
}
