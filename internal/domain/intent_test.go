package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIntentDeduplicatesAndSortsTrackers(t *testing.T) {
	intent := NewIntent("work", "engineer", "platform", "build", "acme",
		[]string{"jira:B-2", "jira:A-1", "jira:B-2"})

	assert.Equal(t, []string{"jira:A-1", "jira:B-2"}, intent.Trackers)
}

func TestNewIntentSynthesizesAlias(t *testing.T) {
	intent := NewIntent("", "engineer", "platform", "build", "acme", nil)

	assert.Equal(t, "engineer: build to platform for acme", intent.Alias)
}

func TestNewIntentKeepsExplicitAlias(t *testing.T) {
	intent := NewIntent("deep work", "engineer", "platform", "build", "acme", nil)

	assert.Equal(t, "deep work", intent.Alias)
}

func TestIntentEqualIgnoresTrackerOrder(t *testing.T) {
	a := NewIntent("work", "engineer", "", "", "", []string{"t:1", "t:2"})
	b := NewIntent("work", "engineer", "", "", "", []string{"t:2", "t:1"})

	assert.True(t, a.Equal(b))
}

func TestIntentEqualDistinguishesFields(t *testing.T) {
	base := NewIntent("work", "engineer", "platform", "build", "acme", []string{"t:1"})

	tests := []struct {
		name  string
		other Intent
	}{
		{name: "alias", other: NewIntent("other", "engineer", "platform", "build", "acme", []string{"t:1"})},
		{name: "role", other: NewIntent("work", "designer", "platform", "build", "acme", []string{"t:1"})},
		{name: "objective", other: NewIntent("work", "engineer", "launch", "build", "acme", []string{"t:1"})},
		{name: "action", other: NewIntent("work", "engineer", "platform", "review", "acme", []string{"t:1"})},
		{name: "subject", other: NewIntent("work", "engineer", "platform", "build", "globex", []string{"t:1"})},
		{name: "trackers", other: NewIntent("work", "engineer", "platform", "build", "acme", []string{"t:2"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, base.Equal(tt.other))
		})
	}
}
