package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanID(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "plain", source: "local", want: "local"},
		{name: "mixed case", source: "Acme Jira", want: "acme-jira"},
		{name: "punctuation runs", source: "Client -- (EU)", want: "client-eu"},
		{name: "leading and trailing junk", source: "  jira!  ", want: "jira"},
		{name: "digits", source: "Team 42", want: "team-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plan{Source: tt.source}.ID())
		})
	}
}

func TestPlanValidOn(t *testing.T) {
	plan := Plan{
		Source:     "local",
		ValidFrom:  NewDate(2025, time.March, 1),
		ValidUntil: NewDate(2025, time.March, 31),
	}

	assert.False(t, plan.ValidOn(NewDate(2025, time.February, 28)))
	assert.True(t, plan.ValidOn(NewDate(2025, time.March, 1)))
	assert.True(t, plan.ValidOn(NewDate(2025, time.March, 31)))
	assert.False(t, plan.ValidOn(NewDate(2025, time.April, 1)))
}

func TestPlanValidOnOpenEnded(t *testing.T) {
	plan := Plan{Source: "local", ValidFrom: NewDate(2025, time.March, 1)}

	assert.True(t, plan.ValidOn(NewDate(2030, time.January, 1)))
}

func TestPlanAddIntent(t *testing.T) {
	plan := Plan{Source: "local", ValidFrom: NewDate(2025, time.March, 1)}
	intent := NewIntent("work", "engineer", "", "", "", nil)

	updated := plan.AddIntent(intent)
	require.Len(t, updated.Intents, 1)
	assert.Empty(t, plan.Intents, "receiver is untouched")
}

func TestPlanAddIntentSkipsDuplicate(t *testing.T) {
	intent := NewIntent("work", "engineer", "", "", "", []string{"t:1"})
	plan := Plan{Source: "local"}.AddIntent(intent)

	same := NewIntent("work", "engineer", "", "", "", []string{"t:1"})
	assert.Len(t, plan.AddIntent(same).Intents, 1)
}
