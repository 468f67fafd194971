package domain

import (
	"fmt"
	"slices"
)

// Intent is the semantic classification of a session: the role it was worked
// in, what it advanced, and the external tracker ids it should be billed to.
// Intents are immutable once constructed.
type Intent struct {
	Alias     string
	Role      string
	Objective string
	Action    string
	Subject   string
	Trackers  []string
}

// NewIntent builds an Intent, de-duplicating trackers and synthesizing an
// alias from the other parts when none is given. Trackers are kept sorted so
// equality is order-independent.
func NewIntent(alias, role, objective, action, subject string, trackers []string) Intent {
	deduped := slices.Clone(trackers)
	slices.Sort(deduped)
	deduped = slices.Compact(deduped)

	if alias == "" {
		alias = fmt.Sprintf("%s: %s to %s for %s", role, action, objective, subject)
	}

	return Intent{
		Alias:     alias,
		Role:      role,
		Objective: objective,
		Action:    action,
		Subject:   subject,
		Trackers:  deduped,
	}
}

func (i Intent) Equal(other Intent) bool {
	return i.Alias == other.Alias &&
		i.Role == other.Role &&
		i.Objective == other.Objective &&
		i.Action == other.Action &&
		i.Subject == other.Subject &&
		slices.Equal(i.Trackers, other.Trackers)
}
