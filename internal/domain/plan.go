package domain

import (
	"maps"
	"slices"
	"strings"
)

// Plan is a dated, source-attributed bundle of vocabulary, trackers, and
// reusable intent templates. A plan applies to every date in
// [ValidFrom, ValidUntil]; a zero ValidUntil leaves it open-ended. Plans are
// immutable once loaded; a newer file for the same source supersedes an older
// one rather than mutating it.
type Plan struct {
	Source     string
	ValidFrom  Date
	ValidUntil Date
	Roles      []string
	Actions    []string
	Objectives []string
	Subjects   []string
	Trackers   map[string]string
	Intents    []Intent
}

// ID returns a slug of the plan source, usable in filenames.
func (p Plan) ID() string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(p.Source) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidOn reports whether the plan's validity window covers date.
func (p Plan) ValidOn(date Date) bool {
	if p.ValidFrom.After(date) {
		return false
	}
	if !p.ValidUntil.IsZero() && p.ValidUntil.Before(date) {
		return false
	}
	return true
}

// AddIntent returns a copy of the plan with the intent appended, unless an
// equal intent is already present.
func (p Plan) AddIntent(intent Intent) Plan {
	for _, existing := range p.Intents {
		if existing.Equal(intent) {
			return p
		}
	}

	next := p
	next.Roles = slices.Clone(p.Roles)
	next.Actions = slices.Clone(p.Actions)
	next.Objectives = slices.Clone(p.Objectives)
	next.Subjects = slices.Clone(p.Subjects)
	next.Trackers = maps.Clone(p.Trackers)
	next.Intents = append(slices.Clone(p.Intents), intent)
	return next
}
