package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIsOpen(t *testing.T) {
	start := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

	open := NewSession(Intent{Alias: "work"}, start, time.Time{}, "")
	assert.True(t, open.IsOpen())

	closed := open.WithEnd(start.Add(time.Hour))
	assert.False(t, closed.IsOpen())
	assert.True(t, open.IsOpen(), "closing returns a copy")
}

func TestSessionDuration(t *testing.T) {
	start := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	session := NewSession(Intent{Alias: "work"}, start, start.Add(90*time.Minute), "")

	duration, err := session.Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, duration)
}

func TestSessionDurationOpenSession(t *testing.T) {
	start := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	session := NewSession(Intent{Alias: "work"}, start, time.Time{}, "")

	_, err := session.Duration()
	assert.ErrorIs(t, err, ErrMissingEnd)
}

func TestSessionDurationEndBeforeStart(t *testing.T) {
	start := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	session := NewSession(Intent{Alias: "work"}, start, start.Add(-time.Minute), "")

	_, err := session.Duration()
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}
