package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.March, 15), date)
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	tests := []string{"2025-3-15", "15-03-2025", "20250315", "not a date", ""}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.Error(t, err)
		})
	}
}

func TestParseCompactDate(t *testing.T) {
	date, err := ParseCompactDate("20250315")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.March, 15), date)

	_, err = ParseCompactDate("2025-03-15")
	assert.Error(t, err)
}

func TestDateStringAndCompact(t *testing.T) {
	date := NewDate(2025, time.March, 5)

	assert.Equal(t, "2025-03-05", date.String())
	assert.Equal(t, "20250305", date.Compact())
}

func TestDateOfUsesLocationOfInstant(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on the 2nd is still the evening of the 1st in New York.
	instant := time.Date(2025, time.June, 2, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2025, time.June, 1), DateOf(instant.In(loc)))
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{name: "equal", a: NewDate(2025, time.March, 15), b: NewDate(2025, time.March, 15), want: 0},
		{name: "earlier year", a: NewDate(2024, time.December, 31), b: NewDate(2025, time.January, 1), want: -1},
		{name: "earlier month", a: NewDate(2025, time.February, 28), b: NewDate(2025, time.March, 1), want: -1},
		{name: "later day", a: NewDate(2025, time.March, 16), b: NewDate(2025, time.March, 15), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Before(tt.b))
			assert.Equal(t, tt.want > 0, tt.a.After(tt.b))
		})
	}
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2025, time.January, 1).IsZero())
}
