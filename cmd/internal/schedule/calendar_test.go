package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func TestIsBusinessDay(t *testing.T) {
	c := NewCalendar(chicago(t))

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"monday", "2026-03-09", true},
		{"friday", "2026-03-06", true},
		{"saturday", "2026-03-07", false},
		{"sunday", "2026-03-08", false},
		{"independence day", "2024-07-04", false},
		{"new year's day", "2026-01-01", false},
		{"observed independence day", "2026-07-03", false},
		{"plain thursday", "2026-03-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.IsBusinessDay(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBusinessDayRejectsBadDate(t *testing.T) {
	c := NewCalendar(chicago(t))
	_, err := c.IsBusinessDay("03/09/2026")
	assert.Error(t, err)
}

func TestNonBusinessReason(t *testing.T) {
	c := NewCalendar(chicago(t))

	reason, closed, err := c.NonBusinessReason("2026-03-07")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, "a Saturday", reason)

	reason, closed, err = c.NonBusinessReason("2026-07-03")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, "Independence Day", reason)

	_, closed, err = c.NonBusinessReason("2026-03-09")
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestBusinessHours(t *testing.T) {
	hours := BusinessHours()

	require.Len(t, hours, 8)
	assert.Equal(t, "09:00", hours[0])
	assert.Equal(t, "16:00", hours[7])
	for i := 1; i < len(hours); i++ {
		assert.Less(t, hours[i-1], hours[i])
	}

	// Restartable: identical on every call.
	assert.Equal(t, hours, BusinessHours())
}
