package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	// Wednesday morning in the business timezone.
	ref := time.Date(2026, 3, 4, 10, 0, 0, 0, loc)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"canonical passthrough", "2026-03-09", "2026-03-09"},
		{"tomorrow", "tomorrow", "2026-03-05"},
		{"next monday", "next monday", "2026-03-09"},
		{"next monday capitalized", "Next Monday", "2026-03-09"},
		{"next friday", "next friday", "2026-03-06"},
		{"next weekday with padding", "  next tuesday ", "2026-03-10"},
		{"bare weekday prefers future", "tuesday", "2026-03-10"},
		{"month and ordinal", "March 9th", "2026-03-09"},
		{"past absolute date stays put", "2024-07-04", "2024-07-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.text, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeConvertsExplicitZone(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)
	ref := time.Date(2026, 3, 4, 10, 0, 0, 0, loc)

	// 03:00 UTC on the 11th is still the evening of the 10th in Chicago.
	got, err := n.Normalize("2026-03-11 03:00 UTC", ref)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got)
}

func TestNormalizeNotParseable(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)
	ref := time.Date(2026, 3, 4, 10, 0, 0, 0, loc)

	_, err := n.Normalize("definitely not a date", ref)
	assert.ErrorIs(t, err, ErrNotParseable)
}
