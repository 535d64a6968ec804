package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2026, 3, 15, 12, 34, 56, 0, time.UTC),
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "first instant of month maps to itself",
			in:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "last instant of month",
			in:   time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC),
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC input uses the UTC month",
			// 23:30 on Jan 31 in UTC-5 is already February in UTC.
			in:   time.Date(2026, 1, 31, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			want: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year boundary",
			in:   time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodStart(tt.in)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNextPeriodStart(t *testing.T) {
	assert.True(t, NextPeriodStart(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)).
		Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	// December rolls into January of the next year.
	assert.True(t, NextPeriodStart(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)).
		Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}
