package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek wednesday",
			now:       time.Date(2025, 9, 3, 14, 30, 0, 0, time.UTC),
			wantStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 9, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "monday maps to itself",
			now:       time.Date(2025, 9, 1, 0, 0, 1, 0, time.UTC),
			wantStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 9, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the preceding monday",
			now:       time.Date(2025, 9, 7, 23, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 9, 7, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "friday job cadence",
			now:       time.Date(2025, 12, 26, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 12, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "window spanning a month boundary",
			now:       time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 8, 3, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestWeekBoundsIsStablePerWeek(t *testing.T) {
	// Every instant inside one calendar week must produce the same window,
	// otherwise re-running the aggregation mid-week would write a second row.
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	wantStart, wantEnd := WeekBounds(base)

	for hours := 0; hours < 7*24; hours += 7 {
		start, end := WeekBounds(base.Add(time.Duration(hours) * time.Hour))
		assert.Equal(t, wantStart, start)
		assert.Equal(t, wantEnd, end)
	}
}

func TestWeekBoundsNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	start, _ := WeekBounds(time.Date(2025, 9, 2, 1, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), start)
}
