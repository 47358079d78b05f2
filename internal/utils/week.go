package utils

import "time"

// WeekBounds returns the Monday-to-Sunday window containing now, in UTC.
// Start is the most recent Monday on or before now at 00:00:00; end is the
// nearest Sunday on or after now at 23:59:59.
func WeekBounds(now time.Time) (start, end time.Time) {
	now = now.UTC()

	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)
	start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)

	sunday := start.AddDate(0, 0, 6)
	end = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, time.UTC)

	return start, end
}
