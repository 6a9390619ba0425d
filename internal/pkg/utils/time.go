package utils

import (
	"hms-service/internal/pkg/constvars"
	"time"
)

// ParseCalendarDate accepts "YYYY-MM-DD" or a full RFC3339 timestamp and
// normalizes it to UTC midnight of the calendar day.
func ParseCalendarDate(value string) (time.Time, error) {
	if t, err := time.Parse(constvars.DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// WeekdayShort returns the three-letter weekday name used by availability
// entries ("Mon".."Sun").
func WeekdayShort(t time.Time) string {
	return t.Weekday().String()[:3]
}

// DayRange returns the [start, end) bounds of the calendar day containing t, in UTC.
func DayRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
