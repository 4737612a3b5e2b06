package helper

import "time"

// Human-readable event date labels. All rendering is done in UTC: event
// rows are stored with their wall-clock time already encoded.

const (
	layoutDateTime = "Mon, 2 Jan, 3:04 PM" // "Wed, 18 Dec, 7:00 PM"
	layoutDate     = "Mon, 2 Jan"          // "Wed, 18 Dec"
	layoutTime     = "3:04 PM"             // "7:00 PM"
)

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutDateTime)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(layoutDate)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(layoutTime)
}

// StartOfWeek returns midnight UTC of the Sunday starting the week of now.
func StartOfWeek(now time.Time) time.Time {
	now = now.UTC()
	day := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// IsThisWeek reports whether t falls inside the current Sunday-based week.
func IsThisWeek(t, now time.Time) bool {
	start := StartOfWeek(now)
	end := start.AddDate(0, 0, 7)
	t = t.UTC()
	return !t.Before(start) && t.Before(end)
}

func IsToday(t, now time.Time) bool {
	t, now = t.UTC(), now.UTC()
	return t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day()
}

func IsPast(t, now time.Time) bool {
	return t.Before(now)
}
