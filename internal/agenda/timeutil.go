package agenda

import "time"

// WeekDay carries the short code used by availableDays entries and the
// full name used in greetings.
type WeekDay struct {
	Short string
	Full  string
}

// Indexed by time.Weekday (Sunday = 0).
var weekDays = [7]WeekDay{
	{"dom", "domingo"},
	{"seg", "segunda-feira"},
	{"ter", "terça-feira"},
	{"qua", "quarta-feira"},
	{"qui", "quinta-feira"},
	{"sex", "sexta-feira"},
	{"sab", "sábado"},
}

// CurrentWeekDay resolves the weekday of now in now's location.
func CurrentWeekDay(now time.Time) WeekDay {
	return weekDays[int(now.Weekday())]
}

// IsSameCalendarDay reports whether a and b fall on the same year, month
// and day of month, each interpreted in its own location.
func IsSameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SemesterProgressPercent returns how far now has advanced through the
// [start, end] term as an integer percentage, clamped to [0, 100].
// A degenerate term (end before or equal to start) clamps instead of
// dividing by zero.
func SemesterProgressPercent(now, start, end time.Time) int {
	total := end.Sub(start)
	if total <= 0 {
		if now.Before(start) {
			return 0
		}
		return 100
	}
	pct := int(now.Sub(start) * 100 / total)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// startOfDay truncates t to midnight in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
