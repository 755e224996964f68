package agenda

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

func TestCurrentWeekDay(t *testing.T) {
	cases := []struct {
		day   time.Time
		short string
		full  string
	}{
		{date(2026, time.March, 1, 10), "dom", "domingo"},  // Sunday
		{date(2026, time.March, 2, 10), "seg", "segunda-feira"},
		{date(2026, time.March, 7, 10), "sab", "sábado"},
	}
	for _, c := range cases {
		wd := CurrentWeekDay(c.day)
		if wd.Short != c.short || wd.Full != c.full {
			t.Errorf("%s: got %q/%q, want %q/%q", c.day.Format("2006-01-02"), wd.Short, wd.Full, c.short, c.full)
		}
	}
}

func TestIsSameCalendarDay(t *testing.T) {
	a := date(2026, time.March, 2, 0)
	b := date(2026, time.March, 2, 23)
	if !IsSameCalendarDay(a, b) {
		t.Error("same day, different hours: want true")
	}
	if IsSameCalendarDay(a, date(2026, time.March, 3, 0)) {
		t.Error("adjacent days: want false")
	}
	if IsSameCalendarDay(a, date(2027, time.March, 2, 0)) {
		t.Error("same month/day, different year: want false")
	}
}

func TestSemesterProgressPercent(t *testing.T) {
	start := date(2026, time.February, 16, 0)
	end := date(2026, time.July, 4, 0)

	cases := []struct {
		now  time.Time
		want int
	}{
		{start, 0},
		{end, 100},
		{start.AddDate(0, 0, -30), 0},   // before the term clamps
		{end.AddDate(0, 0, 30), 100},    // after the term clamps
		{start.Add(end.Sub(start) / 2), 50},
	}
	for _, c := range cases {
		if got := SemesterProgressPercent(c.now, start, end); got != c.want {
			t.Errorf("%s: got %d, want %d", c.now.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestSemesterProgressPercentDegenerateTerm(t *testing.T) {
	day := date(2026, time.March, 1, 0)
	if got := SemesterProgressPercent(day.AddDate(0, 0, -1), day, day); got != 0 {
		t.Errorf("before zero-length term: got %d, want 0", got)
	}
	if got := SemesterProgressPercent(day.AddDate(0, 0, 1), day, day); got != 100 {
		t.Errorf("after zero-length term: got %d, want 100", got)
	}
}
