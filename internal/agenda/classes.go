package agenda

import (
	"sort"
	"time"

	"github.com/uniagenda/agenda-bot/internal/models"
)

// ClassOccurrence is one meeting of a subject class on the current day.
// A subject with duplicate availableDays entries for today (bad data,
// or genuinely two sessions) yields one occurrence per entry.
type ClassOccurrence struct {
	Subject models.UserSubject
	Day     models.AvailableDay
}

// ClassesToday returns the meetings scheduled for now's weekday, ordered
// ascending by the starting hour. Entries whose start time cannot be
// parsed sort first with hour 0; that is a degraded ordering, not an
// error. Equal hours keep input order.
func ClassesToday(subjects []models.UserSubject, now time.Time) []ClassOccurrence {
	today := CurrentWeekDay(now).Short

	var out []ClassOccurrence
	for _, s := range subjects {
		for _, d := range s.SubjectClass.AvailableDays {
			if d.Day == today {
				out = append(out, ClassOccurrence{Subject: s, Day: d})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return leadingHour(out[i].Day.Start) < leadingHour(out[j].Day.Start)
	})
	return out
}

// leadingHour extracts the integer value of the leading digits of a
// clock string ("08:00" -> 8). Anything unparseable is 0. Accumulation
// stops past 23: no valid hour is larger, and a runaway digit string
// must not overflow.
func leadingHour(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
		if n > 23 {
			return 24
		}
	}
	if !seen {
		return 0
	}
	return n
}
