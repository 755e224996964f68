package agenda

import (
	"sort"
	"time"

	"github.com/uniagenda/agenda-bot/internal/models"
)

// All aggregations are pure: inputs are never mutated and results are
// fresh slices. Callers evaluate "now" once and thread it through so a
// midnight crossing mid-call cannot shift the day/week boundaries.

// RemainingCount counts activities whose deadline has not yet passed.
func RemainingCount(activities []models.Activity, now time.Time) int {
	n := 0
	for _, a := range activities {
		if !IsFinished(a.FinishDate, now) {
			n++
		}
	}
	return n
}

// SortedForList orders activities for the main list view: unchecked
// before checked, then by deadline day with overdue items pushed to the
// bottom. The sort is stable; equal keys keep their input order.
func SortedForList(activities []models.Activity, now time.Time) []models.Activity {
	out := make([]models.Activity, len(activities))
	copy(out, activities)

	today := startOfDay(now)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Checked != b.Checked {
			return !a.Checked
		}
		da := startOfDay(a.FinishDate)
		db := startOfDay(b.FinishDate)
		if da.Equal(db) {
			return false
		}
		aPast := da.Before(today)
		bPast := db.Before(today)
		switch {
		case !aPast && !bPast:
			return da.Before(db)
		case aPast && bPast:
			return false // both overdue: keep input order
		default:
			return bPast // the overdue one sorts last
		}
	})
	return out
}

// DueToday filters activities whose deadline falls on now's calendar
// day, preserving input order.
func DueToday(activities []models.Activity, now time.Time) []models.Activity {
	var out []models.Activity
	for _, a := range activities {
		if IsSameCalendarDay(a.FinishDate, now) {
			out = append(out, a)
		}
	}
	return out
}

// DueThisWeek filters activities due in the current Sunday-to-Saturday
// week (both boundary days inclusive, compared at day granularity) and
// sorts them ascending by deadline.
func DueThisWeek(activities []models.Activity, now time.Time) []models.Activity {
	weekStart := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	var out []models.Activity
	for _, a := range activities {
		day := startOfDay(a.FinishDate)
		if day.Before(weekStart) || day.After(weekEnd) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishDate.Before(out[j].FinishDate)
	})
	return out
}
