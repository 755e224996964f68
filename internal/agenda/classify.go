package agenda

import (
	"math"
	"time"

	"github.com/uniagenda/agenda-bot/internal/models"
)

// Color tokens consumed by the rendering layer. DisplayColor is the only
// place the checked/finished color policy is decided.
const (
	ColorOverdue       = "#E54B4B" // past deadline, still unchecked
	ColorDoneMuted     = "#B0B0B0" // past deadline, checked off
	ColorUpcomingMuted = "#8A8A8A" // checked off ahead of the deadline
	ColorClass         = "#7500BC" // subject-class cards
	colorFallback      = "#4A4A4A"
)

var typeColors = map[models.ActivityType]string{
	models.ActivityExam:         "#D7263D",
	models.ActivityAssignment:   "#3C91E6",
	models.ActivityProject:      "#9C27B0",
	models.ActivityExercise:     "#2FBF71",
	models.ActivityPresentation: "#FFB400",
}

// IsFinished reports whether finishDate is strictly before the start of
// now's calendar day. An activity due today is not finished.
func IsFinished(finishDate, now time.Time) bool {
	return finishDate.Before(startOfDay(now))
}

// GradingPercentage converts a grade fraction (0.25 for a quarter of the
// final grade) to a whole percentage. Rounding is half away from zero;
// the same input always yields the same output.
func GradingPercentage(value float64) int {
	return int(math.Round(value * 100))
}

// ColorForType maps a known activity type to its color token. Unknown
// types resolve to the fallback token, never an error.
func ColorForType(t models.ActivityType) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return colorFallback
}

// DisplayColor picks the card color for an activity.
func DisplayColor(a models.Activity, now time.Time) string {
	finished := IsFinished(a.FinishDate, now)
	switch {
	case finished && !a.Checked:
		return ColorOverdue
	case finished && a.Checked:
		return ColorDoneMuted
	case a.Checked:
		return ColorUpcomingMuted
	default:
		return ColorForType(a.Type)
	}
}
