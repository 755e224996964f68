package handlers

import (
	"fmt"
	"time"

	"github.com/uniagenda/agenda-bot/internal/agenda"
	"github.com/uniagenda/agenda-bot/internal/models"
)

// Telegram has no colored cards, so each color token maps to a bullet.
// The token choice itself stays in agenda.DisplayColor; this is pure
// presentation.
var colorBullets = map[string]string{
	agenda.ColorOverdue:       "🔴",
	agenda.ColorDoneMuted:     "⚪",
	agenda.ColorUpcomingMuted: "✔️",
}

func bulletFor(a models.Activity, now time.Time) string {
	if b, ok := colorBullets[agenda.DisplayColor(a, now)]; ok {
		return b
	}
	return "🟣" // type colors all render as the pending bullet
}

// activityLine renders one activity the way the mobile cards did:
// name, subject, grading share and deadline.
func activityLine(a models.Activity, now time.Time) string {
	subject := ""
	if a.SubjectClass != nil && a.SubjectClass.Subject.Name != "" {
		subject = " · " + a.SubjectClass.Subject.Name
	}
	return fmt.Sprintf("%s %s%s — %d%% da Nota — %s",
		bulletFor(a, now),
		a.Name,
		subject,
		agenda.GradingPercentage(a.Value),
		a.FinishDate.Format("02/01"),
	)
}

func classLine(occ agenda.ClassOccurrence) string {
	s := occ.Subject
	line := fmt.Sprintf("📚 %s — %s às %s", s.SubjectClass.Subject.Name, occ.Day.Start, occ.Day.End)
	if s.Absences > 0 {
		line += fmt.Sprintf(" — %d faltas", s.Absences)
	}
	if s.Observation != nil && *s.Observation != "" {
		line += "\n   " + *s.Observation
	}
	return line
}
