package models

import "time"

// ActivityType categorizes a graded activity. Unknown values are tolerated
// everywhere and rendered with a fallback color.
type ActivityType string

const (
	ActivityExam         ActivityType = "exam"
	ActivityAssignment   ActivityType = "assignment"
	ActivityProject      ActivityType = "project"
	ActivityExercise     ActivityType = "exercise"
	ActivityPresentation ActivityType = "presentation"
)

type Activity struct {
	ID           int64         `db:"id"`
	Name         string        `db:"name"`
	Type         ActivityType  `db:"type"`
	Value        float64       `db:"value"` // fraction of the final grade, 0..1
	FinishDate   time.Time     `db:"finish_date"`
	Checked      bool          `db:"checked"`
	SubjectClass *SubjectClass `db:"-"`
}
