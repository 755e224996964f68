package models

type Subject struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

// AvailableDay is one weekly meeting slot of a subject class.
// Day holds the short weekday code ("dom".."sab"); Start and End are
// clock strings as delivered by the university ("08:00", "14:00").
type AvailableDay struct {
	Day   string `db:"day"`
	Start string `db:"start_time"`
	End   string `db:"end_time"`
}

type SubjectClass struct {
	ID            int64  `db:"id"`
	Name          string `db:"class_name"`
	Subject       Subject
	AvailableDays []AvailableDay
}

// UserSubject is a student's enrollment in a SubjectClass.
type UserSubject struct {
	ID           int64 `db:"id"`
	SubjectClass SubjectClass
	Absences     int     `db:"absences"`
	Observation  *string `db:"observation"`
}
