package db

import (
	"context"
	"database/sql"

	"github.com/uniagenda/agenda-bot/internal/models"
)

// ListUserSubjects loads the user's enrollments with their weekly
// meeting slots. Duplicate weekday entries are returned as stored; the
// aggregator treats each as a separate occurrence.
func ListUserSubjects(ctx context.Context, database *sql.DB, userID int64) ([]models.UserSubject, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, class_name, subject_name, subject_code, absences, observation
		FROM user_subjects
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.UserSubject
	index := map[int64]int{}
	for rows.Next() {
		var us models.UserSubject
		if err := rows.Scan(&us.ID, &us.SubjectClass.Name, &us.SubjectClass.Subject.Name,
			&us.SubjectClass.Subject.Code, &us.Absences, &us.Observation); err != nil {
			return nil, err
		}
		us.SubjectClass.ID = us.ID
		us.SubjectClass.Subject.ID = us.ID
		index[us.ID] = len(result)
		result = append(result, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	dayRows, err := database.QueryContext(ctx, `
		SELECT d.user_subject_id, d.day, d.start_time, d.end_time
		FROM subject_class_days d
		JOIN user_subjects us ON us.id = d.user_subject_id
		WHERE us.user_id = $1
		ORDER BY d.id`, userID)
	if err != nil {
		return nil, err
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var subjectID int64
		var d models.AvailableDay
		if err := dayRows.Scan(&subjectID, &d.Day, &d.Start, &d.End); err != nil {
			return nil, err
		}
		if i, ok := index[subjectID]; ok {
			result[i].SubjectClass.AvailableDays = append(result[i].SubjectClass.AvailableDays, d)
		}
	}
	return result, dayRows.Err()
}

func CreateUserSubject(ctx context.Context, database *sql.DB, userID int64, us models.UserSubject) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO user_subjects (user_id, class_name, subject_name, subject_code, absences, observation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		userID, us.SubjectClass.Name, us.SubjectClass.Subject.Name,
		us.SubjectClass.Subject.Code, us.Absences, us.Observation).Scan(&id)
	if err != nil {
		return 0, err
	}
	for _, d := range us.SubjectClass.AvailableDays {
		if _, err := database.ExecContext(ctx, `
			INSERT INTO subject_class_days (user_subject_id, day, start_time, end_time)
			VALUES ($1, $2, $3, $4)`, id, d.Day, d.Start, d.End); err != nil {
			return 0, err
		}
	}
	return id, nil
}
