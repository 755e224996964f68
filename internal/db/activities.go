package db

import (
	"context"
	"database/sql"

	"github.com/uniagenda/agenda-bot/internal/models"
)

// ListActivities loads the user's cached activities with the owning
// subject attached for rendering. Order is not significant; the agenda
// package decides presentation order.
func ListActivities(ctx context.Context, database *sql.DB, userID int64) ([]models.Activity, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT a.id, a.name, a.type, a.value, a.finish_date, a.checked,
		       us.id, us.class_name, us.subject_name, us.subject_code
		FROM activities a
		LEFT JOIN user_subjects us ON us.id = a.user_subject_id
		WHERE a.user_id = $1
		ORDER BY a.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Activity
	for rows.Next() {
		var a models.Activity
		var scID sql.NullInt64
		var className, subjName, subjCode sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Value, &a.FinishDate, &a.Checked,
			&scID, &className, &subjName, &subjCode); err != nil {
			return nil, err
		}
		if scID.Valid {
			a.SubjectClass = &models.SubjectClass{
				ID:   scID.Int64,
				Name: className.String,
				Subject: models.Subject{
					ID:   scID.Int64,
					Name: subjName.String,
					Code: subjCode.String,
				},
			}
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func CreateActivity(ctx context.Context, database *sql.DB, userID int64, userSubjectID *int64, a models.Activity) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO activities (user_id, user_subject_id, name, type, value, finish_date, checked)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id`,
		userID, userSubjectID, a.Name, string(a.Type), a.Value, a.FinishDate).Scan(&id)
	return id, err
}

func SetActivityChecked(ctx context.Context, database *sql.DB, userID, activityID int64, checked bool) error {
	_, err := database.ExecContext(ctx, `
		UPDATE activities SET checked = $1 WHERE id = $2 AND user_id = $3`,
		checked, activityID, userID)
	return err
}

func DeleteActivity(ctx context.Context, database *sql.DB, userID, activityID int64) error {
	_, err := database.ExecContext(ctx, `
		DELETE FROM activities WHERE id = $1 AND user_id = $2`, activityID, userID)
	return err
}

// ActivityCache adapts the package functions to the session.Cache
// contract for one database handle.
type ActivityCache struct {
	DB *sql.DB
}

func (c ActivityCache) SetActivityChecked(ctx context.Context, userID, activityID int64, checked bool) error {
	return SetActivityChecked(ctx, c.DB, userID, activityID, checked)
}

func (c ActivityCache) DeleteActivity(ctx context.Context, userID, activityID int64) error {
	return DeleteActivity(ctx, c.DB, userID, activityID)
}
