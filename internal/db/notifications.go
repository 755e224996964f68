package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uniagenda/agenda-bot/internal/notify"
)

// LinkStore backs the notification linkage key-value contract with the
// notification_links table.
type LinkStore struct {
	DB *sql.DB
}

func (s LinkStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.DB.QueryRowContext(ctx,
		`SELECT identifier FROM notification_links WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s LinkStore) Set(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO notification_links (key, identifier)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET identifier = EXCLUDED.identifier`, key, value)
	return err
}

func (s LinkStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM notification_links WHERE key = $1`, key)
	return err
}

// ReminderScheduler implements notify.Scheduler on the
// scheduled_notifications table; the jobs runner delivers due rows.
type ReminderScheduler struct {
	DB *sql.DB
}

func (s ReminderScheduler) Schedule(ctx context.Context, r notify.Reminder) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO scheduled_notifications (identifier, chat_id, activity_id, activity_name, fire_at)
		VALUES ($1, $2, $3, $4, $5)`,
		r.Identifier, r.ChatID, r.ActivityID, r.ActivityName, r.FireAt)
	return err
}

func (s ReminderScheduler) CancelScheduled(ctx context.Context, identifier string) error {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM scheduled_notifications WHERE identifier = $1`, identifier)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notify.ErrNotFound
	}
	return nil
}

// DueReminders returns pending reminders whose fire time has passed.
func DueReminders(ctx context.Context, database *sql.DB, now time.Time, limit int) ([]notify.Reminder, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT identifier, chat_id, activity_id, activity_name, fire_at
		FROM scheduled_notifications
		WHERE fire_at <= $1
		ORDER BY fire_at
		LIMIT $2`, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []notify.Reminder
	for rows.Next() {
		var r notify.Reminder
		if err := rows.Scan(&r.Identifier, &r.ChatID, &r.ActivityID, &r.ActivityName, &r.FireAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// DeleteScheduled removes a delivered reminder row.
func DeleteScheduled(ctx context.Context, database *sql.DB, identifier string) error {
	_, err := database.ExecContext(ctx,
		`DELETE FROM scheduled_notifications WHERE identifier = $1`, identifier)
	return err
}
