package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uniagenda/agenda-bot/internal/models"
)

// UpsertUser registers a telegram chat on first /start and refreshes the
// display name afterwards.
func UpsertUser(ctx context.Context, database *sql.DB, telegramID int64, name string) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO users (telegram_id, name)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, telegramID, name).Scan(&id)
	return id, err
}

func GetUserByTelegramID(ctx context.Context, database *sql.DB, telegramID int64) (*models.User, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, telegram_id, name, token, is_active, created_at
		FROM users WHERE telegram_id = $1`, telegramID)

	var u models.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.Name, &u.Token, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func SetUserToken(ctx context.Context, database *sql.DB, userID int64, token string) error {
	_, err := database.ExecContext(ctx, `UPDATE users SET token = $1 WHERE id = $2`, token, userID)
	return err
}
