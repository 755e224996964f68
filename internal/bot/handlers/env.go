package handlers

import (
	"context"
	"database/sql"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/uniagenda/agenda-bot/internal/config"
	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/db"
	"github.com/uniagenda/agenda-bot/internal/models"
	"github.com/uniagenda/agenda-bot/internal/notify"
	"github.com/uniagenda/agenda-bot/internal/session"
	"github.com/uniagenda/agenda-bot/internal/tg"
	"github.com/uniagenda/agenda-bot/internal/university"
)

// Env bundles the collaborators every handler needs.
type Env struct {
	DB      *sql.DB
	Cfg     *config.Config
	Uni     *university.Client
	Linkage *notify.Linkage
	Log     *zap.SugaredLogger
}

// loadSession builds the user's session with fresh snapshots from the
// local cache. Collections are replaced wholesale; nothing mutates them
// in place afterwards.
func (e *Env) loadSession(ctx context.Context, user *models.User) (*session.Session, error) {
	token := ""
	if user.Token != nil {
		token = *user.Token
	}
	s := session.New(user.ID, token, e.Cfg.Location, db.ActivityCache{DB: e.DB}, e.Uni, e.Linkage, e.Log)

	dctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	activities, err := db.ListActivities(dctx, e.DB, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	subjects, err := db.ListUserSubjects(dctx, e.DB, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	s.ReplaceActivities(activities)
	s.ReplaceSubjects(subjects)
	return s, nil
}

func sendText(e *Env, bot *tgbotapi.BotAPI, chatID int64, text string) {
	if _, err := tg.Send(bot, tgbotapi.NewMessage(chatID, text)); err != nil {
		e.Log.Warnw("send message", "chat_id", chatID, "err", err)
	}
}
