package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/db"
	"github.com/uniagenda/agenda-bot/internal/models"
)

const newActivityUsage = `Use: /newactivity nome | tipo | peso | prazo
Exemplo: /newactivity P1 | exam | 0.4 | 20/03 18:00
Tipos: exam, assignment, project, exercise, presentation`

// HandleNewActivity creates an activity from a pipe-separated one-liner
// and schedules its reminder. New activities start unchecked.
func HandleNewActivity(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	ctx := ctxutil.WithChatID(context.Background(), msg.Chat.ID)
	user, s, ok := requireSession(ctx, env, bot, msg.Chat.ID)
	if !ok {
		return
	}
	now := s.Now()

	a, err := parseNewActivity(strings.TrimPrefix(msg.Text, "/newactivity"), now)
	if err != nil {
		sendText(env, bot, msg.Chat.ID, newActivityUsage)
		return
	}

	dctx, cancel := ctxutil.WithDBTimeout(ctx)
	id, err := db.CreateActivity(dctx, env.DB, user.ID, nil, a)
	cancel()
	if err != nil {
		env.Log.Errorw("create activity", "chat_id", msg.Chat.ID, "err", err)
		sendText(env, bot, msg.Chat.ID, "❌ Não consegui salvar a atividade.")
		return
	}
	a.ID = id

	if _, err := env.Linkage.ScheduleReminder(ctx, a, msg.Chat.ID, now); err != nil {
		// the activity exists either way; the reminder is best effort
		env.Log.Warnw("schedule reminder", "activity_id", id, "err", err)
	}

	sendText(env, bot, msg.Chat.ID, fmt.Sprintf("✅ «%s» criada para %s.", a.Name, a.FinishDate.Format("02/01 15:04")))
}

// parseNewActivity reads "nome | tipo | peso | prazo". The deadline is
// "dd/mm hh:mm" in the session location; it lands in the current year,
// or the next one when that day has already passed (a December /newactivity
// for a January deadline points forward, not a year back).
func parseNewActivity(text string, now time.Time) (models.Activity, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 4 {
		return models.Activity{}, fmt.Errorf("want 4 fields, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return models.Activity{}, fmt.Errorf("empty name")
	}

	value, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || value < 0 || value > 1 {
		return models.Activity{}, fmt.Errorf("weight %q not in [0,1]", parts[2])
	}

	finish, err := time.ParseInLocation("02/01 15:04", parts[3], now.Location())
	if err != nil {
		return models.Activity{}, fmt.Errorf("deadline: %w", err)
	}
	finish = finish.AddDate(now.Year(), 0, 0)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if finish.Before(startOfToday) {
		finish = finish.AddDate(1, 0, 0)
	}

	return models.Activity{
		Name:       parts[0],
		Type:       models.ActivityType(parts[1]),
		Value:      value,
		FinishDate: finish,
	}, nil
}
