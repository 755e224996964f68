package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/uniagenda/agenda-bot/internal/agenda"
	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/db"
	"github.com/uniagenda/agenda-bot/internal/models"
	"github.com/uniagenda/agenda-bot/internal/session"
	"github.com/uniagenda/agenda-bot/internal/tg"
)

// HandleToday mirrors the old home screen: greeting, semester progress,
// today's activities and today's classes in start order.
func HandleToday(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	ctx := ctxutil.WithChatID(context.Background(), msg.Chat.ID)
	user, s, ok := requireSession(ctx, env, bot, msg.Chat.ID)
	if !ok {
		return
	}

	now := s.Now()
	wd := agenda.CurrentWeekDay(now)
	progress := agenda.SemesterProgressPercent(now, env.Cfg.SemesterStart, env.Cfg.SemesterEnd)

	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s! Outra %s na universidade.\n", firstName(user), wd.Full)
	fmt.Fprintf(&b, "%d%% do semestre concluído. Vamos lá!\n\n", progress)

	b.WriteString("📌 Atividades de hoje:\n")
	todays := agenda.DueToday(s.Activities(), now)
	if len(todays) == 0 {
		b.WriteString("Sem atividades para hoje.\n")
	}
	for _, a := range todays {
		b.WriteString(activityLine(a, now) + "\n")
	}

	b.WriteString("\n🏫 Aulas de hoje:\n")
	classes := agenda.ClassesToday(s.Subjects(), now)
	if len(classes) == 0 {
		b.WriteString("Sem aulas hoje >:)\n")
	}
	for _, occ := range classes {
		b.WriteString(classLine(occ) + "\n")
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, b.String())
	if kb := subjectLinkKeyboard(env, classes); kb != nil {
		out.ReplyMarkup = kb
	}
	if _, err := tg.Send(bot, out); err != nil {
		env.Log.Warnw("send today", "chat_id", msg.Chat.ID, "err", err)
	}
}

// HandleWeek lists this week's activities, soonest first.
func HandleWeek(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	ctx := ctxutil.WithChatID(context.Background(), msg.Chat.ID)
	_, s, ok := requireSession(ctx, env, bot, msg.Chat.ID)
	if !ok {
		return
	}

	now := s.Now()
	week := agenda.DueThisWeek(s.Activities(), now)
	if len(week) == 0 {
		sendText(env, bot, msg.Chat.ID, "Sem atividades para essa semana.")
		return
	}

	var b strings.Builder
	b.WriteString("🗓 Atividades da semana:\n")
	for _, a := range week {
		b.WriteString(activityLine(a, now) + "\n")
	}
	sendText(env, bot, msg.Chat.ID, b.String())
}

// subjectLinkKeyboard adds one URL button per distinct subject code so
// the user can open the university's subject page.
func subjectLinkKeyboard(env *Env, classes []agenda.ClassOccurrence) *tgbotapi.InlineKeyboardMarkup {
	seen := map[string]bool{}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, occ := range classes {
		code := occ.Subject.SubjectClass.Subject.Code
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(
				occ.Subject.SubjectClass.Subject.Name,
				env.Uni.SubjectPageURL(code),
			),
		))
	}
	if len(rows) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func requireSession(ctx context.Context, env *Env, bot *tgbotapi.BotAPI, chatID int64) (*models.User, *session.Session, bool) {
	dctx, cancel := ctxutil.WithDBTimeout(ctx)
	user, err := db.GetUserByTelegramID(dctx, env.DB, chatID)
	cancel()
	if err != nil || user == nil {
		sendText(env, bot, chatID, "⚠️ Você ainda não está registrado. Envie /start primeiro.")
		return nil, nil, false
	}
	s, err := env.loadSession(ctx, user)
	if err != nil {
		env.Log.Errorw("load session", "chat_id", chatID, "err", err)
		sendText(env, bot, chatID, "❌ Não consegui carregar seus dados.")
		return nil, nil, false
	}
	return user, s, true
}

func firstName(u *models.User) string {
	if i := strings.IndexByte(u.Name, ' '); i > 0 {
		return u.Name[:i]
	}
	return u.Name
}
