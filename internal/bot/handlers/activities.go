package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/uniagenda/agenda-bot/internal/agenda"
	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/session"
	"github.com/uniagenda/agenda-bot/internal/tg"
)

// Callback data prefixes for the activity list buttons.
const (
	cbCheck   = "act_check_"
	cbUncheck = "act_uncheck_"
	cbRemove  = "act_remove_"
)

// HandleActivities renders the full prioritized list with one button
// row per activity (toggle + remove).
func HandleActivities(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	ctx := ctxutil.WithChatID(context.Background(), msg.Chat.ID)
	_, s, ok := requireSession(ctx, env, bot, msg.Chat.ID)
	if !ok {
		return
	}

	now := s.Now()
	activities := s.Activities()
	remaining := agenda.RemainingCount(activities, now)

	plural := "s"
	if remaining == 1 {
		plural = ""
	}
	header := fmt.Sprintf("%d atividade%s restante%s!", remaining, plural, plural)
	sendText(env, bot, msg.Chat.ID, header)

	for _, a := range agenda.SortedForList(activities, now) {
		toggle := tgbotapi.NewInlineKeyboardButtonData("✅ Concluir", cbCheck+strconv.FormatInt(a.ID, 10))
		if a.Checked {
			toggle = tgbotapi.NewInlineKeyboardButtonData("↩️ Reabrir", cbUncheck+strconv.FormatInt(a.ID, 10))
		}
		out := tgbotapi.NewMessage(msg.Chat.ID, activityLine(a, now))
		out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				toggle,
				tgbotapi.NewInlineKeyboardButtonData("🗑 Remover", cbRemove+strconv.FormatInt(a.ID, 10)),
			),
		)
		if _, err := tg.Send(bot, out); err != nil {
			env.Log.Warnw("send activity card", "chat_id", msg.Chat.ID, "err", err)
			return
		}
	}
}

// IsActivityCallback tells the dispatcher this callback belongs here.
func IsActivityCallback(data string) bool {
	return strings.HasPrefix(data, cbCheck) ||
		strings.HasPrefix(data, cbUncheck) ||
		strings.HasPrefix(data, cbRemove)
}

// HandleActivityCallback applies a check/uncheck/remove button press.
// The local change always lands; a failed university sync degrades the
// answer text instead of blocking it.
func HandleActivityCallback(env *Env, bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	ctx := ctxutil.WithChatID(context.Background(), chatID)

	_, s, ok := requireSession(ctx, env, bot, chatID)
	if !ok {
		return
	}

	var op string
	var id int64
	var err error
	switch {
	case strings.HasPrefix(cq.Data, cbCheck):
		op = "check"
		id, err = strconv.ParseInt(strings.TrimPrefix(cq.Data, cbCheck), 10, 64)
	case strings.HasPrefix(cq.Data, cbUncheck):
		op = "uncheck"
		id, err = strconv.ParseInt(strings.TrimPrefix(cq.Data, cbUncheck), 10, 64)
	case strings.HasPrefix(cq.Data, cbRemove):
		op = "remove"
		id, err = strconv.ParseInt(strings.TrimPrefix(cq.Data, cbRemove), 10, 64)
	default:
		return
	}
	if err != nil {
		answer(env, bot, cq.ID, "Botão inválido.")
		return
	}

	var res session.Result
	switch op {
	case "check":
		res = s.Check(ctx, id)
	case "uncheck":
		res = s.Uncheck(ctx, id)
	case "remove":
		res = s.Remove(ctx, id)
	}

	switch res.Status {
	case session.Applied:
		answer(env, bot, cq.ID, "Feito! ✅")
	case session.AppliedPendingSync:
		answer(env, bot, cq.ID, "Feito aqui — a universidade será sincronizada depois.")
	case session.Failed:
		answer(env, bot, cq.ID, "Atividade não encontrada, atualize com /activities.")
	}

	// the old card is stale either way; drop its buttons
	if res.Status != session.Failed {
		edit := tgbotapi.NewEditMessageReplyMarkup(chatID, cq.Message.MessageID,
			tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
		if _, err := tg.Request(bot, edit); err != nil {
			env.Log.Debugw("edit stale card", "chat_id", chatID, "err", err)
		}
	}
}

func answer(env *Env, bot *tgbotapi.BotAPI, callbackID, text string) {
	if _, err := tg.Request(bot, tgbotapi.NewCallback(callbackID, text)); err != nil {
		env.Log.Debugw("answer callback", "err", err)
	}
}
