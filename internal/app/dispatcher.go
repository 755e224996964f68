package app

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/uniagenda/agenda-bot/internal/bot/handlers"
	"github.com/uniagenda/agenda-bot/internal/metrics"
	"github.com/uniagenda/agenda-bot/internal/tg"
)

type Dispatcher struct {
	env     *handlers.Env
	bot     *tgbotapi.BotAPI
	limiter *ChatLimiter
}

func NewDispatcher(env *handlers.Env, bot *tgbotapi.BotAPI) *Dispatcher {
	return &Dispatcher{env: env, bot: bot, limiter: NewChatLimiter()}
}

func (d *Dispatcher) Handle(update tgbotapi.Update) {
	metrics.BotUpdates.Inc()

	if update.CallbackQuery != nil {
		cq := update.CallbackQuery
		if cq.Message == nil {
			return
		}
		unlock := d.limiter.lock(cq.Message.Chat.ID)
		defer unlock()
		if handlers.IsActivityCallback(cq.Data) {
			handlers.HandleActivityCallback(d.env, d.bot, cq)
		}
		return
	}
	if update.Message == nil {
		return
	}

	msg := update.Message
	unlock := d.limiter.lock(msg.Chat.ID)
	defer unlock()

	switch {
	case msg.Text == "/start":
		handlers.HandleStart(d.env, d.bot, msg)
	case strings.HasPrefix(msg.Text, "/token"):
		handlers.HandleToken(d.env, d.bot, msg)
	case msg.Text == "/today":
		handlers.HandleToday(d.env, d.bot, msg)
	case msg.Text == "/week":
		handlers.HandleWeek(d.env, d.bot, msg)
	case msg.Text == "/activities":
		handlers.HandleActivities(d.env, d.bot, msg)
	case strings.HasPrefix(msg.Text, "/newactivity"):
		handlers.HandleNewActivity(d.env, d.bot, msg)
	case msg.Text == "/export":
		handlers.HandleExport(d.env, d.bot, msg)
	default:
		metrics.HandlerErrors.Inc()
		_, _ = tg.Send(d.bot, tgbotapi.NewMessage(msg.Chat.ID, "⚠️ Comando desconhecido. Envie /start para ver a lista."))
	}
}
