package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/db"
)

const helpText = `O que eu sei fazer:
/today — aulas e atividades de hoje
/week — atividades da semana
/activities — todas as atividades
/newactivity — criar uma atividade
/export — planilha com as atividades
/token <token> — conectar sua conta da universidade`

func HandleStart(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	ctx, cancel := ctxutil.WithDBTimeout(context.Background())
	defer cancel()

	name := strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
	if _, err := db.UpsertUser(ctx, env.DB, msg.Chat.ID, name); err != nil {
		env.Log.Errorw("register user", "chat_id", msg.Chat.ID, "err", err)
		sendText(env, bot, msg.Chat.ID, "❌ Não consegui te registrar, tente de novo.")
		return
	}
	sendText(env, bot, msg.Chat.ID, "Olá, "+msg.From.FirstName+"! 👋\n\n"+helpText)
}

// HandleToken stores the university API token sent as "/token <value>".
func HandleToken(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)
	if len(parts) != 2 {
		sendText(env, bot, msg.Chat.ID, "Use: /token <token da universidade>")
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(context.Background())
	defer cancel()

	user, err := db.GetUserByTelegramID(ctx, env.DB, msg.Chat.ID)
	if err != nil || user == nil {
		sendText(env, bot, msg.Chat.ID, "⚠️ Você ainda não está registrado. Envie /start primeiro.")
		return
	}
	if err := db.SetUserToken(ctx, env.DB, user.ID, parts[1]); err != nil {
		env.Log.Errorw("store token", "user_id", user.ID, "err", err)
		sendText(env, bot, msg.Chat.ID, "❌ Não consegui salvar o token.")
		return
	}
	sendText(env, bot, msg.Chat.ID, "✅ Token salvo. Suas mudanças serão sincronizadas com a universidade.")
}
