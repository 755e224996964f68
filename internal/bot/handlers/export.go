package handlers

import (
	"context"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/export"
	"github.com/uniagenda/agenda-bot/internal/tg"
)

// HandleExport sends the user's activity list as an xlsx document.
func HandleExport(env *Env, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	ctx := ctxutil.WithChatID(context.Background(), msg.Chat.ID)
	user, s, ok := requireSession(ctx, env, bot, msg.Chat.ID)
	if !ok {
		return
	}

	now := s.Now()
	f, err := export.ActivitiesWorkbook(s.Activities(), now)
	if err != nil {
		env.Log.Errorw("build export", "chat_id", msg.Chat.ID, "err", err)
		sendText(env, bot, msg.Chat.ID, "❌ Não consegui gerar a planilha.")
		return
	}
	defer f.Close()

	path := filepath.Join(os.TempDir(), export.BuildActivitiesFilename(user.Name, now))
	if err := f.SaveAs(path); err != nil {
		env.Log.Errorw("save export", "chat_id", msg.Chat.ID, "err", err)
		sendText(env, bot, msg.Chat.ID, "❌ Não consegui gerar a planilha.")
		return
	}
	defer os.Remove(path)

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FilePath(path))
	if _, err := tg.Send(bot, doc); err != nil {
		env.Log.Warnw("send export", "chat_id", msg.Chat.ID, "err", err)
	}
}
