package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/uniagenda/agenda-bot/internal/db"
	"github.com/uniagenda/agenda-bot/internal/metrics"
	"github.com/uniagenda/agenda-bot/internal/notify"
	"github.com/uniagenda/agenda-bot/internal/tg"
)

const reminderBatch = 100

// StartReminderLoop delivers due activity reminders once a minute. A
// delivered reminder's row and linkage entry are cleared, moving the
// activity back to the no-reminder state.
func StartReminderLoop(r *Runner, bot *tgbotapi.BotAPI, database *sql.DB, linkage *notify.Linkage, log *zap.SugaredLogger) {
	r.Every(time.Minute, "reminders", func(ctx context.Context) error {
		return deliverDue(ctx, bot, database, linkage, log)
	})
}

func deliverDue(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, linkage *notify.Linkage, log *zap.SugaredLogger) error {
	due, err := db.DueReminders(ctx, database, time.Now(), reminderBatch)
	if err != nil {
		return err
	}
	for _, rem := range due {
		text := fmt.Sprintf("⏰ Lembrete: «%s» vence em breve!", rem.ActivityName)
		if _, err := tg.Send(bot, tgbotapi.NewMessage(rem.ChatID, text)); err != nil {
			log.Warnw("deliver reminder", "identifier", rem.Identifier, "err", err)
			continue // retried next tick
		}
		if err := db.DeleteScheduled(ctx, database, rem.Identifier); err != nil {
			log.Warnw("clear delivered reminder", "identifier", rem.Identifier, "err", err)
			continue
		}
		linkage.ClearFired(ctx, rem.ActivityID)
		metrics.RemindersFired.Inc()
	}
	return nil
}
