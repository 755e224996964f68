package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BotUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot", Name: "updates_total", Help: "Processed telegram updates",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot", Name: "handler_errors_total", Help: "Handler errors",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "agendabot", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
	RemoteSyncFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agendabot", Name: "remote_sync_failures_total",
		Help: "Mutations applied locally whose university sync failed",
	}, []string{"op"})
	RemindersScheduled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot", Name: "reminders_scheduled_total", Help: "Activity reminders scheduled",
	})
	RemindersCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot", Name: "reminders_cancelled_total", Help: "Activity reminders cancelled",
	})
	RemindersFired = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot", Name: "reminders_fired_total", Help: "Activity reminders delivered",
	})
)

func init() {
	prometheus.MustRegister(
		BotUpdates, HandlerErrors, DBPing,
		RemoteSyncFailures, RemindersScheduled, RemindersCancelled, RemindersFired,
	)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
