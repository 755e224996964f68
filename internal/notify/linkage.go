// Package notify owns the mapping from an activity to its scheduled
// reminder. An entry exists only while the reminder is pending; absence
// means nothing is scheduled or it already fired/was cancelled.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uniagenda/agenda-bot/internal/metrics"
	"github.com/uniagenda/agenda-bot/internal/models"
)

// ErrNotFound is returned by a Scheduler when the identifier has no
// pending reminder (already fired or never scheduled).
var ErrNotFound = errors.New("notify: scheduled reminder not found")

// Store is the key-value contract for linkage entries.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Reminder is one pending delivery tracked by the Scheduler.
type Reminder struct {
	Identifier   string
	ChatID       int64
	ActivityID   int64
	ActivityName string
	FireAt       time.Time
}

// Scheduler is the external delivery collaborator.
type Scheduler interface {
	Schedule(ctx context.Context, r Reminder) error
	CancelScheduled(ctx context.Context, identifier string) error
}

type Linkage struct {
	store Store
	sched Scheduler
	log   *zap.SugaredLogger
}

func NewLinkage(store Store, sched Scheduler, log *zap.SugaredLogger) *Linkage {
	return &Linkage{store: store, sched: sched, log: log}
}

func linkKey(activityID int64) string {
	return fmt.Sprintf("activity-notification-%d", activityID)
}

// LeadTime is how long before the deadline a reminder fires.
const LeadTime = 24 * time.Hour

// ScheduleReminder registers a reminder for the activity and records the
// linkage entry. Deadlines closer than LeadTime get no reminder; the
// returned identifier is empty in that case.
func (l *Linkage) ScheduleReminder(ctx context.Context, a models.Activity, chatID int64, now time.Time) (string, error) {
	fireAt := a.FinishDate.Add(-LeadTime)
	if !fireAt.After(now) {
		return "", nil
	}
	id := uuid.NewString()
	r := Reminder{
		Identifier:   id,
		ChatID:       chatID,
		ActivityID:   a.ID,
		ActivityName: a.Name,
		FireAt:       fireAt,
	}
	if err := l.sched.Schedule(ctx, r); err != nil {
		return "", err
	}
	if err := l.store.Set(ctx, linkKey(a.ID), id); err != nil {
		// reminder exists but the linkage entry does not: undo so removal
		// semantics stay consistent
		_ = l.sched.CancelScheduled(ctx, id)
		return "", err
	}
	metrics.RemindersScheduled.Inc()
	return id, nil
}

// CancelReminder cancels the pending reminder for the activity, if any,
// and clears the linkage entry. A missing entry is a no-op. The
// scheduler not knowing the identifier anymore (already fired) still
// clears the entry.
func (l *Linkage) CancelReminder(ctx context.Context, activityID int64) error {
	key := linkKey(activityID)
	id, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := l.sched.CancelScheduled(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := l.store.Delete(ctx, key); err != nil {
		return err
	}
	metrics.RemindersCancelled.Inc()
	return nil
}

// ClearFired drops the linkage entry after the scheduler delivered the
// reminder (the fire edge of the lifecycle).
func (l *Linkage) ClearFired(ctx context.Context, activityID int64) {
	if err := l.store.Delete(ctx, linkKey(activityID)); err != nil {
		l.log.Warnw("clear fired reminder linkage", "activity_id", activityID, "err", err)
	}
}
