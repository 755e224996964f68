// Package session owns one user's in-memory snapshot of activities and
// subjects. Aggregations read the snapshot; mutations funnel through
// Check/Uncheck/Remove, which apply locally first and then sync to the
// university in the background of the user's perception: a failed sync
// is reported, logged and counted but never rolled back.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/uniagenda/agenda-bot/internal/ctxutil"
	"github.com/uniagenda/agenda-bot/internal/metrics"
	"github.com/uniagenda/agenda-bot/internal/models"
	"github.com/uniagenda/agenda-bot/internal/observability"
)

// SyncStatus reports how a mutation landed.
type SyncStatus int

const (
	// Applied: local and remote both updated.
	Applied SyncStatus = iota
	// AppliedPendingSync: local updated, remote sync failed. The local
	// view stands; Err carries the sync failure.
	AppliedPendingSync
	// Failed: nothing was applied (unknown activity).
	Failed
)

type Result struct {
	Status SyncStatus
	Err    error
}

// Remote is the university mutation surface (see internal/university).
type Remote interface {
	RemoveActivity(ctx context.Context, id, token string) error
	CheckActivity(ctx context.Context, id, token string) error
	UncheckActivity(ctx context.Context, id, token string) error
}

// Cache persists the local copy of the user's activities.
type Cache interface {
	SetActivityChecked(ctx context.Context, userID, activityID int64, checked bool) error
	DeleteActivity(ctx context.Context, userID, activityID int64) error
}

// ReminderCanceller releases a pending reminder on removal.
type ReminderCanceller interface {
	CancelReminder(ctx context.Context, activityID int64) error
}

type Session struct {
	userID int64
	token  string
	loc    *time.Location

	activities []models.Activity
	subjects   []models.UserSubject

	cache     Cache
	remote    Remote
	reminders ReminderCanceller
	log       *zap.SugaredLogger
}

func New(userID int64, token string, loc *time.Location, cache Cache, remote Remote, reminders ReminderCanceller, log *zap.SugaredLogger) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		userID:    userID,
		token:     token,
		loc:       loc,
		cache:     cache,
		remote:    remote,
		reminders: reminders,
		log:       log,
	}
}

// Now is the single "now" a handler should evaluate per update.
func (s *Session) Now() time.Time { return time.Now().In(s.loc) }

// Activities returns a copy of the snapshot; callers may reorder freely.
func (s *Session) Activities() []models.Activity {
	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *Session) Subjects() []models.UserSubject {
	out := make([]models.UserSubject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// ReplaceActivities swaps the snapshot wholesale. It and
// ReplaceSubjects are the only collection setters. Deadlines are
// normalized into the session location: timestamptz values scanned from
// the cache arrive in time.Local, which may not match the configured
// zone, and day-boundary math must agree with Now().
func (s *Session) ReplaceActivities(as []models.Activity) {
	for i := range as {
		as[i].FinishDate = as[i].FinishDate.In(s.loc)
	}
	s.activities = as
}

func (s *Session) ReplaceSubjects(us []models.UserSubject) { s.subjects = us }

// Activity looks an activity up by id in the current snapshot.
func (s *Session) Activity(id int64) (models.Activity, bool) {
	for _, a := range s.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

func (s *Session) Check(ctx context.Context, activityID int64) Result {
	return s.setChecked(ctx, activityID, true)
}

func (s *Session) Uncheck(ctx context.Context, activityID int64) Result {
	return s.setChecked(ctx, activityID, false)
}

func (s *Session) setChecked(ctx context.Context, activityID int64, checked bool) Result {
	op := "check"
	if !checked {
		op = "uncheck"
	}
	idx := s.indexOf(activityID)
	if idx < 0 {
		return Result{Status: Failed, Err: fmt.Errorf("activity %d not in session", activityID)}
	}

	// optimistic local apply: replace the whole collection
	next := s.Activities()
	next[idx].Checked = checked
	s.activities = next
	s.persistChecked(ctx, activityID, checked)

	rctx, cancel := ctxutil.WithRemoteTimeout(ctxutil.WithOp(ctx, op))
	defer cancel()
	var err error
	if checked {
		err = s.remote.CheckActivity(rctx, strconv.FormatInt(activityID, 10), s.token)
	} else {
		err = s.remote.UncheckActivity(rctx, strconv.FormatInt(activityID, 10), s.token)
	}
	if err != nil {
		return s.pendingSync(op, activityID, err)
	}
	return Result{Status: Applied}
}

// Remove drops the activity locally, syncs the removal and releases any
// pending reminder. Neither a failed sync nor a failed reminder
// cancellation reverts the removal.
func (s *Session) Remove(ctx context.Context, activityID int64) Result {
	idx := s.indexOf(activityID)
	if idx < 0 {
		return Result{Status: Failed, Err: fmt.Errorf("activity %d not in session", activityID)}
	}

	next := make([]models.Activity, 0, len(s.activities)-1)
	for _, a := range s.activities {
		if a.ID != activityID {
			next = append(next, a)
		}
	}
	s.activities = next

	dctx, cancel := ctxutil.WithDBTimeout(ctx)
	if err := s.cache.DeleteActivity(dctx, s.userID, activityID); err != nil {
		s.log.Warnw("delete cached activity", "activity_id", activityID, "err", err)
	}
	cancel()

	nctx, ncancel := ctxutil.WithDBTimeout(ctx)
	if err := s.reminders.CancelReminder(nctx, activityID); err != nil {
		// fire-and-forget: the removal already succeeded for the user
		s.log.Warnw("cancel reminder", "activity_id", activityID, "err", err)
		observability.CaptureErr(err)
	}
	ncancel()

	rctx, rcancel := ctxutil.WithRemoteTimeout(ctxutil.WithOp(ctx, "remove"))
	defer rcancel()
	if err := s.remote.RemoveActivity(rctx, strconv.FormatInt(activityID, 10), s.token); err != nil {
		return s.pendingSync("remove", activityID, err)
	}
	return Result{Status: Applied}
}

func (s *Session) indexOf(activityID int64) int {
	for i, a := range s.activities {
		if a.ID == activityID {
			return i
		}
	}
	return -1
}

func (s *Session) persistChecked(ctx context.Context, activityID int64, checked bool) {
	dctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if err := s.cache.SetActivityChecked(dctx, s.userID, activityID, checked); err != nil {
		s.log.Warnw("persist checked flag", "activity_id", activityID, "err", err)
	}
}

func (s *Session) pendingSync(op string, activityID int64, err error) Result {
	s.log.Warnw("university sync failed, local state kept",
		"op", op, "activity_id", activityID, "err", err)
	metrics.RemoteSyncFailures.WithLabelValues(op).Inc()
	observability.CaptureErr(err)
	return Result{Status: AppliedPendingSync, Err: err}
}
