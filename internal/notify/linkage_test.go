package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/uniagenda/agenda-bot/internal/models"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore { return &fakeStore{data: map[string]string{}} }

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type fakeScheduler struct {
	scheduled []Reminder
	cancelled []string
	cancelErr error
}

func (f *fakeScheduler) Schedule(_ context.Context, r Reminder) error {
	f.scheduled = append(f.scheduled, r)
	return nil
}

func (f *fakeScheduler) CancelScheduled(_ context.Context, id string) error {
	f.cancelled = append(f.cancelled, id)
	return f.cancelErr
}

func newLinkage(store Store, sched Scheduler) *Linkage {
	return NewLinkage(store, sched, zap.NewNop().Sugar())
}

func TestCancelReminderPending(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sched := &fakeScheduler{}
	store.data["activity-notification-7"] = "abc"

	l := newLinkage(store, sched)
	if err := l.CancelReminder(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if len(sched.cancelled) != 1 || sched.cancelled[0] != "abc" {
		t.Fatalf("want exactly one cancellation of %q, got %v", "abc", sched.cancelled)
	}
	if _, ok := store.data["activity-notification-7"]; ok {
		t.Error("linkage entry must be gone after cancel")
	}
}

func TestCancelReminderAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sched := &fakeScheduler{}

	l := newLinkage(store, sched)
	if err := l.CancelReminder(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if len(sched.cancelled) != 0 {
		t.Fatalf("no-op must not reach the scheduler, got %v", sched.cancelled)
	}
}

func TestCancelReminderToleratesAlreadyFired(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sched := &fakeScheduler{cancelErr: ErrNotFound}
	store.data["activity-notification-7"] = "abc"

	l := newLinkage(store, sched)
	if err := l.CancelReminder(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.data["activity-notification-7"]; ok {
		t.Error("entry must be cleared even when the scheduler reports not found")
	}
}

func TestCancelReminderSurfacesSchedulerFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sched := &fakeScheduler{cancelErr: errors.New("boom")}
	store.data["activity-notification-7"] = "abc"

	l := newLinkage(store, sched)
	if err := l.CancelReminder(ctx, 7); err == nil {
		t.Fatal("want error from scheduler failure")
	}
	if _, ok := store.data["activity-notification-7"]; !ok {
		t.Error("entry must survive a failed cancellation")
	}
}

func TestScheduleReminder(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sched := &fakeScheduler{}
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	l := newLinkage(store, sched)
	a := models.Activity{ID: 3, Name: "P1", FinishDate: now.Add(72 * time.Hour)}
	id, err := l.ScheduleReminder(ctx, a, 42, now)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("want an identifier for a reminder far enough out")
	}
	if got, ok := store.data["activity-notification-3"]; !ok || got != id {
		t.Errorf("linkage entry = %q/%v, want %q", got, ok, id)
	}
	if len(sched.scheduled) != 1 || !sched.scheduled[0].FireAt.Equal(a.FinishDate.Add(-LeadTime)) {
		t.Errorf("scheduled %v, want one reminder at deadline-24h", sched.scheduled)
	}

	// deadline too close: nothing scheduled
	soon := models.Activity{ID: 4, Name: "P2", FinishDate: now.Add(time.Hour)}
	id, err = l.ScheduleReminder(ctx, soon, 42, now)
	if err != nil || id != "" {
		t.Errorf("close deadline: got (%q, %v), want no reminder", id, err)
	}
}
