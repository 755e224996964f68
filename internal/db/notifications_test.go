//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uniagenda/agenda-bot/internal/db"
	"github.com/uniagenda/agenda-bot/internal/notify"
	"github.com/uniagenda/agenda-bot/internal/testutil/testdb"
)

func TestLinkStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	store := db.LinkStore{DB: h.DB}

	if _, ok, err := store.Get(ctx, "activity-notification-1"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "activity-notification-1", "abc"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "activity-notification-1", "def"); err != nil {
		t.Fatal(err) // upsert
	}
	v, ok, err := store.Get(ctx, "activity-notification-1")
	if err != nil || !ok || v != "def" {
		t.Fatalf("got %q/%v/%v, want def", v, ok, err)
	}
	if err := store.Delete(ctx, "activity-notification-1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "activity-notification-1"); ok {
		t.Error("entry survived delete")
	}
}

func TestReminderScheduler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	sched := db.ReminderScheduler{DB: h.DB}
	now := time.Now().UTC()

	if err := sched.Schedule(ctx, notify.Reminder{
		Identifier: "r1", ChatID: 42, ActivityID: 7, ActivityName: "P1",
		FireAt: now.Add(-time.Minute),
	}); err != nil {
		t.Fatal(err)
	}
	if err := sched.Schedule(ctx, notify.Reminder{
		Identifier: "r2", ChatID: 42, ActivityID: 8, ActivityName: "P2",
		FireAt: now.Add(time.Hour),
	}); err != nil {
		t.Fatal(err)
	}

	due, err := db.DueReminders(ctx, h.DB, now, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 1 || due[0].Identifier != "r1" {
		t.Fatalf("due: %v, want [r1]", due)
	}

	if err := sched.CancelScheduled(ctx, "r1"); err != nil {
		t.Fatal(err)
	}
	if err := sched.CancelScheduled(ctx, "r1"); !errors.Is(err, notify.ErrNotFound) {
		t.Errorf("second cancel: got %v, want ErrNotFound", err)
	}
}
