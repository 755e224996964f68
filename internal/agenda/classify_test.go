package agenda

import (
	"testing"
	"time"

	"github.com/uniagenda/agenda-bot/internal/models"
)

func TestIsFinished(t *testing.T) {
	now := date(2026, time.March, 10, 15)

	if !IsFinished(date(2026, time.March, 9, 23), now) {
		t.Error("yesterday is finished")
	}
	if IsFinished(date(2026, time.March, 10, 0), now) {
		t.Error("due today at midnight is not finished")
	}
	if IsFinished(date(2026, time.March, 10, 8), now) {
		t.Error("due earlier today is not finished")
	}
	if IsFinished(date(2026, time.March, 11, 0), now) {
		t.Error("tomorrow is not finished")
	}
}

func TestGradingPercentage(t *testing.T) {
	cases := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{0.25, 25},
		{0.125, 13}, // half rounds away from zero
		{0.124, 12},
		{1, 100},
	}
	for _, c := range cases {
		if got := GradingPercentage(c.value); got != c.want {
			t.Errorf("GradingPercentage(%v) = %d, want %d", c.value, got, c.want)
		}
		// same input, same output
		if again := GradingPercentage(c.value); again != c.want {
			t.Errorf("GradingPercentage(%v) second call = %d, want %d", c.value, again, c.want)
		}
	}
}

func TestColorForTypeFallback(t *testing.T) {
	if ColorForType(models.ActivityExam) == colorFallback {
		t.Error("known type must not use the fallback color")
	}
	if got := ColorForType(models.ActivityType("quiz")); got != colorFallback {
		t.Errorf("unknown type: got %q, want fallback %q", got, colorFallback)
	}
}

func TestDisplayColor(t *testing.T) {
	now := date(2026, time.March, 10, 12)
	past := date(2026, time.March, 8, 12)
	future := date(2026, time.March, 12, 12)

	cases := []struct {
		name string
		act  models.Activity
		want string
	}{
		{"overdue unchecked", models.Activity{Type: models.ActivityExam, FinishDate: past}, ColorOverdue},
		{"overdue checked", models.Activity{Type: models.ActivityExam, FinishDate: past, Checked: true}, ColorDoneMuted},
		{"upcoming checked", models.Activity{Type: models.ActivityExam, FinishDate: future, Checked: true}, ColorUpcomingMuted},
		{"upcoming unchecked", models.Activity{Type: models.ActivityExam, FinishDate: future}, ColorForType(models.ActivityExam)},
	}
	for _, c := range cases {
		if got := DisplayColor(c.act, now); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}
