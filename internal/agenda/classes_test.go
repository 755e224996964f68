package agenda

import (
	"testing"
	"time"

	"github.com/uniagenda/agenda-bot/internal/models"
)

func subject(name string, days ...models.AvailableDay) models.UserSubject {
	return models.UserSubject{
		SubjectClass: models.SubjectClass{
			Subject:       models.Subject{Name: name, Code: name},
			AvailableDays: days,
		},
	}
}

func TestClassesToday(t *testing.T) {
	now := date(2026, time.March, 9, 8) // Monday -> "seg"

	subjects := []models.UserSubject{
		subject("calc", models.AvailableDay{Day: "seg", Start: "14:00", End: "16:00"}),
		subject("phys", models.AvailableDay{Day: "ter", Start: "08:00", End: "10:00"}),
		subject("prog", models.AvailableDay{Day: "seg", Start: "08:00", End: "10:00"}),
	}

	got := ClassesToday(subjects, now)
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
	if got[0].Subject.SubjectClass.Subject.Name != "prog" || got[1].Subject.SubjectClass.Subject.Name != "calc" {
		t.Errorf("want [prog calc] by start hour, got [%s %s]",
			got[0].Subject.SubjectClass.Subject.Name, got[1].Subject.SubjectClass.Subject.Name)
	}
}

func TestClassesTodayDuplicateEntries(t *testing.T) {
	now := date(2026, time.March, 9, 8)

	// two sessions on the same weekday yield two occurrences
	s := subject("lab",
		models.AvailableDay{Day: "seg", Start: "08:00", End: "10:00"},
		models.AvailableDay{Day: "seg", Start: "14:00", End: "16:00"},
	)
	got := ClassesToday([]models.UserSubject{s}, now)
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
	if got[0].Day.Start != "08:00" || got[1].Day.Start != "14:00" {
		t.Errorf("occurrences out of order: %q, %q", got[0].Day.Start, got[1].Day.Start)
	}
}

func TestClassesTodayUnparseableStart(t *testing.T) {
	now := date(2026, time.March, 9, 8)

	subjects := []models.UserSubject{
		subject("calc", models.AvailableDay{Day: "seg", Start: "10:00", End: "12:00"}),
		subject("mist", models.AvailableDay{Day: "seg", Start: "morning", End: ""}),
	}
	got := ClassesToday(subjects, now)
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
	// unparseable start sorts first with hour 0
	if got[0].Subject.SubjectClass.Subject.Name != "mist" {
		t.Errorf("unparseable start must sort first, got %q", got[0].Subject.SubjectClass.Subject.Name)
	}
}

func TestLeadingHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"08:00", 8},
		{"8h30", 8},
		{"14:00", 14},
		{"", 0},
		{"morning", 0},
		{"99:00", 24},
		{"99999999999999999999999999:00", 24}, // must not overflow
	}
	for _, c := range cases {
		if got := leadingHour(c.in); got != c.want {
			t.Errorf("leadingHour(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
