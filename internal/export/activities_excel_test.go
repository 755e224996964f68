package export

import (
	"testing"
	"time"

	"github.com/uniagenda/agenda-bot/internal/models"
)

func TestActivitiesWorkbook(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	subject := &models.SubjectClass{Subject: models.Subject{Name: "Cálculo I"}}

	activities := []models.Activity{
		{ID: 1, Name: "Lista 3", Type: models.ActivityExercise, Value: 0.1,
			FinishDate: now.Add(24 * time.Hour), SubjectClass: subject},
		{ID: 2, Name: "P1", Type: models.ActivityExam, Value: 0.4,
			FinishDate: now.Add(48 * time.Hour), Checked: true, SubjectClass: subject},
	}

	f, err := ActivitiesWorkbook(activities, now)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	hdr, _ := f.GetCellValue("Atividades", "A1")
	if hdr != "Atividade" {
		t.Errorf("A1 = %q, want Atividade", hdr)
	}
	// unchecked activity sorts first
	name, _ := f.GetCellValue("Atividades", "A2")
	if name != "Lista 3" {
		t.Errorf("A2 = %q, want Lista 3", name)
	}
	pct, _ := f.GetCellValue("Atividades", "D2")
	if pct != "10%" {
		t.Errorf("D2 = %q, want 10%%", pct)
	}
	done, _ := f.GetCellValue("Atividades", "F3")
	if done != "sim" {
		t.Errorf("F3 = %q, want sim", done)
	}
}

func TestBuildActivitiesFilename(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	got := BuildActivitiesFilename("Ana / Souza", now)
	want := "Atividades — Ana _ Souza — 10.03.2026.xlsx"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
