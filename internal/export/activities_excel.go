package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/uniagenda/agenda-bot/internal/agenda"
	"github.com/uniagenda/agenda-bot/internal/models"
)

const activitiesSheet = "Atividades"

var activitiesHeader = []string{
	"Atividade", "Disciplina", "Tipo", "% da Nota", "Prazo", "Concluída",
}

// ActivitiesWorkbook renders the user's activity list in list order
// (unchecked first, overdue last) into a single-sheet workbook.
func ActivitiesWorkbook(activities []models.Activity, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", activitiesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range activitiesHeader {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(activitiesSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	for r, a := range agenda.SortedForList(activities, now) {
		subject := ""
		if a.SubjectClass != nil {
			subject = a.SubjectClass.Subject.Name
		}
		done := "não"
		if a.Checked {
			done = "sim"
		}
		row := []string{
			a.Name,
			subject,
			string(a.Type),
			fmt.Sprintf("%d%%", agenda.GradingPercentage(a.Value)),
			a.FinishDate.Format("02/01/2006 15:04"),
			done,
		}
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(activitiesSheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := ApplyDefaultExcelFormatting(f, activitiesSheet); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildActivitiesFilename builds a human-readable download name.
func BuildActivitiesFilename(userName string, now time.Time) string {
	base := fmt.Sprintf("Atividades — %s — %s.xlsx",
		cleanName(userName),
		now.Format("02.01.2006"),
	)
	return sanitizeFileName(base)
}
