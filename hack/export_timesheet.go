// Usage: AGENCYOS_CONFIG_PATH=${PWD}/etc/debug-config.yaml go run hack/export_timesheet.go [from] [to]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// timesheetRow is a closed time entry with the names it refers to.
type timesheetRow struct {
	model.TimeEntry
	UserName    string
	TaskTitle   string
	ProjectName string
}

func main() {
	db := query.GetDB()

	q := db.Table("time_entries AS e").
		Select("e.*, p.name AS user_name, t.title AS task_title, pr.name AS project_name").
		Joins("LEFT JOIN profiles p ON p.id = e.user_id").
		Joins("LEFT JOIN tasks t ON t.id = e.task_id").
		Joins("LEFT JOIN projects pr ON pr.id = e.project_id").
		Where("e.ended_at IS NOT NULL AND e.deleted_at IS NULL")
	if len(os.Args) > 1 {
		if from := viewmodel.ParseDate(os.Args[1]); from != nil {
			q = q.Where("e.started_at >= ?", *from)
		}
	}
	if len(os.Args) > 2 {
		if to := viewmodel.ParseDate(os.Args[2]); to != nil {
			q = q.Where("e.started_at < ?", to.AddDate(0, 0, 1))
		}
	}

	var rows []timesheetRow
	if err := q.Order("e.started_at").Scan(&rows).Error; err != nil {
		panic(fmt.Errorf("failed to fetch time entries: %w", err))
	}

	file, err := os.Create("timesheet_export.csv")
	if err != nil {
		panic(fmt.Errorf("failed to create CSV file: %w", err))
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"EntryID", "UserID", "UserName", "Kind", "ProjectID", "ProjectName",
		"TaskID", "TaskTitle", "StartedAt", "EndedAt", "Hours", "Note",
	}
	if err := writer.Write(headers); err != nil {
		panic(fmt.Errorf("failed to write CSV header: %w", err))
	}

	for i := range rows {
		if err := writer.Write(toCSVRecord(&rows[i])); err != nil {
			panic(fmt.Errorf("failed to write CSV record: %w", err))
		}
	}

	fmt.Printf("Successfully exported %d entries to timesheet_export.csv\n", len(rows))
}

func toCSVRecord(r *timesheetRow) []string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	ended := ""
	if r.EndedAt != nil {
		ended = r.EndedAt.Format(time.RFC3339)
	}
	return []string{
		r.ID,
		r.UserID,
		r.UserName,
		string(r.Kind),
		deref(r.ProjectID),
		r.ProjectName,
		deref(r.TaskID),
		r.TaskTitle,
		r.StartedAt.Format(time.RFC3339),
		ended,
		strconv.FormatFloat(r.Hours, 'f', 2, 64),
		r.Note,
	}
}
