// Package report rolls project and task collections up into the figures of the reports page.
package report

import (
	"time"

	"github.com/samber/lo"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// IsOverdue reports whether a task was due on a day before today and is still open.
func IsOverdue(t *model.Task, today time.Time) bool {
	if t.DueDate == nil || t.DueDate.IsZero() || t.Status.Done() {
		return false
	}
	return civil(*t.DueDate).Before(civil(today))
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type ProjectSummary struct {
	ProjectID  string              `json:"projectId"`
	Name       string              `json:"name"`
	Type       model.ProjectType   `json:"type"`
	Status     model.ProjectStatus `json:"status"`
	ClientName *string             `json:"clientName,omitempty"`
	SpaceName  string              `json:"spaceName,omitempty"`

	TaskCount      int                      `json:"taskCount"`
	CountsByStatus map[model.TaskStatus]int `json:"countsByStatus"`
	Overdue        int                      `json:"overdue"`
	Progress       float64                  `json:"progress"`

	EstimateHours float64 `json:"estimateHours"`
	TrackedHours  float64 `json:"trackedHours"`

	Budget     *float64 `json:"budget,omitempty"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
	// Spent is tracked hours at the hourly rate. BudgetUsed is Spent over Budget.
	Spent      *float64 `json:"spent,omitempty"`
	BudgetUsed *float64 `json:"budgetUsed,omitempty"`
}

type Totals struct {
	Projects      int     `json:"projects"`
	ActiveTasks   int     `json:"activeTasks"`
	Overdue       int     `json:"overdue"`
	EstimateHours float64 `json:"estimateHours"`
	TrackedHours  float64 `json:"trackedHours"`
	Budget        float64 `json:"budget"`
	Spent         float64 `json:"spent"`
}

// SummarizeProjects builds one summary per project record, in order.
func SummarizeProjects(projects []viewmodel.ProjectRecord, tasks []model.Task, today time.Time) []ProjectSummary {
	byProject := lo.GroupBy(tasks, func(t model.Task) string { return t.ProjectID })
	return lo.Map(projects, func(p viewmodel.ProjectRecord, _ int) ProjectSummary {
		return summarize(&p, byProject[p.ID], today)
	})
}

func summarize(p *viewmodel.ProjectRecord, tasks []model.Task, today time.Time) ProjectSummary {
	s := ProjectSummary{
		ProjectID:      p.ID,
		Name:           p.Name,
		Type:           p.Type,
		Status:         p.Status,
		TaskCount:      p.TaskCount,
		CountsByStatus: map[model.TaskStatus]int{},
		Progress:       p.Progress,
		EstimateHours:  p.EstimateHours,
		TrackedHours:   p.TrackedHours,
		Budget:         p.Budget,
		HourlyRate:     p.HourlyRate,
	}
	if p.Folder != nil {
		s.ClientName = p.Folder.ClientName
	}
	if p.Space != nil {
		s.SpaceName = p.Space.Name
	}
	for i := range tasks {
		s.CountsByStatus[tasks[i].Status]++
		if IsOverdue(&tasks[i], today) {
			s.Overdue++
		}
	}
	if p.HourlyRate != nil {
		spent := p.TrackedHours * *p.HourlyRate
		s.Spent = &spent
		if p.Budget != nil && *p.Budget > 0 {
			used := spent / *p.Budget
			s.BudgetUsed = &used
		}
	}
	return s
}

// Total adds up the summaries.
func Total(summaries []ProjectSummary) Totals {
	var t Totals
	for i := range summaries {
		s := &summaries[i]
		t.Projects++
		t.ActiveTasks += s.TaskCount - s.CountsByStatus[model.TaskComplete] - s.CountsByStatus[model.TaskApproved]
		t.Overdue += s.Overdue
		t.EstimateHours += s.EstimateHours
		t.TrackedHours += s.TrackedHours
		if s.Budget != nil {
			t.Budget += *s.Budget
		}
		if s.Spent != nil {
			t.Spent += *s.Spent
		}
	}
	return t
}
