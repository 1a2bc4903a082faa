package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

func TestGetReminderFunc(t *testing.T) {
	for _, name := range JobNames() {
		f, err := GetReminderFunc(name, &Clients{}, nil)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}

	_, err := GetReminderFunc(REMIND_OVERDUE_TASKS, &Clients{}, datatypes.JSON(`{"lookbackDays": "x"}`))
	assert.Error(t, err)

	_, err = GetReminderFunc("unknown", &Clients{}, datatypes.JSON(`{}`))
	assert.Error(t, err)
}

func TestRemindOverdueTasksRejectsNilRequest(t *testing.T) {
	_, err := RemindOverdueTasks(context.Background(), &Clients{}, nil)
	assert.Error(t, err)
	_, err = SweepStaleTimers(context.Background(), &Clients{}, nil)
	assert.Error(t, err)
}

func TestOverdueFilter(t *testing.T) {
	today := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	mk := func(id string, status model.TaskStatus, due string) model.Task {
		task := model.Task{Status: status, DueDate: viewmodel.ParseDate(due)}
		task.ID = id
		return task
	}
	records := viewmodel.ResolveTaskRecords(viewmodel.Collections{Tasks: []model.Task{
		mk("late", model.TaskInProgress, "2024-03-09"),
		mk("today", model.TaskTodo, "2024-03-10"),
		mk("done", model.TaskComplete, "2024-03-01"),
		mk("ancient", model.TaskBlocked, "2023-01-01"),
		mk("undated", model.TaskTodo, ""),
	}})

	all := viewmodel.ApplyFilter(records, OverdueFilter(today, 0))
	assert.Equal(t, []string{"late", "ancient"}, viewmodel.IDs(all))

	recent := viewmodel.ApplyFilter(records, OverdueFilter(today, 30))
	assert.Equal(t, []string{"late"}, viewmodel.IDs(recent))
}

func TestGroupByAssignee(t *testing.T) {
	a := model.Task{AssigneeIDs: []string{"u1", "u2", "u1"}}
	a.ID = "a"
	b := model.Task{AssigneeIDs: []string{"u2"}}
	b.ID = "b"
	c := model.Task{}
	c.ID = "c"

	groups := GroupByAssignee(viewmodel.ResolveTaskRecords(viewmodel.Collections{Tasks: []model.Task{a, b, c}}))
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"a"}, viewmodel.IDs(groups["u1"]))
	assert.Equal(t, []string{"a", "b"}, viewmodel.IDs(groups["u2"]))
}

func TestIsStale(t *testing.T) {
	now := time.Now()
	running := &model.TimeEntry{StartedAt: now.Add(-13 * time.Hour)}
	assert.True(t, IsStale(running, now, 12*time.Hour))
	assert.False(t, IsStale(running, now, 14*time.Hour))

	ended := now
	running.EndedAt = &ended
	assert.False(t, IsStale(running, now, time.Hour))
}
