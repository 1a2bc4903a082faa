package viewmodel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
)

func TestSortRecordsDueDateMissingLast(t *testing.T) {
	undated := task("1", model.TaskTodo)
	dated := task("2", model.TaskComplete)
	dated.DueDate = day("2024-03-01")
	records := taskRecords(undated, dated)

	asc, err := SortRecords(records, SortSpec{Field: SortByDueDate, Direction: Ascending})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, IDs(asc))

	later := task("3", model.TaskTodo)
	later.DueDate = day("2024-04-01")
	desc, err := SortRecords(append(records, taskRecords(later)...), SortSpec{Field: SortByDueDate, Direction: Descending})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, IDs(desc))
}

func TestSortRecordsStable(t *testing.T) {
	a := task("a", model.TaskTodo)
	b := task("b", model.TaskTodo)
	c := task("c", model.TaskTodo)
	c.Priority = model.PriorityP1
	records := taskRecords(a, b, c)

	for _, dir := range []SortDirection{Ascending, Descending} {
		got, err := SortRecords(records, SortSpec{Field: SortByStatus, Direction: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, IDs(got))
	}

	got, err := SortRecords(records, SortSpec{Field: SortByPriority})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, IDs(got))
}

func TestSortRecordsFields(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	x := task("x", model.TaskTodo)
	x.Title = "beta"
	x.Progress = 10
	x.CreatedAt = now.Add(time.Hour)
	x.Priority = model.PriorityP2
	y := task("y", model.TaskBlocked)
	y.Title = "Alpha"
	y.Progress = math.NaN()
	y.CreatedAt = now
	y.Priority = "urgent"
	z := task("z", model.TaskComplete)
	z.Title = "gamma"
	z.Progress = 90
	records := taskRecords(x, y, z)

	cases := []struct {
		spec SortSpec
		want []string
	}{
		{SortSpec{Field: SortByTitle}, []string{"y", "x", "z"}},
		{SortSpec{Field: SortByTitle, Direction: Descending}, []string{"z", "x", "y"}},
		{SortSpec{Field: SortByStatus}, []string{"y", "z", "x"}},
		{SortSpec{Field: SortByProgress}, []string{"y", "x", "z"}},
		{SortSpec{Field: SortByProgress, Direction: Descending}, []string{"z", "x", "y"}},
		// unknown priorities and zero creation times go last
		{SortSpec{Field: SortByPriority, Direction: Descending}, []string{"z", "x", "y"}},
		{SortSpec{Field: SortByCreatedAt}, []string{"y", "x", "z"}},
		{SortSpec{Field: SortByCreatedAt, Direction: Descending}, []string{"x", "y", "z"}},
		{SortSpec{}, []string{"x", "y", "z"}},
	}
	for _, tc := range cases {
		got, err := SortRecords(records, tc.spec)
		require.NoError(t, err)
		assert.Equal(t, tc.want, IDs(got), "%+v", tc.spec)
	}
	assert.Equal(t, []string{"x", "y", "z"}, IDs(records))
}

func TestSortRecordsRejectsUnknownSpec(t *testing.T) {
	records := taskRecords(task("1", model.TaskTodo))

	_, err := SortRecords(records, SortSpec{Field: "color"})
	assert.ErrorIs(t, err, ErrUnknownSortField)

	_, err = SortRecords(records, SortSpec{Field: SortByTitle, Direction: "sideways"})
	assert.ErrorIs(t, err, ErrUnknownSortDirection)
}
