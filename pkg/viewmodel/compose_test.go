package viewmodel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
)

func TestComposeBoard(t *testing.T) {
	records := taskRecords(
		task("1", model.TaskTodo),
		task("2", model.TaskTodo),
		task("3", model.TaskComplete),
	)
	columns := ComposeBoard(records, TaskBoardColumns())

	require.Len(t, columns, len(model.AllTaskStatuses()))
	byStatus := lo.KeyBy(columns, func(c BoardColumn[TaskRecord]) string { return c.Status })
	assert.Equal(t, []string{"1", "2"}, IDs(byStatus["todo"].Records))
	assert.Equal(t, []string{"3"}, IDs(byStatus["complete"].Records))
	for _, s := range []string{"in_progress", "internal_review", "in_revision", "client_review", "blocked", "approved"} {
		assert.NotNil(t, byStatus[s].Records, s)
		assert.Empty(t, byStatus[s].Records, s)
	}
}

func TestComposeBoardIsPermutation(t *testing.T) {
	odd := task("odd", "archived")
	records := append(ResolveTaskRecords(sampleCollections()), taskRecords(odd)...)
	columns := ComposeBoard(records, TaskBoardColumns())

	flat := lo.FlatMap(columns, func(c BoardColumn[TaskRecord], _ int) []TaskRecord { return c.Records })
	assert.ElementsMatch(t, IDs(records), IDs(flat))
	assert.Equal(t, "archived", columns[len(columns)-1].Status)
}

func TestComposeCalendar(t *testing.T) {
	a := task("a", model.TaskTodo)
	a.DueDate = day("2024-03-02")
	b := task("b", model.TaskTodo)
	due := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	b.DueDate = &due
	c := task("c", model.TaskTodo)
	c.DueDate = day("2024-03-02")
	undated := task("d", model.TaskTodo)
	zero := task("e", model.TaskTodo)
	zero.DueDate = &time.Time{}
	records := taskRecords(a, b, c, undated, zero)

	days, err := ComposeCalendar(records, CalendarOptions{})
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-01", days[0].Date)
	assert.Equal(t, []string{"b"}, IDs(days[0].Records))
	assert.Equal(t, "2024-03-02", days[1].Date)
	assert.Equal(t, []string{"a", "c"}, IDs(days[1].Records))

	window, err := ComposeCalendar(records, CalendarOptions{From: day("2024-03-02"), To: day("2024-03-04")})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-02", "2024-03-03", "2024-03-04"},
		lo.Map(window, func(d CalendarDay[TaskRecord], _ int) string { return d.Date }))
	assert.Empty(t, window[1].Records)

	_, err = ComposeCalendar(records, CalendarOptions{From: day("2024-03-04"), To: day("2024-03-02")})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestComposeGantt(t *testing.T) {
	window := GanttWindow{Start: *day("2024-03-01"), End: *day("2024-03-11")}

	inverted := task("inverted", model.TaskTodo)
	inverted.StartDate = day("2024-03-05")
	inverted.DueDate = day("2024-03-03")
	dueOnly := task("due", model.TaskTodo)
	dueOnly.DueDate = day("2024-03-06")
	startOnly := task("start", model.TaskTodo)
	startOnly.StartDate = day("2024-02-20")
	overflow := task("overflow", model.TaskTodo)
	overflow.StartDate = day("2024-03-09")
	overflow.DueDate = day("2024-04-01")
	outside := task("outside", model.TaskTodo)
	outside.DueDate = day("2024-05-01")
	undated := task("undated", model.TaskTodo)
	records := taskRecords(inverted, dueOnly, startOnly, overflow, outside, undated)

	bars, err := ComposeGantt(records, window)
	require.NoError(t, err)
	ids := lo.Map(bars, func(b GanttBar[TaskRecord], _ int) string { return b.Record.ID })
	assert.Equal(t, []string{"inverted", "due", "start", "overflow", "outside"}, ids)

	for _, b := range bars {
		assert.GreaterOrEqual(t, b.Start, 0.0)
		assert.Less(t, b.Start, b.End)
		assert.LessOrEqual(t, b.End, 1.0)
	}
	assert.InDelta(t, 0.2, bars[0].Start, 1e-9)
	assert.InDelta(t, 0.4, bars[0].End, 1e-9)
	// zero width widened by one day
	assert.InDelta(t, 0.5, bars[1].Start, 1e-9)
	assert.InDelta(t, 0.6, bars[1].End, 1e-9)
	// before the window: pinned to the left edge
	assert.InDelta(t, 0.0, bars[2].Start, 1e-9)
	assert.InDelta(t, 0.1, bars[2].End, 1e-9)
	assert.InDelta(t, 0.8, bars[3].Start, 1e-9)
	assert.InDelta(t, 1.0, bars[3].End, 1e-9)
	// after the window: pinned to the right edge
	assert.InDelta(t, 0.9, bars[4].Start, 1e-9)
	assert.InDelta(t, 1.0, bars[4].End, 1e-9)

	_, err = ComposeGantt(records, GanttWindow{Start: window.End, End: window.Start})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestDayWindowIncludesLastDay(t *testing.T) {
	window := DayWindow(*day("2024-03-01"), time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC), 0)
	assert.True(t, window.Start.Equal(*day("2024-03-01")))
	assert.True(t, window.End.Equal(*day("2024-04-01")))

	last := task("last", model.TaskTodo)
	last.DueDate = day("2024-03-31")
	bars, err := ComposeGantt(taskRecords(last), window)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.InDelta(t, 30.0/31, bars[0].Start, 1e-9)
	assert.InDelta(t, 1.0, bars[0].End, 1e-9)

	single := DayWindow(*day("2024-03-31"), *day("2024-03-31"), 0)
	bars, err = ComposeGantt(taskRecords(last), single)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Zero(t, bars[0].Start)
	assert.InDelta(t, 1.0, bars[0].End, 1e-9)
}

func TestComposeGanttUnitWiderThanWindow(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	window := GanttWindow{Start: start, End: start.Add(time.Hour), Unit: 24 * time.Hour}
	late := task("late", model.TaskTodo)
	late.DueDate = day("2024-03-05")

	bars, err := ComposeGantt(taskRecords(late), window)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Zero(t, bars[0].Start)
	assert.InDelta(t, 1.0, bars[0].End, 1e-9)
}

func TestComposeViewFitsGanttWindow(t *testing.T) {
	a := task("a", model.TaskTodo)
	a.StartDate = day("2024-03-01")
	a.DueDate = day("2024-03-05")
	b := task("b", model.TaskTodo)
	b.DueDate = day("2024-03-09")

	out, err := ComposeView(ViewGantt, taskRecords(a, b), ComposeOptions{})
	require.NoError(t, err)
	require.Len(t, out.Bars, 2)
	assert.True(t, out.WindowStart.Equal(*day("2024-03-01")))
	assert.True(t, out.WindowEnd.Equal(*day("2024-03-10")))
	assert.Zero(t, out.Bars[0].Start)
	assert.InDelta(t, 1.0, out.Bars[1].End, 1e-9)

	empty, err := ComposeView(ViewGantt, taskRecords(task("c", model.TaskTodo)), ComposeOptions{})
	require.NoError(t, err)
	assert.Empty(t, empty.Bars)
	assert.Equal(t, 1, empty.Total)
}

func TestParseViewShape(t *testing.T) {
	shape, err := ParseViewShape("")
	require.NoError(t, err)
	assert.Equal(t, ViewList, shape)

	shape, err = ParseViewShape(" Board ")
	require.NoError(t, err)
	assert.Equal(t, ViewBoard, shape)

	_, err = ParseViewShape("timeline")
	assert.ErrorIs(t, err, ErrUnknownView)

	_, err = ComposeView[TaskRecord]("timeline", nil, ComposeOptions{})
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestRunIsDeterministic(t *testing.T) {
	c := sampleCollections()
	q := Query{
		Filter: FilterSpec{Assignees: []string{"u1", "u2"}},
		Sort:   SortSpec{Field: SortByTitle, Direction: Descending},
		View:   ViewBoard,
	}
	opts := ComposeOptions{Statuses: TaskBoardColumns()}

	first, err := Run(ResolveTaskRecords(c), q, opts)
	require.NoError(t, err)
	second, err := Run(ResolveTaskRecords(c), q, opts)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, 3, first.Total)
}

func TestRunProjects(t *testing.T) {
	out, err := Run(ResolveProjectRecords(sampleCollections()), Query{View: ViewBoard}, ComposeOptions{
		Statuses: ProjectBoardColumns(),
	})
	require.NoError(t, err)
	require.Len(t, out.Columns, len(model.AllProjectStatuses()))
	assert.Equal(t, "planning", out.Columns[0].Status)
	assert.Equal(t, []string{"p2"}, IDs(out.Columns[0].Records))

	_, err = Run(ResolveProjectRecords(sampleCollections()), Query{Sort: SortSpec{Field: "budget"}}, ComposeOptions{})
	assert.ErrorIs(t, err, ErrUnknownSortField)
}
