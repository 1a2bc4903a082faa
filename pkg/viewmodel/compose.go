package viewmodel

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/raids-lab/agencyos/dao/model"
)

type ViewShape string

const (
	ViewList     ViewShape = "list"
	ViewBoard    ViewShape = "board"
	ViewCalendar ViewShape = "calendar"
	ViewGantt    ViewShape = "gantt"
)

// defaultCalendarMaxDays bounds how many empty days a bounded calendar fills in.
const defaultCalendarMaxDays = 1000

// ParseViewShape maps a view name to its shape. An empty name selects the list view.
func ParseViewShape(s string) (ViewShape, error) {
	switch shape := ViewShape(strings.ToLower(strings.TrimSpace(s))); shape {
	case "":
		return ViewList, nil
	case ViewList, ViewBoard, ViewCalendar, ViewGantt:
		return shape, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
}

// TaskBoardColumns lists the task statuses in workflow order.
func TaskBoardColumns() []string {
	return lo.Map(model.AllTaskStatuses(), func(s model.TaskStatus, _ int) string { return string(s) })
}

func ProjectBoardColumns() []string {
	return lo.Map(model.AllProjectStatuses(), func(s model.ProjectStatus, _ int) string { return string(s) })
}

type BoardColumn[R Record] struct {
	Status  string `json:"status"`
	Records []R    `json:"records"`
}

type CalendarDay[R Record] struct {
	Date    string `json:"date"`
	Records []R    `json:"records"`
}

// GanttBar places a record on the visible window. Start and End are fractions of the
// window, 0 <= Start <= End <= 1.
type GanttBar[R Record] struct {
	Record R       `json:"record"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// ComposeList is the identity view. The returned slice is a copy.
func ComposeList[R Record](records []R) []R {
	return slices.Clone(records)
}

// ComposeBoard groups records by status with one column per entry of statuses, empty
// columns included. Records whose status is not listed get extra columns after the
// listed ones, in the order their status first appears.
func ComposeBoard[R Record](records []R, statuses []string) []BoardColumn[R] {
	columns := make([]BoardColumn[R], 0, len(statuses))
	position := make(map[string]int, len(statuses))
	add := func(status string) int {
		position[status] = len(columns)
		columns = append(columns, BoardColumn[R]{Status: status, Records: []R{}})
		return len(columns) - 1
	}
	for _, s := range statuses {
		if _, ok := position[s]; !ok {
			add(s)
		}
	}
	for _, r := range records {
		i, ok := position[r.RecordStatus()]
		if !ok {
			i = add(r.RecordStatus())
		}
		columns[i].Records = append(columns[i].Records, r)
	}
	return columns
}

// CalendarOptions restricts the calendar to a window of days. When both bounds are set
// every day of the window gets a bucket, up to MaxDays of them.
type CalendarOptions struct {
	From    *time.Time
	To      *time.Time
	MaxDays int
}

// ComposeCalendar buckets records by the day of their due date, in ascending day order.
// Records without a due date are left off the calendar.
func ComposeCalendar[R Record](records []R, opts CalendarOptions) ([]CalendarDay[R], error) {
	var from, to *time.Time
	if opts.From != nil {
		d := dayOf(*opts.From)
		from = &d
	}
	if opts.To != nil {
		d := dayOf(*opts.To)
		to = &d
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: calendar starts after it ends", ErrInvalidWindow)
	}

	buckets := map[string][]R{}
	if from != nil && to != nil {
		maxDays := opts.MaxDays
		if maxDays <= 0 {
			maxDays = defaultCalendarMaxDays
		}
		for d, n := *from, 0; !d.After(*to) && n < maxDays; d, n = d.AddDate(0, 0, 1), n+1 {
			buckets[dayKey(d)] = []R{}
		}
	}
	for _, r := range records {
		due := r.RecordDue()
		if due == nil {
			continue
		}
		day := dayOf(*due)
		if (from != nil && day.Before(*from)) || (to != nil && day.After(*to)) {
			continue
		}
		key := dayKey(day)
		buckets[key] = append(buckets[key], r)
	}

	keys := lo.Keys(buckets)
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) CalendarDay[R] {
		return CalendarDay[R]{Date: k, Records: buckets[k]}
	}), nil
}

// GanttWindow is the visible time range of a gantt chart. Unit is the width given to
// bars that would otherwise have none and defaults to one day.
type GanttWindow struct {
	Start time.Time
	End   time.Time
	Unit  time.Duration
}

func (w GanttWindow) unit() time.Duration {
	if w.Unit <= 0 {
		return 24 * time.Hour
	}
	return w.Unit
}

// span returns the record's interval, or false when it has no date at all.
func span(r Record, unit time.Duration) (time.Time, time.Time, bool) {
	start, due := r.RecordStart(), r.RecordDue()
	if start == nil && due == nil {
		return time.Time{}, time.Time{}, false
	}
	if start == nil {
		start = due
	}
	if due == nil {
		due = start
	}
	s, e := *start, *due
	if e.Before(s) {
		s, e = e, s
	}
	if !e.After(s) {
		e = s.Add(unit)
	}
	return s, e, true
}

// FitGanttWindow returns the smallest window covering every dated record.
// ok is false when no record has a date.
func FitGanttWindow[R Record](records []R, unit time.Duration) (GanttWindow, bool) {
	w := GanttWindow{Unit: unit}
	found := false
	for _, r := range records {
		s, e, ok := span(r, w.unit())
		if !ok {
			continue
		}
		if !found || s.Before(w.Start) {
			w.Start = s
		}
		if !found || e.After(w.End) {
			w.End = e
		}
		found = true
	}
	return w, found
}

// DayWindow covers the calendar days from through to, both included.
func DayWindow(from, to time.Time, unit time.Duration) GanttWindow {
	return GanttWindow{Start: dayOf(from), End: dayOf(to).AddDate(0, 0, 1), Unit: unit}
}

// ComposeGantt maps each dated record to a bar clamped to the window. Only records
// with neither a start nor a due date are excluded. A bar left without width after
// clamping is widened to one unit, kept inside the window.
func ComposeGantt[R Record](records []R, window GanttWindow) ([]GanttBar[R], error) {
	if !window.End.After(window.Start) {
		return nil, fmt.Errorf("%w: gantt window must end after it starts", ErrInvalidWindow)
	}
	width := float64(window.End.Sub(window.Start))
	fraction := func(t time.Time) float64 {
		f := float64(t.Sub(window.Start)) / width
		return min(max(f, 0), 1)
	}
	minWidth := min(float64(window.unit())/width, 1)

	bars := []GanttBar[R]{}
	for _, r := range records {
		s, e, ok := span(r, window.unit())
		if !ok {
			continue
		}
		bar := GanttBar[R]{Record: r, Start: fraction(s), End: fraction(e)}
		if bar.End <= bar.Start {
			bar.Start = min(bar.Start, 1-minWidth)
			bar.End = min(bar.Start+minWidth, 1)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
