package viewmodel

import (
	"fmt"
	"time"
)

// Query is everything a saved view stores.
type Query struct {
	Filter FilterSpec `json:"filter"`
	Sort   SortSpec   `json:"sort"`
	View   ViewShape  `json:"view"`
}

// ComposeOptions carries the shape-specific inputs of ComposeView.
type ComposeOptions struct {
	// Statuses are the board columns. Nil yields only the columns that have records.
	Statuses []string
	Calendar CalendarOptions
	// Gantt is the visible window. Nil fits the window to the records.
	Gantt     *GanttWindow
	GanttUnit time.Duration
}

// Composition is the rendered view. Only the field matching View is populated.
type Composition[R Record] struct {
	View    ViewShape        `json:"view"`
	Total   int              `json:"total"`
	Rows    []R              `json:"rows,omitempty"`
	Columns []BoardColumn[R] `json:"columns,omitempty"`
	Days    []CalendarDay[R] `json:"days,omitempty"`
	Bars    []GanttBar[R]    `json:"bars,omitempty"`
	// WindowStart and WindowEnd echo the gantt window the bars are relative to.
	WindowStart *time.Time `json:"windowStart,omitempty"`
	WindowEnd   *time.Time `json:"windowEnd,omitempty"`
}

// ComposeView shapes already filtered and sorted records into the requested view.
func ComposeView[R Record](shape ViewShape, records []R, opts ComposeOptions) (*Composition[R], error) {
	out := &Composition[R]{View: shape, Total: len(records)}
	switch shape {
	case ViewList:
		out.Rows = ComposeList(records)
	case ViewBoard:
		out.Columns = ComposeBoard(records, opts.Statuses)
	case ViewCalendar:
		days, err := ComposeCalendar(records, opts.Calendar)
		if err != nil {
			return nil, err
		}
		out.Days = days
	case ViewGantt:
		var window GanttWindow
		if opts.Gantt != nil {
			window = *opts.Gantt
		} else {
			fitted, ok := FitGanttWindow(records, opts.GanttUnit)
			if !ok {
				return out, nil
			}
			window = fitted
		}
		bars, err := ComposeGantt(records, window)
		if err != nil {
			return nil, err
		}
		out.Bars = bars
		out.WindowStart, out.WindowEnd = &window.Start, &window.End
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, shape)
	}
	return out, nil
}

// Run filters, sorts and composes records in one pass. An empty view is a list.
func Run[R Record](records []R, q Query, opts ComposeOptions) (*Composition[R], error) {
	shape, err := ParseViewShape(string(q.View))
	if err != nil {
		return nil, err
	}
	sorted, err := SortRecords(ApplyFilter(records, q.Filter), q.Sort)
	if err != nil {
		return nil, err
	}
	return ComposeView(shape, sorted, opts)
}
