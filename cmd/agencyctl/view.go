package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/constants"
	"github.com/raids-lab/agencyos/pkg/seed"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

type viewOptions struct {
	fixture   string
	view      string
	status    []string
	priority  []string
	assignee  []string
	tag       []string
	search    string
	sort      string
	order     string
	from      string
	to        string
	workspace string
	json      bool
}

func (o *viewOptions) query() viewmodel.Query {
	return viewmodel.Query{
		View: viewmodel.ViewShape(o.view),
		Filter: viewmodel.FilterSpec{
			Status:    o.status,
			Assignees: o.assignee,
			Tags:      o.tag,
			Search:    o.search,
			Priority: lo.Map(o.priority, func(p string, _ int) model.Priority {
				return model.Priority(p)
			}),
		},
		Sort: viewmodel.SortSpec{Field: viewmodel.SortField(o.sort), Direction: viewmodel.SortDirection(o.order)},
	}
}

func (o *viewOptions) options(statuses []string) viewmodel.ComposeOptions {
	opts := viewmodel.ComposeOptions{
		Statuses: statuses,
		Calendar: viewmodel.CalendarOptions{From: viewmodel.ParseDate(o.from), To: viewmodel.ParseDate(o.to)},
	}
	if opts.Calendar.From != nil && opts.Calendar.To != nil {
		window := viewmodel.DayWindow(*opts.Calendar.From, *opts.Calendar.To, 0)
		opts.Gantt = &window
	}
	return opts
}

func viewCmd() *cobra.Command {
	o := &viewOptions{}
	cmd := &cobra.Command{
		Use:       "view [tasks|projects]",
		Short:     "Render tasks or projects as a list, board, calendar or gantt chart",
		Long:      "Reads a YAML fixture with --file, or the configured database otherwise, and prints the composed view.",
		Example:   "  agencyctl view tasks --file pkg/seed/testdata/agency.yaml --view board --sort priority",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tasks", "projects"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var collections viewmodel.Collections
			if o.fixture != "" {
				fixture, err := seed.LoadFile(o.fixture)
				if err != nil {
					return err
				}
				if collections, err = fixture.Collections(); err != nil {
					return err
				}
			} else {
				var err error
				store := query.NewStore(query.GetDB())
				collections, err = store.LoadCollections(cmd.Context(), query.Scope{WorkspaceID: o.workspace})
				if err != nil {
					return err
				}
			}
			return render(cmd.OutOrStdout(), args[0], collections, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.fixture, "file", "f", "", "YAML fixture to read instead of the database")
	f.StringVar(&o.view, "view", "list", "list, board, calendar or gantt")
	f.StringSliceVar(&o.status, "status", nil, "keep these statuses")
	f.StringSliceVar(&o.priority, "priority", nil, "keep these priorities (tasks only)")
	f.StringSliceVar(&o.assignee, "assignee", nil, "keep records assigned to any of these profiles")
	f.StringSliceVar(&o.tag, "tag", nil, "keep records carrying any of these tags")
	f.StringVar(&o.search, "search", "", "case-insensitive text in the title or description")
	f.StringVar(&o.sort, "sort", "", "title, dueDate, priority, status, progress or createdAt")
	f.StringVar(&o.order, "order", "", "asc or desc")
	f.StringVar(&o.from, "from", "", "first day of the calendar or gantt window")
	f.StringVar(&o.to, "to", "", "last day of the calendar or gantt window")
	f.StringVar(&o.workspace, "workspace", "", "workspace to load from the database")
	f.BoolVar(&o.json, "json", false, "print the composition as JSON")
	return cmd
}

func render(w io.Writer, entity string, c viewmodel.Collections, o *viewOptions) error {
	switch entity {
	case "tasks":
		out, err := viewmodel.Run(viewmodel.ResolveTaskRecords(c), o.query(), o.options(viewmodel.TaskBoardColumns()))
		if err != nil {
			return err
		}
		return printComposition(w, out, o.json)
	case "projects":
		out, err := viewmodel.Run(viewmodel.ResolveProjectRecords(c), o.query(), o.options(viewmodel.ProjectBoardColumns()))
		if err != nil {
			return err
		}
		return printComposition(w, out, o.json)
	default:
		return fmt.Errorf("unknown entity %q, want tasks or projects", entity)
	}
}

func printComposition[R viewmodel.Record](w io.Writer, out *viewmodel.Composition[R], asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch out.View {
	case viewmodel.ViewList:
		writeRows(tw, out.Rows)
	case viewmodel.ViewBoard:
		for _, col := range out.Columns {
			fmt.Fprintf(tw, "[%s] %d\n", col.Status, len(col.Records))
			writeRows(tw, col.Records)
		}
	case viewmodel.ViewCalendar:
		for _, day := range out.Days {
			fmt.Fprintf(tw, "%s\t%s\n", day.Date, strings.Join(lo.Map(day.Records, func(r R, _ int) string {
				return r.RecordTitle()
			}), ", "))
		}
	case viewmodel.ViewGantt:
		if out.WindowStart != nil && out.WindowEnd != nil {
			fmt.Fprintf(tw, "window\t%s .. %s\n", out.WindowStart.Format(constants.DateLayout), out.WindowEnd.Format(constants.DateLayout))
		}
		for _, bar := range out.Bars {
			fmt.Fprintf(tw, "%s\t|%s|\n", bar.Record.RecordTitle(), ganttLine(bar.Start, bar.End, ganttWidth))
		}
	}
	fmt.Fprintf(tw, "%d record(s)\n", out.Total)
	return tw.Flush()
}

func writeRows[R viewmodel.Record](w io.Writer, rows []R) {
	for _, r := range rows {
		due := "-"
		if d := r.RecordDue(); d != nil {
			due = d.Format(constants.DateLayout)
		}
		prio := string(r.RecordPriority())
		if prio == "" {
			prio = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%3.0f%%\n",
			r.RecordID(), r.RecordTitle(), r.RecordStatus(), prio, due, r.RecordProgress())
	}
}

const ganttWidth = 40

// ganttLine draws a bar spanning [start, end] of a width-wide track. Every bar is at least one cell.
func ganttLine(start, end float64, width int) string {
	from := int(math.Floor(start * float64(width)))
	to := int(math.Ceil(end * float64(width)))
	from = min(max(from, 0), width-1)
	to = min(max(to, from+1), width)
	return strings.Repeat(" ", from) + strings.Repeat("#", to-from) + strings.Repeat(" ", width-to)
}
