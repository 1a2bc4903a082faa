package viewmodel

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/raids-lab/agencyos/dao/model"
)

// DateRange is an inclusive range of calendar days. Bounds are "2006-01-02" or RFC 3339
// strings; a bound that does not parse is ignored.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Bounds returns the parsed bounds as calendar days.
func (d DateRange) Bounds() (start, end *time.Time) {
	if t := ParseDate(d.Start); t != nil {
		day := dayOf(*t)
		start = &day
	}
	if t := ParseDate(d.End); t != nil {
		day := dayOf(*t)
		end = &day
	}
	return start, end
}

// FilterSpec narrows a record collection. Empty fields impose no constraint and
// the remaining ones are AND-combined.
type FilterSpec struct {
	Status    []string         `json:"status,omitempty"`
	Priority  []model.Priority `json:"priority,omitempty"`
	Assignees []string         `json:"assignees,omitempty"`
	Tags      []string         `json:"tags,omitempty"`
	DueDate   *DateRange       `json:"dueDate,omitempty"`
	// Search is a case-insensitive substring of the title or description.
	Search        string `json:"search,omitempty"`
	ClientVisible *bool  `json:"clientVisible,omitempty"`
}

type predicate func(Record) bool

func (f FilterSpec) predicates() []predicate {
	var preds []predicate
	if len(f.Status) > 0 {
		preds = append(preds, func(r Record) bool {
			return slices.Contains(f.Status, r.RecordStatus())
		})
	}
	if len(f.Priority) > 0 {
		preds = append(preds, func(r Record) bool {
			return slices.Contains(f.Priority, r.RecordPriority())
		})
	}
	if len(f.Assignees) > 0 {
		preds = append(preds, func(r Record) bool {
			return lo.Some(r.RecordAssignees(), f.Assignees)
		})
	}
	if len(f.Tags) > 0 {
		preds = append(preds, func(r Record) bool {
			return lo.Some(r.RecordTags(), f.Tags)
		})
	}
	if f.DueDate != nil {
		if start, end := f.DueDate.Bounds(); start != nil || end != nil {
			preds = append(preds, func(r Record) bool {
				due := r.RecordDue()
				if due == nil {
					return false
				}
				day := dayOf(*due)
				if start != nil && day.Before(*start) {
					return false
				}
				return end == nil || !day.After(*end)
			})
		}
	}
	if strings.TrimSpace(f.Search) != "" {
		needle := strings.ToLower(f.Search)
		preds = append(preds, func(r Record) bool {
			return strings.Contains(strings.ToLower(r.RecordTitle()), needle) ||
				strings.Contains(strings.ToLower(r.RecordDescription()), needle)
		})
	}
	if f.ClientVisible != nil {
		want := *f.ClientVisible
		preds = append(preds, func(r Record) bool {
			return r.RecordClientVisible() == want
		})
	}
	return preds
}

// IsEmpty reports whether the filter constrains nothing.
func (f FilterSpec) IsEmpty() bool {
	return len(f.predicates()) == 0
}

// ApplyFilter returns the records matching every constraint of spec, in input order.
// The input slice is never modified.
func ApplyFilter[R Record](records []R, spec FilterSpec) []R {
	preds := spec.predicates()
	if len(preds) == 0 {
		return slices.Clone(records)
	}
	return lo.Filter(records, func(r R, _ int) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	})
}

// MergeFilters combines two specs. Fields set in b replace the same fields of a.
func MergeFilters(a, b FilterSpec) FilterSpec {
	out := a
	if len(b.Status) > 0 {
		out.Status = b.Status
	}
	if len(b.Priority) > 0 {
		out.Priority = b.Priority
	}
	if len(b.Assignees) > 0 {
		out.Assignees = b.Assignees
	}
	if len(b.Tags) > 0 {
		out.Tags = b.Tags
	}
	if b.DueDate != nil {
		out.DueDate = b.DueDate
	}
	if strings.TrimSpace(b.Search) != "" {
		out.Search = b.Search
	}
	if b.ClientVisible != nil {
		out.ClientVisible = b.ClientVisible
	}
	return out
}
