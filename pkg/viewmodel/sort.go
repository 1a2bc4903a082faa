package viewmodel

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type SortField string

const (
	SortByTitle     SortField = "title"
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
	SortByStatus    SortField = "status"
	SortByProgress  SortField = "progress"
	SortByCreatedAt SortField = "createdAt"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSpec orders records by one field. An empty Field keeps the input order and an
// empty Direction means ascending.
type SortSpec struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

type sortKey struct {
	// missing records go last in both directions. Nil when the field is always present.
	missing func(Record) bool
	compare func(a, b Record) int
}

var sortKeys = map[SortField]sortKey{
	SortByTitle: {
		compare: func(a, b Record) int {
			return strings.Compare(strings.ToLower(a.RecordTitle()), strings.ToLower(b.RecordTitle()))
		},
	},
	SortByDueDate: {
		missing: func(r Record) bool { return r.RecordDue() == nil },
		compare: func(a, b Record) int { return a.RecordDue().Compare(*b.RecordDue()) },
	},
	SortByPriority: {
		missing: func(r Record) bool { return r.RecordPriority().Rank() == 0 },
		compare: func(a, b Record) int {
			return cmp.Compare(a.RecordPriority().Rank(), b.RecordPriority().Rank())
		},
	},
	SortByStatus: {
		compare: func(a, b Record) int { return strings.Compare(a.RecordStatus(), b.RecordStatus()) },
	},
	SortByProgress: {
		compare: func(a, b Record) int { return cmp.Compare(a.RecordProgress(), b.RecordProgress()) },
	},
	SortByCreatedAt: {
		missing: func(r Record) bool { return r.RecordCreatedAt().IsZero() },
		compare: func(a, b Record) int { return a.RecordCreatedAt().Compare(b.RecordCreatedAt()) },
	},
}

// Validate checks the sort against the known fields and directions.
func (s SortSpec) Validate() error {
	if s.Field != "" {
		if _, ok := sortKeys[s.Field]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSortField, s.Field)
		}
	}
	switch s.Direction {
	case "", Ascending, Descending:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortDirection, s.Direction)
	}
}

// SortRecords returns a stably sorted copy of records.
func SortRecords[R Record](records []R, spec SortSpec) ([]R, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	out := slices.Clone(records)
	if spec.Field == "" {
		return out, nil
	}
	key := sortKeys[spec.Field]
	desc := spec.Direction == Descending
	slices.SortStableFunc(out, func(a, b R) int {
		if key.missing != nil {
			ma, mb := key.missing(a), key.missing(b)
			switch {
			case ma && mb:
				return 0
			case ma:
				return 1
			case mb:
				return -1
			}
		}
		c := key.compare(a, b)
		if desc {
			return -c
		}
		return c
	})
	return out, nil
}
