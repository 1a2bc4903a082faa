package viewmodel

import (
	"strings"
	"time"

	"github.com/raids-lab/agencyos/pkg/constants"
)

// validDate returns nil for absent or zero dates.
func validDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}

// dayOf maps t to midnight UTC of the calendar day t falls on in its own location.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return dayOf(t).Format(constants.DateLayout)
}

// ParseDate accepts a calendar day or an RFC 3339 timestamp. Anything else is treated as no date.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{constants.DateLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
