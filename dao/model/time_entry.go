package model

import "time"

// TimeEntry is a tracked interval. EndedAt is nil while a timer or clock-in is still running.
type TimeEntry struct {
	Base
	UserID    string        `gorm:"type:varchar(36);not null;index" json:"userId"`
	TaskID    *string       `gorm:"type:varchar(36);index" json:"taskId,omitempty"`
	ProjectID *string       `gorm:"type:varchar(36);index" json:"projectId,omitempty"`
	Kind      TimeEntryKind `gorm:"type:varchar(16);not null;default:timer" json:"kind"`
	StartedAt time.Time     `gorm:"not null;index" json:"startedAt"`
	EndedAt   *time.Time    `gorm:"index" json:"endedAt,omitempty"`
	Hours     float64       `gorm:"not null;default:0" json:"hours"`
	Note      string        `gorm:"type:text" json:"note"`
}

// Close ends the entry at the given time and fills in the elapsed hours.
func (e *TimeEntry) Close(at time.Time) {
	if at.Before(e.StartedAt) {
		at = e.StartedAt
	}
	e.EndedAt = &at
	e.Hours = at.Sub(e.StartedAt).Hours()
}
