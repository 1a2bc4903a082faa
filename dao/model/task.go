package model

import (
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	Base
	ProjectID     string                      `gorm:"type:varchar(36);not null;index" json:"projectId"`
	Title         string                      `gorm:"type:varchar(256);not null" json:"title"`
	Description   string                      `gorm:"type:text" json:"description"`
	Status        TaskStatus                  `gorm:"type:varchar(32);not null;default:todo;index" json:"status"`
	Priority      Priority                    `gorm:"type:varchar(8);not null;default:p3" json:"priority"`
	AssigneeIDs   datatypes.JSONSlice[string] `gorm:"type:jsonb;comment:profile ids" json:"assigneeIds"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	StartDate     *time.Time                  `gorm:"type:date" json:"startDate,omitempty"`
	DueDate       *time.Time                  `gorm:"type:date;index" json:"dueDate,omitempty"`
	EstimateHours float64                     `gorm:"not null;default:0" json:"estimateHours"`
	TrackedHours  float64                     `gorm:"not null;default:0" json:"trackedHours"`
	Progress      float64                     `gorm:"not null;default:0;comment:0-100" json:"progress"`
	ClientVisible bool                        `gorm:"not null;default:false" json:"clientVisible"`
	CreatedBy     string                      `gorm:"type:varchar(36)" json:"createdBy"`
}

// ClampProgress keeps a progress value inside [0, 100]. Non-finite values count as no progress.
func ClampProgress(v float64) float64 {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func (t *Task) BeforeSave(_ *gorm.DB) error {
	t.Progress = ClampProgress(t.Progress)
	return nil
}
