package model

import "time"

// Project is called a "list" in the dashboard.
type Project struct {
	Base
	FolderID      string        `gorm:"type:varchar(36);not null;index" json:"folderId"`
	Name          string        `gorm:"type:varchar(128);not null" json:"name"`
	Description   string        `gorm:"type:text" json:"description"`
	Type          ProjectType   `gorm:"type:varchar(32);not null;default:client_project" json:"type"`
	Status        ProjectStatus `gorm:"type:varchar(32);not null;default:planning;index" json:"status"`
	Budget        *float64      `gorm:"type:numeric(12,2)" json:"budget,omitempty"`
	HourlyRate    *float64      `gorm:"type:numeric(10,2)" json:"hourlyRate,omitempty"`
	StartDate     *time.Time    `gorm:"type:date" json:"startDate,omitempty"`
	DueDate       *time.Time    `gorm:"type:date" json:"dueDate,omitempty"`
	ClientVisible bool          `gorm:"not null;default:false" json:"clientVisible"`
}
