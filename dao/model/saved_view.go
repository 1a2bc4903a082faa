package model

import "gorm.io/datatypes"

// SavedViewEntity is the record kind a saved view renders.
type SavedViewEntity string

const (
	SavedViewTasks    SavedViewEntity = "tasks"
	SavedViewProjects SavedViewEntity = "projects"
)

// SavedView persists a filter, a sort and a view shape under a name.
// Filter and Sort hold the JSON encoding of the saved filter and sort.
type SavedView struct {
	Base
	OwnerID string          `gorm:"type:varchar(36);not null;index" json:"ownerId"`
	Name    string          `gorm:"type:varchar(128);not null" json:"name"`
	Entity  SavedViewEntity `gorm:"type:varchar(16);not null;default:tasks" json:"entity"`
	View    string          `gorm:"type:varchar(16);not null;default:list" json:"view"`
	SpaceID *string         `gorm:"type:varchar(36)" json:"spaceId,omitempty"`
	Filter  datatypes.JSON  `gorm:"type:jsonb" json:"filter"`
	Sort    datatypes.JSON  `gorm:"type:jsonb" json:"sort"`
	Shared  bool            `gorm:"not null;default:false" json:"shared"`
}
