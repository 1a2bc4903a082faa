package model

// Folder groups the projects of one client or initiative inside a space.
type Folder struct {
	Base
	SpaceID    string  `gorm:"type:varchar(36);not null;index" json:"spaceId"`
	Name       string  `gorm:"type:varchar(128);not null" json:"name"`
	ClientName *string `gorm:"type:varchar(128)" json:"clientName,omitempty"`
	Archived   bool    `gorm:"not null;default:false" json:"archived"`
}
