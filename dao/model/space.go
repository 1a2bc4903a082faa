package model

type Space struct {
	Base
	WorkspaceID string `gorm:"type:varchar(36);not null;index;comment:owning workspace" json:"workspaceId"`
	Name        string `gorm:"type:varchar(128);not null" json:"name"`
	Color       string `gorm:"type:varchar(16)" json:"color"`
	Icon        string `gorm:"type:varchar(64)" json:"icon"`
}
