package model

import "gorm.io/datatypes"

// Profile mirrors a user of the external auth provider. The id is the token subject.
type Profile struct {
	Base
	Name            string                      `gorm:"type:varchar(128);not null" json:"name"`
	Email           *string                     `gorm:"type:varchar(256);uniqueIndex" json:"email,omitempty"`
	Initials        string                      `gorm:"type:varchar(8)" json:"initials"`
	Role            Role                        `gorm:"type:varchar(16);not null;default:member" json:"role"`
	AvatarURL       *string                     `gorm:"type:varchar(512)" json:"avatarUrl,omitempty"`
	ClientFolderIDs datatypes.JSONSlice[string] `gorm:"type:jsonb;comment:folders visible in the portal" json:"clientFolderIds"`
}
