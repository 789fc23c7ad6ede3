package models

import "time"

// User identity comes from the external chat platform; ID is its stable
// user id. Rows are never hard-deleted.
type User struct {
	ID              string          `gorm:"primaryKey;size:64;column:id" json:"id"`
	Username        *string         `gorm:"size:64;uniqueIndex" json:"username"`
	FullName        string          `gorm:"size:128;column:full_name" json:"full_name"`
	// No default tag here: PermissionOwner is the zero value and a column
	// default would silently replace it on insert. Creators set the level
	// explicitly.
	PermissionLevel PermissionLevel `gorm:"not null;column:permission_level" json:"permission_level"`

	// CredentialRef is the handle of the user's public key in the external
	// credential store; empty when no key has been set.
	CredentialRef string `gorm:"size:128;column:credential_ref" json:"credential_ref"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
