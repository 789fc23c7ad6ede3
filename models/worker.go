package models

import (
	"time"

	"gorm.io/datatypes"
)

// Worker is a machine contributing GPU capacity. Rows are never deleted;
// stale workers drop out through live online filtering instead.
type Worker struct {
	Hostname   string `gorm:"primaryKey;size:64" json:"hostname"`
	JoinID     string `gorm:"not null;uniqueIndex;size:128;column:join_id" json:"join_id"`
	ExternalIP string `gorm:"size:45;column:external_ip" json:"external_ip"`

	// LocalStorageRoot is set only when the worker exports a shared
	// filesystem.
	LocalStorageRoot *string        `gorm:"size:255;column:local_storage_root" json:"local_storage_root"`
	Info             datatypes.JSON `gorm:"column:info" json:"info"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Worker) TableName() string {
	return "workers"
}
