package models

import (
	"time"

	"gorm.io/datatypes"
)

// GPU identity is the vendor uuid, stable across worker restarts and
// renumbering; (worker, index) stays unique for display ordering only.
// Busy state is never stored here, it is derived from the job ledger.
type GPU struct {
	UUID           string         `gorm:"primaryKey;size:64;column:uuid" json:"uuid"`
	WorkerHostname string         `gorm:"not null;size:64;uniqueIndex:idx_gpus_worker_index;column:worker_hostname" json:"worker_hostname"`
	Index          int            `gorm:"not null;uniqueIndex:idx_gpus_worker_index;column:gpu_index" json:"index"`
	Name           string         `gorm:"size:128" json:"name"`
	TotalMemory    int64          `gorm:"column:total_memory" json:"total_memory"`
	Info           datatypes.JSON `gorm:"column:info" json:"info"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Worker Worker `gorm:"foreignKey:WorkerHostname;references:Hostname" json:"-"`
}

func (GPU) TableName() string {
	return "gpus"
}
