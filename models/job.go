package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Job is the ledger record of one dispatched placement. While EndTime is
// null every uuid in GPUUUIDs is busy. Rows are never deleted; removal and
// expiry only stamp EndTime.
type Job struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	UserID         string         `gorm:"not null;size:64;index;column:user_id" json:"user_id"`
	Image          string         `gorm:"size:255;not null" json:"image"`
	WorkerHostname string         `gorm:"not null;size:64;column:worker_hostname" json:"worker_hostname"`
	GPUUUIDs       pq.StringArray `gorm:"type:text[];column:gpu_uuids" json:"gpu_uuids"`
	Mounts         datatypes.JSON `gorm:"column:mounts" json:"mounts"`

	// ServiceHandle correlates to the orchestration engine's placement
	// record.
	ServiceHandle string `gorm:"size:128;column:service_handle" json:"service_handle"`

	StartTime       time.Time  `gorm:"not null;column:start_time" json:"start_time"`
	ExpectedEndTime time.Time  `gorm:"not null;column:expected_end_time" json:"expected_end_time"`
	EndTime         *time.Time `gorm:"column:end_time" json:"end_time"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) Active() bool {
	return j.EndTime == nil
}

// JobView merges a ledger row with the live placement state; the ledger has
// history, the engine has runtime state.
type JobView struct {
	Job
	Status string  `json:"status"`
	Ports  []int32 `json:"ports,omitempty"`
}
