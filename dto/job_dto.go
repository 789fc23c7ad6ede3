package dto

type MountInput struct {
	Source   string `json:"source" binding:"required"`
	Target   string `json:"target" binding:"required"`
	ReadOnly bool   `json:"read_only"`
}

type DispatchJobInput struct {
	RequestUser    RequestUser  `json:"request_user" binding:"required"`
	Image          string       `json:"image" binding:"required"`
	WorkerHostname string       `json:"worker_hostname" binding:"required"`
	GPUUUIDs       []string     `json:"gpu_uuids" binding:"required,min=1"`
	DurationHours  int          `json:"duration_hours" binding:"required,min=1"`
	Mounts         []MountInput `json:"mounts"`
}

type ListJobsInput struct {
	RequestUser RequestUser `json:"request_user" binding:"required"`
}

type RemoveJobInput struct {
	RequestUser RequestUser `json:"request_user" binding:"required"`
}

type ListResourcesInput struct {
	RequestUser RequestUser `json:"request_user" binding:"required"`
}
