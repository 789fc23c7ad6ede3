package dto

type GPUInput struct {
	UUID        string         `json:"uuid" binding:"required"`
	Index       int            `json:"index"`
	Name        string         `json:"name" binding:"required"`
	TotalMemory int64          `json:"total_memory"`
	Info        map[string]any `json:"info"`
}

type WorkerJoinInput struct {
	Hostname string `json:"hostname" binding:"required"`
	JoinID   string `json:"join_id" binding:"required"`

	// ExternalIP may be omitted; the handler falls back to the request peer
	// address.
	ExternalIP       string         `json:"external_ip"`
	LocalStorageRoot *string        `json:"local_storage_root"`
	GPUs             []GPUInput     `json:"gpus"`
	Info             map[string]any `json:"info"`
}
