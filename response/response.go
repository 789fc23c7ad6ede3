package response

import "github.com/gpulab/manager-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AdminInfo struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// NotRegisteredResponse tells an unregistered caller whom to contact.
type NotRegisteredResponse struct {
	Error  string      `json:"error"`
	Admins []AdminInfo `json:"admins"`
}

type WorkerResponse struct {
	Message string       `json:"message"`
	Worker  models.Worker `json:"worker"`
	GPUs    []models.GPU  `json:"gpus"`
}

type ResourcesResponse struct {
	Workers map[string]models.Worker `json:"workers"`
	GPUs    map[string][]models.GPU  `json:"gpus"`
}

type DispatchResponse struct {
	Message string     `json:"message"`
	Job     models.Job `json:"job"`
}

type CredentialStatusResponse struct {
	IsSet bool `json:"is_set"`
}
