package services

import (
	"context"
	"fmt"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/engine"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
)

// ResourceService computes the free-GPU view. Node liveness and the busy set
// are read fresh on every call; there is deliberately no cached or persisted
// "current job" pointer that could drift from the ledger.
type ResourceService struct {
	Repos  *repositories.Repos
	Auth   *AuthService
	Engine engine.Engine
}

func NewResourceService(repos *repositories.Repos, auth *AuthService, eng engine.Engine) *ResourceService {
	return &ResourceService{Repos: repos, Auth: auth, Engine: eng}
}

// ListAvailable returns, per online worker, the GPUs not pinned by any
// active job.
func (s *ResourceService) ListAvailable(ctx context.Context, ru dto.RequestUser) (map[string]models.Worker, map[string][]models.GPU, error) {
	if _, err := s.Auth.Authorize(ru, models.PermissionUser); err != nil {
		return nil, nil, err
	}

	nodes, err := s.Engine.ListNodes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	var online []string
	for _, node := range nodes {
		if node.Online() {
			online = append(online, node.Hostname)
		}
	}

	busyUUIDs, err := s.Repos.Job.ActiveGPUUUIDs()
	if err != nil {
		return nil, nil, err
	}
	busy := make(map[string]bool, len(busyUUIDs))
	for _, uuid := range busyUUIDs {
		busy[uuid] = true
	}

	gpus, err := s.Repos.GPU.ListByWorkers(online)
	if err != nil {
		return nil, nil, err
	}

	free := make(map[string][]models.GPU)
	for _, gpu := range gpus {
		if busy[gpu.UUID] {
			continue
		}
		free[gpu.WorkerHostname] = append(free[gpu.WorkerHostname], gpu)
	}

	hostnames := make([]string, 0, len(free))
	for hostname := range free {
		hostnames = append(hostnames, hostname)
	}
	workerRows, err := s.Repos.Worker.ListByHostnames(hostnames)
	if err != nil {
		return nil, nil, err
	}
	workers := make(map[string]models.Worker, len(workerRows))
	for _, w := range workerRows {
		workers[w.Hostname] = w
	}

	return workers, free, nil
}
