package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
	"github.com/gpulab/manager-go/utils"
)

// RegistryService keeps the directory of workers and their GPU inventory.
type RegistryService struct {
	Repos *repositories.Repos
}

func NewRegistryService(repos *repositories.Repos) *RegistryService {
	return &RegistryService{Repos: repos}
}

// RegisterWorker handles a worker announce. Re-announcing under the same
// join id updates IP/metadata/storage root in place; the same hostname under
// a different join id means two machines claim one name and is rejected, as
// is a known join id showing up under a new hostname.
// GPUs are matched by uuid and only created when unknown, so accumulated
// fields on known cards survive re-announces.
func (s *RegistryService) RegisterWorker(input dto.WorkerJoinInput) (models.Worker, []models.GPU, error) {
	worker, err := s.Repos.Worker.GetByHostname(input.Hostname)
	switch {
	case err == nil:
		if worker.JoinID != input.JoinID {
			return models.Worker{}, nil, ErrWorkerCollision
		}
		logrus.WithField("hostname", input.Hostname).Info("updating existing worker")
		worker.ExternalIP = input.ExternalIP
		worker.LocalStorageRoot = input.LocalStorageRoot
		worker.Info = utils.ToJSON(input.Info)
		if err := s.Repos.Worker.Save(&worker); err != nil {
			return models.Worker{}, nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// The join id may already be bound to a row under a different
		// hostname (machine renamed). Creating would die on the join_id
		// unique index, so surface the conflict instead.
		if _, err := s.Repos.Worker.GetByJoinID(input.JoinID); err == nil {
			return models.Worker{}, nil, ErrWorkerCollision
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Worker{}, nil, err
		}
		logrus.WithField("hostname", input.Hostname).Info("registering new worker")
		worker = models.Worker{
			Hostname:         input.Hostname,
			JoinID:           input.JoinID,
			ExternalIP:       input.ExternalIP,
			LocalStorageRoot: input.LocalStorageRoot,
			Info:             utils.ToJSON(input.Info),
		}
		if err := s.Repos.Worker.Create(&worker); err != nil {
			return models.Worker{}, nil, err
		}
	default:
		return models.Worker{}, nil, err
	}

	for _, g := range input.GPUs {
		_, err := s.Repos.GPU.GetByUUID(g.UUID)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Worker{}, nil, err
		}
		gpu := models.GPU{
			UUID:           g.UUID,
			WorkerHostname: worker.Hostname,
			Index:          g.Index,
			Name:           g.Name,
			TotalMemory:    g.TotalMemory,
			Info:           utils.ToJSON(g.Info),
		}
		if err := s.Repos.GPU.Create(&gpu); err != nil {
			return models.Worker{}, nil, err
		}
	}

	gpus, err := s.Repos.GPU.ListByWorker(worker.Hostname)
	if err != nil {
		return models.Worker{}, nil, err
	}
	return worker, gpus, nil
}
