package repositories

import (
	"github.com/gpulab/manager-go/db"
	"github.com/gpulab/manager-go/models"
)

type GPURepo interface {
	GetByUUID(uuid string) (models.GPU, error)
	Create(gpu *models.GPU) error
	ListByWorker(hostname string) ([]models.GPU, error)
	ListByWorkers(hostnames []string) ([]models.GPU, error)
}

type DBGPURepo struct{}

func (r *DBGPURepo) GetByUUID(uuid string) (models.GPU, error) {
	var gpu models.GPU
	err := db.DB.First(&gpu, "uuid = ?", uuid).Error
	return gpu, err
}

func (r *DBGPURepo) Create(gpu *models.GPU) error {
	return db.DB.Create(gpu).Error
}

func (r *DBGPURepo) ListByWorker(hostname string) ([]models.GPU, error) {
	var gpus []models.GPU
	err := db.DB.
		Where("worker_hostname = ?", hostname).
		Order("gpu_index asc").
		Find(&gpus).Error
	return gpus, err
}

func (r *DBGPURepo) ListByWorkers(hostnames []string) ([]models.GPU, error) {
	var gpus []models.GPU
	if len(hostnames) == 0 {
		return gpus, nil
	}
	err := db.DB.
		Where("worker_hostname IN ?", hostnames).
		Order("worker_hostname asc, gpu_index asc").
		Find(&gpus).Error
	return gpus, err
}
