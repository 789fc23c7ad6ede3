package repositories

import (
	"github.com/gpulab/manager-go/db"
	"github.com/gpulab/manager-go/models"
)

type WorkerRepo interface {
	GetByHostname(hostname string) (models.Worker, error)
	GetByJoinID(joinID string) (models.Worker, error)
	Create(worker *models.Worker) error
	Save(worker *models.Worker) error
	ListByHostnames(hostnames []string) ([]models.Worker, error)
}

type DBWorkerRepo struct{}

func (r *DBWorkerRepo) GetByHostname(hostname string) (models.Worker, error) {
	var worker models.Worker
	err := db.DB.First(&worker, "hostname = ?", hostname).Error
	return worker, err
}

func (r *DBWorkerRepo) GetByJoinID(joinID string) (models.Worker, error) {
	var worker models.Worker
	err := db.DB.First(&worker, "join_id = ?", joinID).Error
	return worker, err
}

func (r *DBWorkerRepo) Create(worker *models.Worker) error {
	return db.DB.Create(worker).Error
}

func (r *DBWorkerRepo) Save(worker *models.Worker) error {
	return db.DB.Save(worker).Error
}

func (r *DBWorkerRepo) ListByHostnames(hostnames []string) ([]models.Worker, error) {
	var workers []models.Worker
	if len(hostnames) == 0 {
		return workers, nil
	}
	err := db.DB.Where("hostname IN ?", hostnames).Find(&workers).Error
	return workers, err
}
