package repositories

import (
	"time"

	"github.com/gpulab/manager-go/db"
	"github.com/gpulab/manager-go/models"
)

type JobRepo interface {
	Create(job *models.Job) error
	Save(job *models.Job) error
	GetByID(id uint) (models.Job, error)
	ListByUser(userID string) ([]models.Job, error)
	ListActive() ([]models.Job, error)
	ListExpired(now time.Time) ([]models.Job, error)
	ActiveGPUUUIDs() ([]string, error)
}

type DBJobRepo struct{}

func (r *DBJobRepo) Create(job *models.Job) error {
	return db.DB.Create(job).Error
}

func (r *DBJobRepo) Save(job *models.Job) error {
	return db.DB.Save(job).Error
}

func (r *DBJobRepo) GetByID(id uint) (models.Job, error) {
	var job models.Job
	err := db.DB.First(&job, id).Error
	return job, err
}

func (r *DBJobRepo) ListByUser(userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.DB.
		Where("user_id = ?", userID).
		Order("start_time desc").
		Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) ListActive() ([]models.Job, error) {
	var jobs []models.Job
	err := db.DB.Where("end_time IS NULL").Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) ListExpired(now time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := db.DB.
		Where("end_time IS NULL AND expected_end_time < ?", now).
		Find(&jobs).Error
	return jobs, err
}

// ActiveGPUUUIDs flattens the pinned uuid sets of every active job. This is
// the busy set of the resource catalog, recomputed on every call rather than
// cached.
func (r *DBJobRepo) ActiveGPUUUIDs() ([]string, error) {
	jobs, err := r.ListActive()
	if err != nil {
		return nil, err
	}
	var uuids []string
	for _, job := range jobs {
		uuids = append(uuids, job.GPUUUIDs...)
	}
	return uuids, nil
}
