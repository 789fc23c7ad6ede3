package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/engine"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
	"github.com/gpulab/manager-go/utils"
)

// JobService is the allocation and dispatch coordinator.
type JobService struct {
	Repos  *repositories.Repos
	Auth   *AuthService
	Engine engine.Engine
}

func NewJobService(repos *repositories.Repos, auth *AuthService, eng engine.Engine) *JobService {
	return &JobService{Repos: repos, Auth: auth, Engine: eng}
}

// Dispatch validates the request, places the container with the chosen
// worker and GPUs pinned, and on confirmed placement writes the job row.
// The row is the single logical write after which the GPUs count as busy;
// nothing is reserved beforehand, concurrent dispatches racing for the same
// GPU are settled by the engine's own placement semantics.
func (s *JobService) Dispatch(ctx context.Context, input dto.DispatchJobInput) (models.Job, error) {
	user, err := s.Auth.Authorize(input.RequestUser, models.PermissionUser)
	if err != nil {
		return models.Job{}, err
	}

	worker, err := s.Repos.Worker.GetByHostname(input.WorkerHostname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Job{}, fmt.Errorf("worker %s: %w", input.WorkerHostname, ErrNotFound)
		}
		return models.Job{}, err
	}

	if user.CredentialRef == "" {
		return models.Job{}, ErrCredentialMissing
	}
	// The local handle may have drifted from the external store; trust the
	// store, not the cache.
	if _, err := s.Engine.GetCredential(ctx, user.CredentialRef); err != nil {
		if errors.Is(err, engine.ErrCredentialNotFound) {
			return models.Job{}, ErrCredentialMissing
		}
		return models.Job{}, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	name := fmt.Sprintf("job-%s", uuid.NewString()[:8])
	now := time.Now().UTC()

	mounts := make([]engine.Mount, 0, len(input.Mounts))
	for _, m := range input.Mounts {
		mounts = append(mounts, engine.Mount{Source: m.Source, Target: m.Target, ReadOnly: m.ReadOnly})
	}

	handle, err := s.Engine.CreatePlacement(ctx, engine.PlacementSpec{
		Name:          name,
		Image:         input.Image,
		NodeHostname:  worker.Hostname,
		GPUUUIDs:      input.GPUUUIDs,
		CredentialRef: user.CredentialRef,
		OwnerID:       user.ID,
		Mounts:        mounts,
	})
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	job := models.Job{
		Name:            name,
		UserID:          user.ID,
		Image:           input.Image,
		WorkerHostname:  worker.Hostname,
		GPUUUIDs:        input.GPUUUIDs,
		Mounts:          utils.ToJSON(input.Mounts),
		ServiceHandle:   handle,
		StartTime:       now,
		ExpectedEndTime: now.Add(time.Duration(input.DurationHours) * time.Hour),
	}
	if err := s.Repos.Job.Create(&job); err != nil {
		return models.Job{}, err
	}

	logrus.WithFields(logrus.Fields{
		"job":    job.Name,
		"user":   user.ID,
		"worker": worker.Hostname,
		"gpus":   job.GPUUUIDs,
	}).Info("dispatched job")
	return job, nil
}

// Remove tears down a job. Owner or admin-and-above only. Teardown runs
// before the ledger stamp: if the engine refuses, the row stays active so a
// retry is possible instead of losing track of a running placement.
func (s *JobService) Remove(ctx context.Context, ru dto.RequestUser, jobID uint) error {
	user, err := s.Auth.Authorize(ru, models.PermissionUser)
	if err != nil {
		return err
	}

	job, err := s.Repos.Job.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if job.UserID != user.ID && !user.PermissionLevel.AtLeast(models.PermissionAdmin) {
		return ErrPermissionDenied
	}
	if !job.Active() {
		return ErrAlreadyEnded
	}

	if err := s.Engine.RemovePlacement(ctx, job.ServiceHandle); err != nil {
		return fmt.Errorf("%w: %v", ErrEngine, err)
	}

	now := time.Now().UTC()
	job.EndTime = &now
	if err := s.Repos.Job.Save(&job); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"job": job.Name, "by": user.ID}).Info("removed job")
	return nil
}

// List merges the caller's ledger rows with live placement state. Ended jobs
// have no engine record and are reported as such.
func (s *JobService) List(ctx context.Context, ru dto.RequestUser) ([]models.JobView, error) {
	user, err := s.Auth.Authorize(ru, models.PermissionUser)
	if err != nil {
		return nil, err
	}

	jobs, err := s.Repos.Job.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]models.JobView, 0, len(jobs))
	for _, job := range jobs {
		view := models.JobView{Job: job}
		if !job.Active() {
			view.Status = "Ended"
			views = append(views, view)
			continue
		}
		status, err := s.Engine.GetPlacement(ctx, job.ServiceHandle)
		switch {
		case err == nil:
			view.Status = status.Phase
			view.Ports = status.Ports
		case errors.Is(err, engine.ErrPlacementNotFound):
			view.Status = "Missing"
		default:
			return nil, fmt.Errorf("%w: %v", ErrEngine, err)
		}
		views = append(views, view)
	}
	return views, nil
}

// SweepExpired ends active jobs past their expected end time. Failed
// teardowns keep their rows active and are retried on the next sweep.
func (s *JobService) SweepExpired(ctx context.Context) (int, error) {
	expired, err := s.Repos.Job.ListExpired(time.Now().UTC())
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, job := range expired {
		if err := s.Engine.RemovePlacement(ctx, job.ServiceHandle); err != nil {
			logrus.WithError(err).WithField("job", job.Name).Warn("expiry teardown failed, will retry")
			continue
		}
		now := time.Now().UTC()
		job.EndTime = &now
		if err := s.Repos.Job.Save(&job); err != nil {
			logrus.WithError(err).WithField("job", job.Name).Warn("failed to stamp expired job")
			continue
		}
		logrus.WithField("job", job.Name).Info("expired job swept")
		swept++
	}
	return swept, nil
}
