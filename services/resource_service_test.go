package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/engine"
	"github.com/gpulab/manager-go/engine/mock_engine"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
	"github.com/gpulab/manager-go/repositories/mock_repositories"
)

type resourceServiceMocks struct {
	user   *mock_repositories.MockUserRepo
	worker *mock_repositories.MockWorkerRepo
	gpu    *mock_repositories.MockGPURepo
	job    *mock_repositories.MockJobRepo
	engine *mock_engine.MockEngine
}

// --------------------- Setup ---------------------
func setupResourceServiceMocks(t *testing.T) (*ResourceService, resourceServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := resourceServiceMocks{
		user:   mock_repositories.NewMockUserRepo(ctrl),
		worker: mock_repositories.NewMockWorkerRepo(ctrl),
		gpu:    mock_repositories.NewMockGPURepo(ctrl),
		job:    mock_repositories.NewMockJobRepo(ctrl),
		engine: mock_engine.NewMockEngine(ctrl),
	}
	repos := &repositories.Repos{
		User:   m.user,
		Worker: m.worker,
		GPU:    m.gpu,
		Job:    m.job,
	}
	auth := NewAuthService(repos)
	svc := NewResourceService(repos, auth, m.engine)
	return svc, m
}

// --------------------- ListAvailable ---------------------
func TestListAvailable_Success(t *testing.T) {
	svc, m := setupResourceServiceMocks(t)
	ctx := context.Background()

	expectCaller(m.user, models.User{ID: "alice", PermissionLevel: models.PermissionUser})
	m.engine.EXPECT().ListNodes(ctx).Return([]engine.NodeStatus{
		{Hostname: "node-a", Ready: true, Schedulable: true},
		{Hostname: "node-b", Ready: false, Schedulable: true},
		{Hostname: "node-c", Ready: true, Schedulable: false},
	}, nil)
	m.job.EXPECT().ActiveGPUUUIDs().Return([]string{"GPU-busy"}, nil)
	m.gpu.EXPECT().ListByWorkers([]string{"node-a"}).Return([]models.GPU{
		{UUID: "GPU-busy", WorkerHostname: "node-a", Index: 0},
		{UUID: "GPU-free", WorkerHostname: "node-a", Index: 1},
	}, nil)
	m.worker.EXPECT().ListByHostnames([]string{"node-a"}).Return([]models.Worker{
		{Hostname: "node-a", ExternalIP: "10.0.0.5"},
	}, nil)

	workers, free, err := svc.ListAvailable(ctx, dto.RequestUser{UserID: "alice"})
	assert.NoError(t, err)
	assert.Len(t, workers, 1)
	assert.Equal(t, "10.0.0.5", workers["node-a"].ExternalIP)
	assert.Len(t, free["node-a"], 1)
	assert.Equal(t, "GPU-free", free["node-a"][0].UUID)
}

func TestListAvailable_AllGPUsBusy(t *testing.T) {
	svc, m := setupResourceServiceMocks(t)
	ctx := context.Background()

	expectCaller(m.user, models.User{ID: "alice", PermissionLevel: models.PermissionUser})
	m.engine.EXPECT().ListNodes(ctx).Return([]engine.NodeStatus{
		{Hostname: "node-a", Ready: true, Schedulable: true},
	}, nil)
	m.job.EXPECT().ActiveGPUUUIDs().Return([]string{"GPU-aaa"}, nil)
	m.gpu.EXPECT().ListByWorkers([]string{"node-a"}).Return([]models.GPU{
		{UUID: "GPU-aaa", WorkerHostname: "node-a"},
	}, nil)
	// A worker with no free card left is dropped from the view entirely.
	m.worker.EXPECT().ListByHostnames([]string{}).Return(nil, nil)

	workers, free, err := svc.ListAvailable(ctx, dto.RequestUser{UserID: "alice"})
	assert.NoError(t, err)
	assert.Empty(t, workers)
	assert.Empty(t, free)
}

func TestListAvailable_Fail_EngineError(t *testing.T) {
	svc, m := setupResourceServiceMocks(t)
	ctx := context.Background()

	expectCaller(m.user, models.User{ID: "alice", PermissionLevel: models.PermissionUser})
	m.engine.EXPECT().ListNodes(ctx).Return(nil, errors.New("apiserver unreachable"))

	_, _, err := svc.ListAvailable(ctx, dto.RequestUser{UserID: "alice"})
	assert.ErrorIs(t, err, ErrEngine)
}
