package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
	"github.com/gpulab/manager-go/repositories/mock_repositories"
)

// --------------------- Setup ---------------------
func setupRegistryServiceMocks(t *testing.T) (*RegistryService, *mock_repositories.MockWorkerRepo, *mock_repositories.MockGPURepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockWorker := mock_repositories.NewMockWorkerRepo(ctrl)
	mockGPU := mock_repositories.NewMockGPURepo(ctrl)
	repos := &repositories.Repos{
		Worker: mockWorker,
		GPU:    mockGPU,
	}
	svc := NewRegistryService(repos)
	return svc, mockWorker, mockGPU
}

// --------------------- RegisterWorker ---------------------
func TestRegisterWorker_NewWorker(t *testing.T) {
	svc, mockWorker, mockGPU := setupRegistryServiceMocks(t)

	input := dto.WorkerJoinInput{
		Hostname:   "node-a",
		JoinID:     "join-1",
		ExternalIP: "10.0.0.5",
		GPUs: []dto.GPUInput{
			{UUID: "GPU-aaa", Index: 0, Name: "RTX 4090", TotalMemory: 24576},
		},
	}

	mockWorker.EXPECT().GetByHostname("node-a").Return(models.Worker{}, gorm.ErrRecordNotFound)
	mockWorker.EXPECT().GetByJoinID("join-1").Return(models.Worker{}, gorm.ErrRecordNotFound)
	mockWorker.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *models.Worker) error {
		assert.Equal(t, "node-a", w.Hostname)
		assert.Equal(t, "join-1", w.JoinID)
		assert.Equal(t, "10.0.0.5", w.ExternalIP)
		return nil
	})
	mockGPU.EXPECT().GetByUUID("GPU-aaa").Return(models.GPU{}, gorm.ErrRecordNotFound)
	mockGPU.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.GPU) error {
		assert.Equal(t, "GPU-aaa", g.UUID)
		assert.Equal(t, "node-a", g.WorkerHostname)
		return nil
	})
	mockGPU.EXPECT().ListByWorker("node-a").Return([]models.GPU{{UUID: "GPU-aaa", WorkerHostname: "node-a"}}, nil)

	worker, gpus, err := svc.RegisterWorker(input)
	assert.NoError(t, err)
	assert.Equal(t, "node-a", worker.Hostname)
	assert.Len(t, gpus, 1)
}

func TestRegisterWorker_RejoinSameJoinID(t *testing.T) {
	svc, mockWorker, mockGPU := setupRegistryServiceMocks(t)

	existing := models.Worker{Hostname: "node-a", JoinID: "join-1", ExternalIP: "10.0.0.5"}
	input := dto.WorkerJoinInput{
		Hostname:   "node-a",
		JoinID:     "join-1",
		ExternalIP: "10.0.0.9",
		GPUs:       []dto.GPUInput{{UUID: "GPU-aaa", Name: "RTX 4090"}},
	}

	mockWorker.EXPECT().GetByHostname("node-a").Return(existing, nil)
	mockWorker.EXPECT().Save(gomock.Any()).DoAndReturn(func(w *models.Worker) error {
		assert.Equal(t, "10.0.0.9", w.ExternalIP)
		return nil
	})
	// A known card is left untouched on re-announce.
	mockGPU.EXPECT().GetByUUID("GPU-aaa").Return(models.GPU{UUID: "GPU-aaa"}, nil)
	mockGPU.EXPECT().ListByWorker("node-a").Return([]models.GPU{{UUID: "GPU-aaa"}}, nil)

	worker, gpus, err := svc.RegisterWorker(input)
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.9", worker.ExternalIP)
	assert.Len(t, gpus, 1)
}

func TestRegisterWorker_Fail_HostnameCollision(t *testing.T) {
	svc, mockWorker, _ := setupRegistryServiceMocks(t)

	existing := models.Worker{Hostname: "node-a", JoinID: "join-1"}
	mockWorker.EXPECT().GetByHostname("node-a").Return(existing, nil)

	_, _, err := svc.RegisterWorker(dto.WorkerJoinInput{Hostname: "node-a", JoinID: "join-other"})
	assert.ErrorIs(t, err, ErrWorkerCollision)
}

func TestRegisterWorker_Fail_JoinIDBoundToOtherHostname(t *testing.T) {
	svc, mockWorker, _ := setupRegistryServiceMocks(t)

	// A renamed machine announces a fresh hostname but its join id is still
	// bound to the old row; a conflict, not a raw unique-index error.
	mockWorker.EXPECT().GetByHostname("node-renamed").Return(models.Worker{}, gorm.ErrRecordNotFound)
	mockWorker.EXPECT().GetByJoinID("join-1").Return(models.Worker{Hostname: "node-a", JoinID: "join-1"}, nil)

	_, _, err := svc.RegisterWorker(dto.WorkerJoinInput{Hostname: "node-renamed", JoinID: "join-1"})
	assert.ErrorIs(t, err, ErrWorkerCollision)
}

func TestRegisterWorker_NewCardsOnKnownWorker(t *testing.T) {
	svc, mockWorker, mockGPU := setupRegistryServiceMocks(t)

	existing := models.Worker{Hostname: "node-a", JoinID: "join-1"}
	input := dto.WorkerJoinInput{
		Hostname: "node-a",
		JoinID:   "join-1",
		GPUs: []dto.GPUInput{
			{UUID: "GPU-aaa", Name: "RTX 4090"},
			{UUID: "GPU-bbb", Index: 1, Name: "RTX 4090"},
		},
	}

	mockWorker.EXPECT().GetByHostname("node-a").Return(existing, nil)
	mockWorker.EXPECT().Save(gomock.Any()).Return(nil)
	mockGPU.EXPECT().GetByUUID("GPU-aaa").Return(models.GPU{UUID: "GPU-aaa"}, nil)
	mockGPU.EXPECT().GetByUUID("GPU-bbb").Return(models.GPU{}, gorm.ErrRecordNotFound)
	mockGPU.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.GPU) error {
		assert.Equal(t, "GPU-bbb", g.UUID)
		assert.Equal(t, 1, g.Index)
		return nil
	})
	mockGPU.EXPECT().ListByWorker("node-a").Return([]models.GPU{{UUID: "GPU-aaa"}, {UUID: "GPU-bbb"}}, nil)

	_, gpus, err := svc.RegisterWorker(input)
	assert.NoError(t, err)
	assert.Len(t, gpus, 2)
}
