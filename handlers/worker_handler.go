package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/response"
	"github.com/gpulab/manager-go/services"
)

type WorkerHandler struct {
	svc *services.RegistryService
}

func NewWorkerHandler(svc *services.RegistryService) *WorkerHandler {
	return &WorkerHandler{svc: svc}
}

// Join godoc
// @Summary Worker announce (idempotent)
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.WorkerJoinInput true "Worker inventory"
// @Success 200 {object} response.WorkerResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /join [post]
func (h *WorkerHandler) Join(c *gin.Context) {
	var input dto.WorkerJoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if input.ExternalIP == "" {
		input.ExternalIP = c.ClientIP()
	}

	worker, gpus, err := h.svc.RegisterWorker(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.WorkerResponse{
		Message: "registration successful",
		Worker:  worker,
		GPUs:    gpus,
	})
}
