package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/response"
	"github.com/gpulab/manager-go/services"
	"github.com/gpulab/manager-go/utils"
)

type JobHandler struct {
	svc *services.JobService
}

func NewJobHandler(svc *services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// Dispatch godoc
// @Summary Dispatch a job against a worker/GPU pair
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.DispatchJobInput true "Job request"
// @Success 201 {object} response.DispatchResponse
// @Failure 403 {object} response.NotRegisteredResponse
// @Failure 412 {object} response.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Dispatch(c *gin.Context) {
	var input dto.DispatchJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.svc.Dispatch(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.DispatchResponse{Message: "dispatch ok", Job: job})
}

// List godoc
// @Summary List the caller's jobs with live placement state merged in
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.ListJobsInput true "Acting user"
// @Success 200 {array} models.JobView
// @Router /jobs/list [post]
func (h *JobHandler) List(c *gin.Context) {
	var input dto.ListJobsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.svc.List(c.Request.Context(), input.RequestUser)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Remove godoc
// @Summary Tear down a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path uint true "Job ID"
// @Param request body dto.RemoveJobInput true "Acting user"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Remove(c *gin.Context) {
	jobID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid job id"})
		return
	}

	var input dto.RemoveJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), input.RequestUser, jobID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "job removed"})
}
