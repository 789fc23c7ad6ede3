package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/response"
	"github.com/gpulab/manager-go/services"
)

type ResourceHandler struct {
	svc *services.ResourceService
}

func NewResourceHandler(svc *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// List godoc
// @Summary List online workers and their free GPUs
// @Tags resources
// @Accept json
// @Produce json
// @Param request body dto.ListResourcesInput true "Acting user"
// @Success 200 {object} response.ResourcesResponse
// @Failure 403 {object} response.NotRegisteredResponse
// @Router /resources/list [post]
func (h *ResourceHandler) List(c *gin.Context) {
	var input dto.ListResourcesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	workers, gpus, err := h.svc.ListAvailable(c.Request.Context(), input.RequestUser)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ResourcesResponse{Workers: workers, GPUs: gpus})
}
