package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/response"
	"github.com/gpulab/manager-go/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Register a user at plain user level
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserInput true "Target user"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.Register(input.RequestUser, input.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "registration successful"})
}

// SetPermission godoc
// @Summary Change a user's permission level
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SetPermissionInput true "Target user and level"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/permission [post]
func (h *UserHandler) SetPermission(c *gin.Context) {
	var input dto.SetPermissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	level, err := models.ParsePermissionLevel(input.PermissionLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.SetPermission(input.RequestUser, input.UserID, level); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "permission updated"})
}

// SetCredential godoc
// @Summary Store the caller's public ssh key
// @Tags credentials
// @Accept json
// @Produce json
// @Param request body dto.SetCredentialInput true "Public key"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /credentials [post]
func (h *UserHandler) SetCredential(c *gin.Context) {
	var input dto.SetCredentialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.SetCredential(c.Request.Context(), input.RequestUser, input.PublicKey); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "credential stored"})
}

// CheckCredential godoc
// @Summary Report whether the caller has a stored key
// @Tags credentials
// @Accept json
// @Produce json
// @Param request body dto.CheckCredentialInput true "Acting user"
// @Success 200 {object} response.CredentialStatusResponse
// @Router /credentials/check [post]
func (h *UserHandler) CheckCredential(c *gin.Context) {
	var input dto.CheckCredentialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	isSet, err := h.svc.CheckCredential(c.Request.Context(), input.RequestUser)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CredentialStatusResponse{IsSet: isSet})
}
