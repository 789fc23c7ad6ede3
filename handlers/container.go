package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/response"
	"github.com/gpulab/manager-go/services"
)

type Handlers struct {
	Worker   *WorkerHandler
	User     *UserHandler
	Resource *ResourceHandler
	Job      *JobHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Worker:   NewWorkerHandler(svc.Registry),
		User:     NewUserHandler(svc.User),
		Resource: NewResourceHandler(svc.Resource),
		Job:      NewJobHandler(svc.Job),
	}
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Precondition failures are expected terminal outcomes, never retried here.
func respondServiceError(c *gin.Context, err error) {
	var notRegistered *services.NotRegisteredError
	switch {
	case errors.As(err, &notRegistered):
		c.JSON(http.StatusForbidden, response.NotRegisteredResponse{
			Error:  err.Error(),
			Admins: formatAdmins(notRegistered.Admins),
		})
	case errors.Is(err, services.ErrNotRegistered):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, services.ErrCredentialInUse),
		errors.Is(err, services.ErrWorkerCollision),
		errors.Is(err, services.ErrAlreadyEnded):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrCredentialMissing):
		c.JSON(http.StatusPreconditionFailed, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrEngine):
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

// formatAdmins keeps only admins with a visible username, the way humans can
// actually contact them.
func formatAdmins(admins []models.User) []response.AdminInfo {
	out := make([]response.AdminInfo, 0, len(admins))
	for _, admin := range admins {
		if admin.Username == nil {
			continue
		}
		out = append(out, response.AdminInfo{UserID: admin.ID, Username: *admin.Username})
	}
	return out
}
