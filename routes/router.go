package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/handlers"
	"github.com/gpulab/manager-go/middleware"
	"github.com/gpulab/manager-go/services"
)

func RegisterRoutes(r *gin.Engine, svc *services.Services) {
	h := handlers.New(svc)

	r.Use(middleware.CORSMiddleware())

	// Worker agents announce with their own shared token.
	r.POST("/join", middleware.WorkerAuth(), h.Worker.Join)

	api := r.Group("/", middleware.GatewayAuth())
	{
		users := api.Group("/users")
		{
			users.POST("/register", h.User.Register)
			users.POST("/permission", h.User.SetPermission)
		}
		credentials := api.Group("/credentials")
		{
			credentials.POST("", h.User.SetCredential)
			credentials.POST("/check", h.User.CheckCredential)
		}
		api.POST("/resources/list", h.Resource.List)
		jobs := api.Group("/jobs")
		{
			jobs.POST("", h.Job.Dispatch)
			jobs.POST("/list", h.Job.List)
			jobs.DELETE("/:id", h.Job.Remove)
		}
	}
}
