package services

import (
	"github.com/gpulab/manager-go/engine"
	"github.com/gpulab/manager-go/repositories"
)

type Services struct {
	Auth     *AuthService
	Registry *RegistryService
	User     *UserService
	Resource *ResourceService
	Job      *JobService
}

func New(repos *repositories.Repos, eng engine.Engine) *Services {
	auth := NewAuthService(repos)
	return &Services{
		Auth:     auth,
		Registry: NewRegistryService(repos),
		User:     NewUserService(repos, auth, eng),
		Resource: NewResourceService(repos, auth, eng),
		Job:      NewJobService(repos, auth, eng),
	}
}
