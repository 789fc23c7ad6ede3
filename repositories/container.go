package repositories

type Repos struct {
	User   UserRepo
	Worker WorkerRepo
	GPU    GPURepo
	Job    JobRepo
}

func New() *Repos {
	return &Repos{
		User:   &DBUserRepo{},
		Worker: &DBWorkerRepo{},
		GPU:    &DBGPURepo{},
		Job:    &DBJobRepo{},
	}
}
