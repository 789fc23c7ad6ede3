package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gpulab/manager-go/config"
	"github.com/gpulab/manager-go/db"
	"github.com/gpulab/manager-go/engine"
	"github.com/gpulab/manager-go/repositories"
	"github.com/gpulab/manager-go/routes"
	"github.com/gpulab/manager-go/services"
)

func main() {
	config.LoadConfig()
	db.Init()

	eng, err := engine.NewKubeEngine(config.PlacementNamespace, config.EngineTimeout)
	if err != nil {
		logrus.Fatalf("failed to connect to orchestration engine: %v", err)
	}

	repos := repositories.New()
	svc := services.New(repos, eng)

	go sweepLoop(svc, config.SweepInterval)

	r := gin.Default()
	routes.RegisterRoutes(r, svc)
	if err := r.Run(":" + config.ServerPort); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}

// sweepLoop periodically ends jobs past their expected end time. It only
// touches durable state, so request handling stays stateless.
func sweepLoop(svc *services.Services, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		n, err := svc.Job.SweepExpired(context.Background())
		if err != nil {
			logrus.WithError(err).Warn("expiry sweep failed")
			continue
		}
		if n > 0 {
			logrus.WithField("count", n).Info("expiry sweep finished")
		}
	}
}
