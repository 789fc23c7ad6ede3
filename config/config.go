package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	// OwnerID is the external identity of the bootstrap owner, created at
	// startup if missing.
	OwnerID string

	// GatewayToken authenticates the chat gateway; WorkerToken authenticates
	// worker agents announcing themselves on /join.
	GatewayToken string
	WorkerToken  string

	// PlacementNamespace is the cluster namespace all placements and
	// credential objects live in.
	PlacementNamespace string

	EngineTimeout time.Duration
	SweepInterval time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "manager")
	ServerPort = getEnv("SERVER_PORT", "8080")

	OwnerID = getEnv("OWNER_ID", "")
	GatewayToken = getEnv("GATEWAY_TOKEN", "")
	WorkerToken = getEnv("WORKER_TOKEN", "")

	PlacementNamespace = getEnv("PLACEMENT_NAMESPACE", "gpu-jobs")

	EngineTimeout = getEnvSeconds("ENGINE_TIMEOUT_SECONDS", 30)
	SweepInterval = getEnvSeconds("SWEEP_INTERVAL_SECONDS", 60)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
