package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gpulab/manager-go/config"
	"github.com/gpulab/manager-go/models"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("Failed to auto migrate: %v", err)
	}

	if err := BootstrapOwner(DB, config.OwnerID); err != nil {
		logrus.Fatalf("Failed to bootstrap owner: %v", err)
	}

	logrus.Info("Database connected and migrated")
}

// InitWithGormDB injects an already-open connection, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Worker{},
		&models.GPU{},
		&models.Job{},
	)
}

// BootstrapOwner makes sure the configured owner exists at owner level. The
// level is assigned through a map so the zero-valued PermissionOwner cannot
// be mistaken for an unset field; an existing row keeps its profile fields
// but gets its level repaired.
func BootstrapOwner(gormDB *gorm.DB, ownerID string) error {
	if ownerID == "" {
		logrus.Warn("OWNER_ID is not set, skipping owner bootstrap")
		return nil
	}
	var owner models.User
	return gormDB.Where(models.User{ID: ownerID}).
		Assign(map[string]any{"permission_level": models.PermissionOwner}).
		FirstOrCreate(&owner).Error
}
