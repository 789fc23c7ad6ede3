package repositories

import (
	"github.com/gpulab/manager-go/db"
	"github.com/gpulab/manager-go/models"
)

type UserRepo interface {
	GetByID(id string) (models.User, error)
	Exists(id string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
	UpdateDetails(id string, username *string, fullName string) error
	UpdatePermission(id string, level models.PermissionLevel) error
	ListAdmins() ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetByID(id string) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, "id = ?", id).Error
	return user, err
}

func (r *DBUserRepo) Exists(id string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) Save(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) UpdateDetails(id string, username *string, fullName string) error {
	return db.DB.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"username": username, "full_name": fullName}).Error
}

func (r *DBUserRepo) UpdatePermission(id string, level models.PermissionLevel) error {
	return db.DB.Model(&models.User{}).
		Where("id = ?", id).
		Update("permission_level", level).Error
}

// ListAdmins returns all users at admin privilege or above, ordered by
// privilege.
func (r *DBUserRepo) ListAdmins() ([]models.User, error) {
	var admins []models.User
	err := db.DB.
		Where("permission_level <= ?", models.PermissionAdmin).
		Order("permission_level asc").
		Find(&admins).Error
	return admins, err
}
