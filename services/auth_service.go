package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
)

// AuthService is the access-control gate in front of every mutating or
// sensitive operation.
type AuthService struct {
	Repos *repositories.Repos
}

func NewAuthService(repos *repositories.Repos) *AuthService {
	return &AuthService{Repos: repos}
}

// Authorize checks that the acting user exists and holds at least the
// required level, and refreshes the user's denormalized identity fields from
// the gateway claims as a side effect. An unknown caller gets NotRegistered
// (with the admin list) when plain user privilege would have sufficed, and a
// bare PermissionDenied otherwise.
func (s *AuthService) Authorize(ru dto.RequestUser, required models.PermissionLevel) (models.User, error) {
	user, err := s.Repos.User.GetByID(ru.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if required == models.PermissionUser {
				return models.User{}, &NotRegisteredError{Admins: s.admins()}
			}
			return models.User{}, ErrPermissionDenied
		}
		return models.User{}, err
	}

	if err := s.Repos.User.UpdateDetails(ru.UserID, ru.Username, ru.FullName); err != nil {
		// The refresh is best-effort bookkeeping; stale profile fields must
		// not block the operation itself.
		logrus.WithError(err).WithField("user_id", ru.UserID).Warn("failed to refresh user details")
	} else {
		user.Username = ru.Username
		user.FullName = ru.FullName
	}

	if !user.PermissionLevel.AtLeast(required) {
		return user, ErrPermissionDenied
	}
	return user, nil
}

func (s *AuthService) admins() []models.User {
	admins, err := s.Repos.User.ListAdmins()
	if err != nil {
		logrus.WithError(err).Warn("failed to list admins")
		return nil
	}
	return admins
}
