package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gpulab/manager-go/dto"
	"github.com/gpulab/manager-go/engine"
	"github.com/gpulab/manager-go/models"
	"github.com/gpulab/manager-go/repositories"
)

type UserService struct {
	Repos  *repositories.Repos
	Auth   *AuthService
	Engine engine.Engine
}

func NewUserService(repos *repositories.Repos, auth *AuthService, eng engine.Engine) *UserService {
	return &UserService{Repos: repos, Auth: auth, Engine: eng}
}

// Register creates the target user at plain user privilege. Admin-or-higher
// only.
func (s *UserService) Register(ru dto.RequestUser, targetID string) error {
	if _, err := s.Auth.Authorize(ru, models.PermissionAdmin); err != nil {
		return err
	}

	exists, err := s.Repos.User.Exists(targetID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyRegistered
	}

	logrus.WithField("user_id", targetID).Info("registering user")
	return s.Repos.User.Create(&models.User{
		ID:              targetID,
		PermissionLevel: models.PermissionUser,
	})
}

// SetPermission grants level to the target. The grantor must hold the next
// more privileged level, so nobody can mint peers of their own rank.
func (s *UserService) SetPermission(ru dto.RequestUser, targetID string, level models.PermissionLevel) error {
	if _, err := s.Auth.Authorize(ru, level.HigherPermission()); err != nil {
		return err
	}

	exists, err := s.Repos.User.Exists(targetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotRegistered
	}

	logrus.WithFields(logrus.Fields{"user_id": targetID, "level": level.String()}).Info("setting permission")
	return s.Repos.User.UpdatePermission(targetID, level)
}

// SetCredential stores the caller's public key in the external credential
// store and records the handle. An existing key still mounted by an active
// placement cannot be rotated.
func (s *UserService) SetCredential(ctx context.Context, ru dto.RequestUser, publicKey string) error {
	user, err := s.Auth.Authorize(ru, models.PermissionUser)
	if err != nil {
		return err
	}

	if user.CredentialRef != "" {
		inUse, err := s.Engine.CredentialInUse(ctx, user.CredentialRef)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEngine, err)
		}
		if inUse {
			return ErrCredentialInUse
		}
		if err := s.Engine.RemoveCredential(ctx, user.CredentialRef); err != nil {
			return fmt.Errorf("%w: %v", ErrEngine, err)
		}
	}

	name := credentialName(user.ID)
	ref, err := s.Engine.StoreCredential(ctx, name, publicKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngine, err)
	}

	user.CredentialRef = ref
	return s.Repos.User.Save(&user)
}

// CheckCredential reports whether the caller has a usable stored key. The
// ref must still resolve in the external store; a dangling local handle
// counts as unset.
func (s *UserService) CheckCredential(ctx context.Context, ru dto.RequestUser) (bool, error) {
	user, err := s.Auth.Authorize(ru, models.PermissionUser)
	if err != nil {
		return false, err
	}
	if user.CredentialRef == "" {
		return false, nil
	}
	if _, err := s.Engine.GetCredential(ctx, user.CredentialRef); err != nil {
		if errors.Is(err, engine.ErrCredentialNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	return true, nil
}

func credentialName(userID string) string {
	return "ssh-key-" + strings.ToLower(userID)
}
