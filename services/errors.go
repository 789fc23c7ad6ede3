package services

import (
	"errors"

	"github.com/gpulab/manager-go/models"
)

var (
	ErrPermissionDenied  = errors.New("you don't have permission to do that")
	ErrNotRegistered     = errors.New("user is not registered")
	ErrAlreadyRegistered = errors.New("user is already registered")
	ErrCredentialMissing = errors.New("you first need to add your public ssh key")
	ErrCredentialInUse   = errors.New("credential is referenced by an active placement")
	ErrWorkerCollision   = errors.New("hostname is already bound to a different join id")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyEnded      = errors.New("job has already ended")

	// ErrEngine wraps orchestration-engine and credential-store failures.
	// Dispatch is never retried locally on it; a duplicate placement attempt
	// could double-dispatch.
	ErrEngine = errors.New("orchestration engine error")
)

// NotRegisteredError is returned when the acting user is unknown; it carries
// the current admins so the human knows whom to contact.
type NotRegisteredError struct {
	Admins []models.User
}

func (e *NotRegisteredError) Error() string {
	return ErrNotRegistered.Error()
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}
