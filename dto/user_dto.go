package dto

type RegisterUserInput struct {
	RequestUser RequestUser `json:"request_user" binding:"required"`
	UserID      string      `json:"user_id" binding:"required"`
}

type SetPermissionInput struct {
	RequestUser     RequestUser `json:"request_user" binding:"required"`
	UserID          string      `json:"user_id" binding:"required"`
	PermissionLevel string      `json:"permission_level" binding:"required,oneof=owner admin user"`
}

type SetCredentialInput struct {
	RequestUser RequestUser `json:"request_user" binding:"required"`
	PublicKey   string      `json:"public_key" binding:"required"`
}

type CheckCredentialInput struct {
	RequestUser RequestUser `json:"request_user" binding:"required"`
}
