package dto

// RequestUser carries the acting user's identity claims as supplied by the
// gateway. Username and FullName are refreshed into the directory on every
// authorized call.
type RequestUser struct {
	UserID   string  `json:"user_id" binding:"required"`
	Username *string `json:"username"`
	FullName string  `json:"full_name"`
}
