package models

import "fmt"

// PermissionLevel is totally ordered: a lower value means more privilege.
type PermissionLevel int

const (
	PermissionOwner PermissionLevel = iota
	PermissionAdmin
	PermissionUser
)

func (l PermissionLevel) String() string {
	switch l {
	case PermissionOwner:
		return "owner"
	case PermissionAdmin:
		return "admin"
	case PermissionUser:
		return "user"
	}
	return fmt.Sprintf("permission(%d)", int(l))
}

// AtLeast reports whether l grants the privilege of required.
func (l PermissionLevel) AtLeast(required PermissionLevel) bool {
	return l <= required
}

// HigherPermission returns the next more privileged level. Granting level L
// requires the grantor to hold at least HigherPermission(L): an admin can
// create users, only an owner can create admins.
func (l PermissionLevel) HigherPermission() PermissionLevel {
	if l <= PermissionOwner {
		return PermissionOwner
	}
	return l - 1
}

func ParsePermissionLevel(s string) (PermissionLevel, error) {
	switch s {
	case "owner":
		return PermissionOwner, nil
	case "admin":
		return PermissionAdmin, nil
	case "user":
		return PermissionUser, nil
	}
	return PermissionUser, fmt.Errorf("unknown permission level %q", s)
}
