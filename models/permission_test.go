package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionLevel_AtLeast(t *testing.T) {
	assert.True(t, PermissionOwner.AtLeast(PermissionOwner))
	assert.True(t, PermissionOwner.AtLeast(PermissionAdmin))
	assert.True(t, PermissionOwner.AtLeast(PermissionUser))

	assert.False(t, PermissionAdmin.AtLeast(PermissionOwner))
	assert.True(t, PermissionAdmin.AtLeast(PermissionAdmin))
	assert.True(t, PermissionAdmin.AtLeast(PermissionUser))

	assert.False(t, PermissionUser.AtLeast(PermissionOwner))
	assert.False(t, PermissionUser.AtLeast(PermissionAdmin))
	assert.True(t, PermissionUser.AtLeast(PermissionUser))
}

func TestPermissionLevel_HigherPermission(t *testing.T) {
	assert.Equal(t, PermissionAdmin, PermissionUser.HigherPermission())
	assert.Equal(t, PermissionOwner, PermissionAdmin.HigherPermission())
	assert.Equal(t, PermissionOwner, PermissionOwner.HigherPermission())
}

func TestParsePermissionLevel(t *testing.T) {
	level, err := ParsePermissionLevel("admin")
	assert.NoError(t, err)
	assert.Equal(t, PermissionAdmin, level)

	level, err = ParsePermissionLevel("owner")
	assert.NoError(t, err)
	assert.Equal(t, PermissionOwner, level)

	_, err = ParsePermissionLevel("superuser")
	assert.Error(t, err)
}

func TestPermissionLevel_String(t *testing.T) {
	assert.Equal(t, "owner", PermissionOwner.String())
	assert.Equal(t, "admin", PermissionAdmin.String())
	assert.Equal(t, "user", PermissionUser.String())
}
