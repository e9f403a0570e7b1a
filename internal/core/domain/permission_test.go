package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionSetAllows(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		perms := PermissionSet{"journal:create", "journal:read"}
		assert.True(t, perms.Allows("journal", "create"))
		assert.True(t, perms.Allows("journal", "read"))
	})
	t.Run("missing action denied", func(t *testing.T) {
		perms := PermissionSet{"journal:read"}
		assert.False(t, perms.Allows("journal", "approve"))
	})
	t.Run("missing module denied", func(t *testing.T) {
		perms := PermissionSet{"journal:read"}
		assert.False(t, perms.Allows("periods", "read"))
	})
	t.Run("super capability grants everything", func(t *testing.T) {
		perms := PermissionSet{SuperPermission}
		assert.True(t, perms.Allows("journal", "create"))
		assert.True(t, perms.Allows("companies", "update"))
		assert.True(t, perms.Allows("anything", "at-all"))
	})
	t.Run("empty set denies", func(t *testing.T) {
		var perms PermissionSet
		assert.False(t, perms.Allows("journal", "read"))
	})
	t.Run("no partial wildcards", func(t *testing.T) {
		perms := PermissionSet{"journal:*", "*:read"}
		assert.False(t, perms.Allows("journal", "create"))
		assert.False(t, perms.Allows("periods", "read"))
	})
}

func TestAuthUserIsZero(t *testing.T) {
	assert.True(t, AuthUser{}.IsZero())
	assert.True(t, AuthUser{Username: "ghost"}.IsZero())
	assert.False(t, AuthUser{UserID: "user-1"}.IsZero())
}
