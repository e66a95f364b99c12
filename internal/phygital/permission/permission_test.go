package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permissionsToMap converts a permission slice to a set for lookup
func permissionsToMap(perms []Permission) map[Permission]bool {
	m := make(map[Permission]bool)
	for _, p := range perms {
		m[p] = true
	}
	return m
}

func TestAdminHasEveryPermission(t *testing.T) {
	for _, perm := range AllPermissions() {
		assert.True(t, HasPermission(RoleAdmin, perm), "admin should have %s", perm)
	}
}

// TestRolePermissionMatrix checks every role against every permission using the table itself
func TestRolePermissionMatrix(t *testing.T) {
	for _, role := range AllRoles() {
		if role == RoleAdmin {
			continue
		}
		rolePerms := permissionsToMap(rolePermissions[role])
		for _, perm := range AllPermissions() {
			t.Run(string(role)+"/"+string(perm), func(t *testing.T) {
				expected := rolePerms[perm] || rolePerms[PermAdminAll]
				assert.Equal(t, expected, HasPermission(role, perm))
			})
		}
	}
}

func TestWildcardGrantsEverything(t *testing.T) {
	original := rolePermissions[RoleEditor]
	rolePermissions[RoleEditor] = []Permission{PermViewProducts, PermAdminAll}
	t.Cleanup(func() { rolePermissions[RoleEditor] = original })

	assert.True(t, HasPermission(RoleEditor, PermDeleteProducts))
	assert.True(t, HasPermission(RoleEditor, PermManageUsers))
}

func TestUnknownRoleIsDenied(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, HasPermission(Role("superuser"), PermViewProducts))
		assert.False(t, HasPermission(Role(""), PermAdminAll))
		assert.False(t, HasPermission(Role("ADMIN"), PermViewProducts))
	})
}

func TestScenarios(t *testing.T) {
	t.Run("viewer cannot edit products", func(t *testing.T) {
		assert.False(t, HasPermission(RoleViewer, PermEditProducts))
	})
	t.Run("viewer can view products", func(t *testing.T) {
		assert.True(t, HasPermission(RoleViewer, PermViewProducts))
	})
	t.Run("manager cannot delete products", func(t *testing.T) {
		assert.False(t, HasPermission(RoleManager, PermDeleteProducts))
	})
	t.Run("manager can manage settings", func(t *testing.T) {
		assert.True(t, HasPermission(RoleManager, PermManageSettings))
	})
	t.Run("customer can redeem but not manage rewards", func(t *testing.T) {
		assert.True(t, HasPermission(RoleCustomer, PermRedeemRewards))
		assert.False(t, HasPermission(RoleCustomer, PermManageRewards))
	})
}

func TestAllPermissionsCompleteness(t *testing.T) {
	perms := AllPermissions()
	seen := make(map[Permission]bool)
	for _, p := range perms {
		assert.False(t, seen[p], "duplicate permission %s", p)
		seen[p] = true
		assert.NotEmpty(t, PermissionName(p), "missing name for %s", p)
		assert.NotEmpty(t, PermissionDescription(p), "missing description for %s", p)
	}
	assert.Len(t, permissionTexts, len(perms))
}

func TestPermissionsForRoleSubsetOfAll(t *testing.T) {
	all := permissionsToMap(AllPermissions())
	for _, role := range AllRoles() {
		perms := PermissionsForRole(role)
		assert.NotEmpty(t, perms, "role %s has no permissions", role)
		for _, p := range perms {
			assert.True(t, all[p], "role %s has unknown permission %s", role, p)
		}
	}
	assert.Equal(t, []Permission{PermAdminAll}, PermissionsForRole(RoleAdmin))
}

func TestPermissionsForRoleReturnsCopy(t *testing.T) {
	perms := PermissionsForRole(RoleViewer)
	require.NotEmpty(t, perms)
	perms[0] = PermAdminAll

	assert.NotEqual(t, PermAdminAll, rolePermissions[RoleViewer][0])
	assert.False(t, HasPermission(RoleViewer, PermDeleteProducts))
}

func TestPermissionsForUnknownRole(t *testing.T) {
	assert.Nil(t, PermissionsForRole(Role("ghost")))
}

func TestEveryRoleConfigured(t *testing.T) {
	assert.Len(t, rolePermissions, len(AllRoles()))
	for _, role := range AllRoles() {
		assert.True(t, IsValidRole(role))
	}
}

func TestRolesWithPermission(t *testing.T) {
	assert.Equal(t, []Role{RoleAdmin, RoleManager}, RolesWithPermission(PermManageSettings))
	assert.Equal(t, []Role{RoleAdmin}, RolesWithPermission(PermDeleteProducts))
	assert.Equal(t,
		[]Role{RoleAdmin, RoleCustomer, RoleEditor, RoleManager, RoleViewer},
		RolesWithPermission(PermViewProducts))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("  Manager ")
	require.NoError(t, err)
	assert.Equal(t, RoleManager, role)

	_, err = ParseRole("root")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestParsePermission(t *testing.T) {
	perm, err := ParsePermission("VIEW:products")
	require.NoError(t, err)
	assert.Equal(t, PermViewProducts, perm)

	_, err = ParsePermission("fly:planes")
	assert.ErrorIs(t, err, ErrUnknownPermission)
}
