package permission

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownPermission = errors.New("unknown permission")
)

// HasPermission reports whether role may perform perm.
// Admin is allowed everything; any role whose set carries admin:all is too.
// Unknown roles are denied.
func HasPermission(role Role, perm Permission) bool {
	if role == RoleAdmin {
		return true
	}
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == perm || p == PermAdminAll {
			return true
		}
	}
	return false
}

// PermissionsForRole returns a copy of the configured set for role, wildcard not expanded.
// For display only; use HasPermission for decisions.
func PermissionsForRole(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

func AllPermissions() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}

func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// RolesWithPermission returns the roles, sorted, for which HasPermission(role, perm) holds.
func RolesWithPermission(perm Permission) []Role {
	var roles []Role
	for _, r := range allRoles {
		if HasPermission(r, perm) {
			roles = append(roles, r)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// PermissionName returns the display name, or "" if perm has none.
func PermissionName(perm Permission) string {
	return permissionTexts[perm].name
}

func PermissionDescription(perm Permission) string {
	return permissionTexts[perm].description
}

func IsValidRole(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

func IsValidPermission(perm Permission) bool {
	for _, p := range allPermissions {
		if p == perm {
			return true
		}
	}
	return false
}

// ParseRole normalizes s (trim, lower-case) and checks it against the known roles.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidRole(role) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

func ParsePermission(s string) (Permission, error) {
	perm := Permission(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidPermission(perm) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPermission, s)
	}
	return perm, nil
}
