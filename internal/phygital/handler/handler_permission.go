package handler

import (
	"errors"
	"net/http"

	"phygital/internal/phygital/model"
	"phygital/internal/phygital/permission"
	"phygital/internal/phygital/repository"

	"github.com/labstack/echo/v4"
)

// GetRoles handles GET /roles
func (h *Handler) GetRoles(c echo.Context) error {
	roles := permission.AllRoles()
	views := make([]model.RoleView, 0, len(roles))
	for _, role := range roles {
		views = append(views, model.RoleView{
			Role:        string(role),
			Permissions: permissionStrings(permission.PermissionsForRole(role)),
		})
	}
	return c.JSON(http.StatusOK, views)
}

// GetPermissions handles GET /permissions
func (h *Handler) GetPermissions(c echo.Context) error {
	perms := permission.AllPermissions()
	views := make([]model.PermissionView, 0, len(perms))
	for _, perm := range perms {
		roles := permission.RolesWithPermission(perm)
		roleNames := make([]string, 0, len(roles))
		for _, r := range roles {
			roleNames = append(roleNames, string(r))
		}
		views = append(views, model.PermissionView{
			Permission:  string(perm),
			Name:        permission.PermissionName(perm),
			Description: permission.PermissionDescription(perm),
			Roles:       roleNames,
		})
	}
	return c.JSON(http.StatusOK, views)
}

// PostPermissionsCheck handles POST /permissions/check
func (h *Handler) PostPermissionsCheck(c echo.Context) error {
	var req model.CheckPermissionReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		return respondError(c, h.Logger, err)
	}

	allowed := permission.HasPermission(permission.Role(req.Role), permission.Permission(req.Permission))
	return c.JSON(http.StatusOK, model.CheckPermissionResponse{Allowed: allowed})
}

// GetPermissionsMe handles GET /permissions/me
func (h *Handler) GetPermissionsMe(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	stored, err := h.Users.FindUserRole(c.Request().Context(), callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, h.Logger, ErrForbidden)
		}
		return respondError(c, h.Logger, err)
	}

	resp := model.MyPermissionsResponse{
		UserID:      callerID,
		Role:        stored,
		Permissions: []string{},
	}
	if role, err := permission.ParseRole(stored); err == nil {
		resp.Role = string(role)
		resp.Permissions = permissionStrings(permission.PermissionsForRole(role))
	}
	return c.JSON(http.StatusOK, resp)
}

func permissionStrings(perms []permission.Permission) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}
