package handler

import (
	"errors"
	"log/slog"

	"phygital/internal/phygital/permission"
	"phygital/internal/phygital/repository"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID = "x-user-id"

	ctxKeyUserID = "user_id"
	ctxKeyRole   = "user_role"
)

// PermissionGuard resolves the caller's role and gates routes on a permission.
type PermissionGuard struct {
	Users  repository.UserRepository
	Logger *slog.Logger
}

func NewPermissionGuard(users repository.UserRepository, logger *slog.Logger) *PermissionGuard {
	if logger == nil {
		logger = slog.Default()
	}
	return &PermissionGuard{Users: users, Logger: logger}
}

// RequirePermission admits the request only when the caller's role grants perm.
func (g *PermissionGuard) RequirePermission(perm permission.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID, err := extractCallerID(c)
			if err != nil {
				return respondError(c, g.Logger, err)
			}

			stored, err := g.Users.FindUserRole(c.Request().Context(), callerID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					g.Logger.Debug("unknown caller", "user_id", callerID, "permission", perm)
					return respondError(c, g.Logger, ErrForbidden)
				}
				return respondError(c, g.Logger, err)
			}

			// unparsable roles come back empty and are denied below
			role, _ := permission.ParseRole(stored)
			if !permission.HasPermission(role, perm) {
				g.Logger.Debug("permission denied", "user_id", callerID, "role", stored, "permission", perm)
				return respondError(c, g.Logger, ErrForbidden)
			}

			c.Set(ctxKeyUserID, callerID)
			c.Set(ctxKeyRole, role)
			return next(c)
		}
	}
}
