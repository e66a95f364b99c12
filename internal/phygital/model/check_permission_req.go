package model

import (
	"strings"

	"phygital/internal/phygital/permission"
)

type CheckPermissionReq struct {
	Role       string `json:"role" validate:"required,max=50"`
	Permission string `json:"permission" validate:"required,max=100"`
}

// Validate normalizes the request. An unknown role is not an error here: it
// is simply denied. An unknown permission is rejected.
func (r *CheckPermissionReq) Validate() error {
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Permission = strings.ToLower(strings.TrimSpace(r.Permission))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	perm, err := permission.ParsePermission(r.Permission)
	if err != nil {
		return &ErrorDetail{Code: "bad_request", Message: err.Error()}
	}
	r.Permission = string(perm)
	return nil
}
