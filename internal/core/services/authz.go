package services

import (
	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// requirePermission is the single authorization gate every service operation
// passes through before touching data. A zero caller means the request never
// carried a verified identity.
func requirePermission(caller domain.AuthUser, module, action string) error {
	if caller.IsZero() {
		return apperrors.ErrUnauthorized
	}
	if !caller.Permissions.Allows(module, action) {
		return apperrors.ErrForbidden
	}
	return nil
}
