package usecase

import (
	"context"
	"errors"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// authorizationUseCase implements AuthorizationUseCase.
type authorizationUseCase struct {
	roleRepo RoleRepository
}

// NewAuthorizationUseCase creates a new AuthorizationUseCase.
func NewAuthorizationUseCase(roleRepo RoleRepository) AuthorizationUseCase {
	return &authorizationUseCase{
		roleRepo: roleRepo,
	}
}

// Authorize checks that the identity's role grants the exact permission.
//
// The decision is deny-by-default: no role, a missing role row, a role from
// another tenant, or a permission outside the role's grants all produce
// ErrPermissionDenied. The only positive paths are exact string membership
// and the platform-operator flag.
func (a *authorizationUseCase) Authorize(
	ctx context.Context,
	identity *authDomain.Identity,
	permission authDomain.Permission,
) error {
	if identity == nil || permission == "" {
		return authDomain.ErrPermissionDenied
	}

	if identity.RoleID == nil {
		return authDomain.ErrPermissionDenied
	}

	role, err := a.roleRepo.Get(ctx, *identity.RoleID)
	if err != nil {
		// A dangling role reference denies rather than erroring: the caller
		// sees the same response as any other missing grant.
		if errors.Is(err, authDomain.ErrRoleNotFound) {
			return authDomain.ErrPermissionDenied
		}
		return err
	}

	if role.IsPlatform {
		return nil
	}

	if role.OrganizationID != identity.OrganizationID {
		return authDomain.ErrPermissionDenied
	}

	if !role.HasPermission(permission) {
		return authDomain.ErrPermissionDenied
	}

	return nil
}
