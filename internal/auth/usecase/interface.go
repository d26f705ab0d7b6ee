// Package usecase defines business logic interfaces for identity resolution
// and authorization operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// AccountRepository defines persistence operations for accounts.
// Implementations must support transaction-aware operations via context propagation.
type AccountRepository interface {
	// GetBySubject retrieves an account by its external identity subject.
	// Returns ErrAccountNotFound if not found or soft-deleted.
	GetBySubject(ctx context.Context, subject string) (*authDomain.Account, error)
}

// GuardianRepository defines persistence operations for guardian records.
// Implementations must support transaction-aware operations via context propagation.
type GuardianRepository interface {
	// GetByAccountID retrieves the guardian linked to a portal account.
	// Returns ErrGuardianNotFound if not found or soft-deleted.
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*authDomain.Guardian, error)

	// ListCamperIDs retrieves the campers linked to a guardian.
	ListCamperIDs(ctx context.Context, guardianID uuid.UUID) ([]uuid.UUID, error)
}

// RoleRepository defines persistence operations for roles.
// Implementations must support transaction-aware operations via context propagation.
type RoleRepository interface {
	// Get retrieves a role by ID. Returns ErrRoleNotFound if not found.
	Get(ctx context.Context, roleID uuid.UUID) (*authDomain.Role, error)
}

// IdentityUseCase resolves verified token subjects into internal identities.
type IdentityUseCase interface {
	// Resolve loads the account behind a verified subject and builds the
	// request identity. Resolution happens on every request: disabling or
	// soft-deleting an account takes effect on the next request, without
	// waiting for the token to expire.
	//
	// All resolution failures surface as ErrNoAccess (or ErrPortalDisabled
	// for guardians whose portal flag is off), so callers cannot distinguish
	// an unknown subject from a disabled one.
	Resolve(ctx context.Context, subject string, kind authDomain.IdentityKind) (*authDomain.Identity, error)
}

// AuthorizationUseCase decides whether an identity may perform an operation.
type AuthorizationUseCase interface {
	// Authorize checks that the identity's role grants the exact permission.
	// The role is loaded from storage per call so permission edits apply
	// immediately. A role flagged as platform operator bypasses the catalog
	// check entirely. Denials surface as ErrPermissionDenied.
	Authorize(ctx context.Context, identity *authDomain.Identity, permission authDomain.Permission) error
}
