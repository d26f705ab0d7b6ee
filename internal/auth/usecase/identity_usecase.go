// Package usecase implements business logic orchestration for identity and
// authorization operations.
package usecase

import (
	"context"
	"errors"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// identityUseCase implements IdentityUseCase.
type identityUseCase struct {
	accountRepo  AccountRepository
	guardianRepo GuardianRepository
}

// NewIdentityUseCase creates a new IdentityUseCase.
func NewIdentityUseCase(accountRepo AccountRepository, guardianRepo GuardianRepository) IdentityUseCase {
	return &identityUseCase{
		accountRepo:  accountRepo,
		guardianRepo: guardianRepo,
	}
}

// Resolve loads the account behind a verified subject and builds the request
// identity.
//
// Security Notes:
//   - Returns ErrNoAccess for unknown, inactive, and soft-deleted accounts
//     alike to prevent account enumeration
//   - Portal resolution additionally requires a live guardian record in the
//     same organization with the portal flag on
//   - Repository infrastructure errors are propagated as-is so they surface
//     as server faults rather than access denials
func (i *identityUseCase) Resolve(
	ctx context.Context,
	subject string,
	kind authDomain.IdentityKind,
) (*authDomain.Identity, error) {
	account, err := i.accountRepo.GetBySubject(ctx, subject)
	if err != nil {
		if errors.Is(err, authDomain.ErrAccountNotFound) {
			return nil, authDomain.ErrNoAccess
		}
		return nil, err
	}

	if !account.IsActive || account.DeletedAt != nil {
		return nil, authDomain.ErrNoAccess
	}

	identity := &authDomain.Identity{
		AccountID:      account.ID,
		Subject:        account.AuthSubject,
		OrganizationID: account.OrganizationID,
		Kind:           kind,
		RoleID:         account.RoleID,
	}

	if kind != authDomain.PortalIdentity {
		return identity, nil
	}

	guardian, err := i.guardianRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, authDomain.ErrGuardianNotFound) {
			return nil, authDomain.ErrNoAccess
		}
		return nil, err
	}

	// A guardian row pointing at another tenant's account is a data fault,
	// not a portal user.
	if guardian.OrganizationID != account.OrganizationID {
		return nil, authDomain.ErrNoAccess
	}

	if !guardian.PortalAccess {
		return nil, authDomain.ErrPortalDisabled
	}

	camperIDs, err := i.guardianRepo.ListCamperIDs(ctx, guardian.ID)
	if err != nil {
		return nil, err
	}

	identity.GuardianID = &guardian.ID
	identity.CamperIDs = camperIDs

	return identity, nil
}
