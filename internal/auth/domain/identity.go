package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdentityKind distinguishes the two resolution paths.
type IdentityKind string

const (
	// StaffIdentity is an organization staff member with a role reference.
	StaffIdentity IdentityKind = "staff"

	// PortalIdentity is a guardian accessing the family portal, gated by the
	// guardian record's portal-access flag.
	PortalIdentity IdentityKind = "portal"
)

// Account is the stored account row behind an external identity subject.
type Account struct {
	ID             uuid.UUID  // Unique identifier (UUIDv7)
	OrganizationID uuid.UUID  // Owning tenant
	AuthSubject    string     // External identity id ("sub" claim)
	RoleID         *uuid.UUID // Role reference (nil for portal-only accounts)
	IsActive       bool       // Whether the account can authenticate
	DeletedAt      *time.Time // Soft-delete marker (nil if live)
	CreatedAt      time.Time
}

// Guardian is the contact record linked to a portal account.
type Guardian struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	AccountID      uuid.UUID
	PortalAccess   bool       // Gate for the family portal
	DeletedAt      *time.Time // Soft-delete marker (nil if live)
	CreatedAt      time.Time
}

// Identity is a resolved account for the current request. It is built fresh
// from storage on every request (tenancy, active status, and soft-deletion are
// re-checked each time, which is the system's only revocation mechanism) and
// is immutable once handed to business logic.
type Identity struct {
	AccountID      uuid.UUID
	Subject        string
	OrganizationID uuid.UUID
	Kind           IdentityKind

	// RoleID references the account's role; nil means no role and therefore
	// no catalog permissions.
	RoleID *uuid.UUID

	// GuardianID and CamperIDs are populated for portal identities only.
	// CamperIDs scope downstream portal queries to the guardian's dependents.
	GuardianID *uuid.UUID
	CamperIDs  []uuid.UUID
}

// Role owns a set of permission identifiers. Roles are loaded per request so
// permission changes take effect without re-issuing tokens.
type Role struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	// IsPlatform marks the single platform-operator role that bypasses the
	// permission catalog. The bypass keys off this flag, never off Name.
	IsPlatform  bool
	Permissions []Permission
	CreatedAt   time.Time
}

// HasPermission reports whether the role grants the exact permission string.
// There is no partial or hierarchical matching.
func (r *Role) HasPermission(p Permission) bool {
	for _, granted := range r.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}
