package domain

import (
	"github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// Authentication errors. All wrap errors.ErrUnauthenticated and render as 401.
// The reason distinguishes them in logs and in the verifier's control flow:
// expiry in particular is a final verdict that must never trigger a fallback
// verification attempt.
var (
	// ErrTokenMissing indicates no bearer credential was presented.
	ErrTokenMissing = errors.Wrap(errors.ErrUnauthenticated, "missing credential")

	// ErrTokenExpired indicates the token's expiry is in the past.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthenticated, "token expired")

	// ErrTokenInvalid indicates the token failed signature or claim verification.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthenticated, "invalid token")

	// ErrTokenMalformed indicates a verified token missing required claims.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthenticated, "malformed token")
)

// Resolution and authorization errors. All wrap errors.ErrForbidden and render
// identically to callers as a generic 403 so account existence never leaks.
// The distinct values exist for logs and tests.
var (
	// ErrNoAccess covers missing, inactive, and soft-deleted accounts.
	ErrNoAccess = errors.Wrap(errors.ErrForbidden, "no access")

	// ErrPortalDisabled indicates a guardian whose portal-access flag is off.
	ErrPortalDisabled = errors.Wrap(errors.ErrForbidden, "portal access disabled")

	// ErrPermissionDenied indicates the identity's role does not grant the
	// required permission.
	ErrPermissionDenied = errors.Wrap(errors.ErrForbidden, "permission denied")
)

// Configuration errors.
var (
	// ErrNoVerificationMethod indicates neither a JWKS endpoint nor a static
	// secret is configured. This is a deployment fault, not a client fault.
	ErrNoVerificationMethod = errors.Wrap(errors.ErrMisconfigured, "no token verification method configured")
)

// Storage lookup errors.
var (
	// ErrAccountNotFound indicates no account matches the lookup.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrGuardianNotFound indicates no guardian record matches the lookup.
	ErrGuardianNotFound = errors.Wrap(errors.ErrNotFound, "guardian not found")

	// ErrRoleNotFound indicates no role matches the lookup.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")
)
