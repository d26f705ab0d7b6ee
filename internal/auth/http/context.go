// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// identityKey is a context key type for storing resolved identities.
type identityKey struct{}

// permissionKey is a context key type for storing the checked permission.
type permissionKey struct{}

// WithIdentity stores a resolved identity in the context.
// This is typically called by the authentication middleware after successful
// token verification and identity resolution.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the resolved identity from the context.
// Returns (identity, true) if present, or (nil, false) if no identity was set.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}

// WithPermission stores the permission that authorized the request in the
// context. This is typically called by the permission middleware after a
// successful check so handlers can log which grant admitted the request.
func WithPermission(ctx context.Context, permission authDomain.Permission) context.Context {
	return context.WithValue(ctx, permissionKey{}, permission)
}

// GetPermission retrieves the checked permission from the context.
// Returns (permission, true) if present, or ("", false) if not set.
func GetPermission(ctx context.Context) (authDomain.Permission, bool) {
	permission, ok := ctx.Value(permissionKey{}).(authDomain.Permission)
	return permission, ok
}
