package tenant

import "context"

// scopeKey is a context key type for storing the bound tenant scope.
type scopeKey struct{}

// WithScope records the tenant bound to the current unit of work in the
// context, so downstream code can assert the binding happened without a
// round trip to the database.
func WithScope(ctx context.Context, id ID) context.Context {
	return context.WithValue(ctx, scopeKey{}, id)
}

// ScopeFrom retrieves the bound tenant scope from the context.
// Returns (ID, true) if a scope is present, or (ID{}, false) if not.
func ScopeFrom(ctx context.Context) (ID, bool) {
	id, ok := ctx.Value(scopeKey{}).(ID)
	return id, ok
}
