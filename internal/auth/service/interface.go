// Package service provides technical services for authentication operations.
//
// This package implements bearer token verification against the external
// identity provider's JWKS endpoint, with an optional static-secret fallback
// for deployments that only share a symmetric signing key.
package service

import (
	"context"

	"github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// TokenVerifier defines cryptographic verification of bearer tokens.
type TokenVerifier interface {
	// Verify checks the token's signature and registered claims and returns
	// the decoded claims on success.
	//
	// Verification prefers the asymmetric JWKS key set when one is configured.
	// An expired token is a final verdict: it never retries against the static
	// secret, since retrying would only re-confirm the expiry on a slower
	// path. Any other asymmetric failure falls back to the static secret when
	// one is configured. With neither method configured the verifier reports
	// a configuration error rather than an authentication one.
	Verify(ctx context.Context, token string) (*domain.Claims, error)

	// Warmup pre-fetches the JWKS key set so the first request does not pay
	// the fetch latency. It is a no-op when no JWKS endpoint is configured.
	Warmup(ctx context.Context) error
}
