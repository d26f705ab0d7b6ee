// Package domain defines identity and authorization domain models.
//
// Accounts authenticate with signed bearer tokens issued by an external
// identity provider; this package models the decoded claims, the resolved
// internal identity (staff or guardian/portal), and the role-based permission
// catalog used for authorization.
package domain

import "time"

// Claims holds the decoded payload of a verified identity token. One instance
// exists per request; claims are never persisted or cached.
type Claims struct {
	// Subject is the external identity id ("sub"), the join key to accounts.
	Subject string
	// Audience is the audience the token was accepted for.
	Audience string
	// IssuedAt is the token issue time ("iat").
	IssuedAt time.Time
	// ExpiresAt is the token expiry ("exp").
	ExpiresAt time.Time
	// Role is an optional role hint carried in the token. It is advisory only:
	// authorization always loads the role from storage, never from the token.
	Role string
}
