// Package dto defines request and response payloads for authentication endpoints.
package dto

import (
	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// IdentityResponse is the payload for the identity introspection endpoints.
type IdentityResponse struct {
	AccountID      string   `json:"account_id"`
	OrganizationID string   `json:"organization_id"`
	Kind           string   `json:"kind"`
	RoleID         *string  `json:"role_id,omitempty"`
	GuardianID     *string  `json:"guardian_id,omitempty"`
	CamperIDs      []string `json:"camper_ids,omitempty"`
}

// NewIdentityResponse builds an IdentityResponse from a resolved identity.
func NewIdentityResponse(identity *authDomain.Identity) IdentityResponse {
	response := IdentityResponse{
		AccountID:      identity.AccountID.String(),
		OrganizationID: identity.OrganizationID.String(),
		Kind:           string(identity.Kind),
	}
	if identity.RoleID != nil {
		roleID := identity.RoleID.String()
		response.RoleID = &roleID
	}
	if identity.GuardianID != nil {
		guardianID := identity.GuardianID.String()
		response.GuardianID = &guardianID
	}
	for _, camperID := range identity.CamperIDs {
		response.CamperIDs = append(response.CamperIDs, camperID.String())
	}
	return response
}

// PermissionCatalogResponse is the payload for the permission catalog endpoint.
// Permissions are grouped by module and resource for administrative UIs.
type PermissionCatalogResponse struct {
	Permissions map[string]map[string][]string `json:"permissions"`
}
