// Package domain defines models for camp events.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// ErrEventNotFound indicates no event matches the lookup within the bound
// tenant. Rows owned by other tenants are invisible, so a foreign event ID
// produces this same error.
var ErrEventNotFound = errors.Wrap(errors.ErrNotFound, "event not found")

// Event is a scheduled camp activity owned by one organization.
//
// Tenant ownership is enforced by the database's row policy on the events
// table, keyed on the transaction-local tenant setting. Application queries
// never filter by organization themselves.
type Event struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Location       string
	Capacity       int
	StartsAt       time.Time
	EndsAt         *time.Time
	CreatedAt      time.Time
}

// CreateEventInput carries the fields for creating an event.
type CreateEventInput struct {
	Name     string
	Location string
	Capacity int
	StartsAt time.Time
	EndsAt   *time.Time
}
