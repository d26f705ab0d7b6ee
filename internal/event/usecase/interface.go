// Package usecase defines business logic interfaces for camp event operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/event/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/tenant"
)

// EventRepository defines persistence operations for events. Implementations
// rely on the database's row policy for tenant isolation and must run inside
// a transaction with the tenant scope bound.
type EventRepository interface {
	// Create stores a new event.
	Create(ctx context.Context, event *domain.Event) error

	// List retrieves the events visible to the bound tenant.
	List(ctx context.Context, offset, limit int) ([]*domain.Event, error)

	// Get retrieves an event by ID. Returns ErrEventNotFound if not found
	// or owned by another tenant.
	Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
}

// EventUseCase defines business logic operations for camp events. Every
// operation opens a unit of work, binds the caller's tenant scope to it, and
// runs its queries inside that scope.
type EventUseCase interface {
	// Create stores a new event owned by the caller's organization.
	Create(ctx context.Context, tenantID tenant.ID, input *domain.CreateEventInput) (*domain.Event, error)

	// List retrieves the caller's organization's events.
	List(ctx context.Context, tenantID tenant.ID, offset, limit int) ([]*domain.Event, error)

	// Get retrieves one of the caller's organization's events.
	// Returns ErrEventNotFound for foreign and unknown IDs alike.
	Get(ctx context.Context, tenantID tenant.ID, eventID uuid.UUID) (*domain.Event, error)
}
