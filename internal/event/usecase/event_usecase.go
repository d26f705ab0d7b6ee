// Package usecase implements business logic orchestration for camp events.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/database"
	"github.com/gharrison91/camp-connect-sub002/internal/event/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/tenant"
)

// eventUseCase implements EventUseCase.
type eventUseCase struct {
	txManager database.TxManager
	binder    *tenant.Binder
	eventRepo EventRepository
}

// NewEventUseCase creates a new EventUseCase.
func NewEventUseCase(
	txManager database.TxManager,
	binder *tenant.Binder,
	eventRepo EventRepository,
) EventUseCase {
	return &eventUseCase{
		txManager: txManager,
		binder:    binder,
		eventRepo: eventRepo,
	}
}

// Create stores a new event owned by the caller's organization.
//
// The insert runs in a transaction with the tenant scope bound first, so the
// row policy verifies the ownership column against the caller's tenant.
func (e *eventUseCase) Create(
	ctx context.Context,
	tenantID tenant.ID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	event := &domain.Event{
		ID:             uuid.Must(uuid.NewV7()),
		OrganizationID: tenantID.UUID(),
		Name:           input.Name,
		Location:       input.Location,
		Capacity:       input.Capacity,
		StartsAt:       input.StartsAt,
		EndsAt:         input.EndsAt,
		CreatedAt:      time.Now().UTC(),
	}

	err := e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := e.binder.Bind(txCtx, tenantID); err != nil {
			return err
		}
		return e.eventRepo.Create(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// List retrieves the caller's organization's events.
func (e *eventUseCase) List(
	ctx context.Context,
	tenantID tenant.ID,
	offset, limit int,
) ([]*domain.Event, error) {
	var events []*domain.Event

	err := e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := e.binder.Bind(txCtx, tenantID); err != nil {
			return err
		}

		listed, err := e.eventRepo.List(txCtx, offset, limit)
		if err != nil {
			return err
		}
		events = listed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// Get retrieves one of the caller's organization's events.
func (e *eventUseCase) Get(
	ctx context.Context,
	tenantID tenant.ID,
	eventID uuid.UUID,
) (*domain.Event, error) {
	var event *domain.Event

	err := e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := e.binder.Bind(txCtx, tenantID); err != nil {
			return err
		}

		found, err := e.eventRepo.Get(txCtx, eventID)
		if err != nil {
			return err
		}
		event = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}
