package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/event/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/metrics"
	"github.com/gharrison91/camp-connect-sub002/internal/tenant"
)

// eventUseCaseWithMetrics decorates EventUseCase with metrics instrumentation.
type eventUseCaseWithMetrics struct {
	next    EventUseCase
	metrics metrics.BusinessMetrics
}

// NewEventUseCaseWithMetrics wraps an EventUseCase with metrics recording.
func NewEventUseCaseWithMetrics(useCase EventUseCase, m metrics.BusinessMetrics) EventUseCase {
	return &eventUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for event creation operations.
func (e *eventUseCaseWithMetrics) Create(
	ctx context.Context,
	tenantID tenant.ID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Create(ctx, tenantID, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "events", "event_create", status)
	e.metrics.RecordDuration(ctx, "events", "event_create", time.Since(start), status)

	return event, err
}

// List records metrics for event list operations.
func (e *eventUseCaseWithMetrics) List(
	ctx context.Context,
	tenantID tenant.ID,
	offset, limit int,
) ([]*domain.Event, error) {
	start := time.Now()
	events, err := e.next.List(ctx, tenantID, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "events", "event_list", status)
	e.metrics.RecordDuration(ctx, "events", "event_list", time.Since(start), status)

	return events, err
}

// Get records metrics for event retrieval operations.
func (e *eventUseCaseWithMetrics) Get(
	ctx context.Context,
	tenantID tenant.ID,
	eventID uuid.UUID,
) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Get(ctx, tenantID, eventID)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "events", "event_get", status)
	e.metrics.RecordDuration(ctx, "events", "event_get", time.Since(start), status)

	return event, err
}
