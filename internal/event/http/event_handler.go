// Package http provides HTTP handlers for camp event operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/gharrison91/camp-connect-sub002/internal/auth/http"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
	"github.com/gharrison91/camp-connect-sub002/internal/event/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/event/http/dto"
	eventUseCase "github.com/gharrison91/camp-connect-sub002/internal/event/usecase"
	"github.com/gharrison91/camp-connect-sub002/internal/httputil"
	"github.com/gharrison91/camp-connect-sub002/internal/tenant"
	customValidation "github.com/gharrison91/camp-connect-sub002/internal/validation"
)

// EventHandler handles HTTP requests for camp event operations. The tenant
// scope for every operation comes from the authenticated identity, never from
// the request payload.
type EventHandler struct {
	eventUseCase eventUseCase.EventUseCase
	logger       *slog.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(useCase eventUseCase.EventUseCase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: useCase,
		logger:       logger,
	}
}

// CreateHandler creates a new event for the caller's organization.
// POST /v1/events - Requires the events create permission.
// Returns 201 Created with the stored event.
func (h *EventHandler) CreateHandler(c *gin.Context) {
	tenantID, ok := h.callerTenant(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &domain.CreateEventInput{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}

	event, err := h.eventUseCase.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEventToResponse(event))
}

// ListHandler retrieves the caller's organization's events with pagination.
// GET /v1/events?offset=0&limit=50 - Requires the events read permission.
func (h *EventHandler) ListHandler(c *gin.Context) {
	tenantID, ok := h.callerTenant(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	events, err := h.eventUseCase.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEventsToListResponse(events))
}

// GetHandler retrieves one of the caller's organization's events by ID.
// GET /v1/events/:id - Requires the events read permission.
// Events owned by other organizations return 404, same as unknown IDs.
func (h *EventHandler) GetHandler(c *gin.Context) {
	tenantID, ok := h.callerTenant(c)
	if !ok {
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid event id: must be a valid UUID"),
			h.logger,
		)
		return
	}

	event, err := h.eventUseCase.Get(c.Request.Context(), tenantID, eventID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEventToResponse(event))
}

// callerTenant extracts the tenant scope from the authenticated identity.
func (h *EventHandler) callerTenant(c *gin.Context) (tenant.ID, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok || identity == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthenticated, h.logger)
		return tenant.ID{}, false
	}
	return tenant.IDFrom(identity.OrganizationID), true
}
