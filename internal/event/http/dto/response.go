// Package dto provides data transfer objects for event HTTP request and response handling.
package dto

import (
	"time"

	eventDomain "github.com/gharrison91/camp-connect-sub002/internal/event/domain"
)

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Location       string     `json:"location,omitempty"`
	Capacity       int        `json:"capacity"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ListEventsResponse represents a paginated list of events in API responses.
type ListEventsResponse struct {
	Data []EventResponse `json:"data"`
}

// MapEventToResponse converts a domain event to an API response.
func MapEventToResponse(event *eventDomain.Event) EventResponse {
	return EventResponse{
		ID:             event.ID.String(),
		OrganizationID: event.OrganizationID.String(),
		Name:           event.Name,
		Location:       event.Location,
		Capacity:       event.Capacity,
		StartsAt:       event.StartsAt,
		EndsAt:         event.EndsAt,
		CreatedAt:      event.CreatedAt,
	}
}

// MapEventsToListResponse converts a slice of domain events to a list response.
func MapEventsToListResponse(events []*eventDomain.Event) ListEventsResponse {
	data := make([]EventResponse, 0, len(events))
	for _, event := range events {
		data = append(data, MapEventToResponse(event))
	}

	return ListEventsResponse{
		Data: data,
	}
}
