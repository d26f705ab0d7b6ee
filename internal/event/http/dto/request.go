// Package dto provides data transfer objects for event HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/gharrison91/camp-connect-sub002/internal/validation"
)

// CreateEventRequest contains the parameters for creating an event.
type CreateEventRequest struct {
	Name     string     `json:"name" binding:"required"`
	Location string     `json:"location"`
	Capacity int        `json:"capacity"`
	StartsAt time.Time  `json:"starts_at" binding:"required"`
	EndsAt   *time.Time `json:"ends_at"`
}

// Validate checks if the create event request is valid.
func (r *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 200),
		),
		validation.Field(&r.Location,
			validation.Length(0, 200),
		),
		validation.Field(&r.Capacity,
			validation.Min(0),
		),
		validation.Field(&r.StartsAt,
			validation.Required,
		),
		validation.Field(&r.EndsAt,
			validation.By(r.endsAfterStart),
		),
	)
}

func (r *CreateEventRequest) endsAfterStart(value interface{}) error {
	endsAt, ok := value.(*time.Time)
	if !ok || endsAt == nil {
		return nil
	}
	if !endsAt.After(r.StartsAt) {
		return validation.NewError("validation_ends_at", "must be after starts_at")
	}
	return nil
}
