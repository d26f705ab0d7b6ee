// Package repository implements data persistence for camp events.
//
// Queries deliberately carry no organization filter: tenant isolation comes
// from the row level security policy on the events table, which only matches
// rows for the tenant bound to the current transaction. Every method must
// therefore run inside a transaction with the tenant setting applied.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/database"
	"github.com/gharrison91/camp-connect-sub002/internal/event/domain"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// PostgreSQLEventRepository implements Event persistence for PostgreSQL.
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLEventRepository creates a new PostgreSQLEventRepository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{
		db: db,
	}
}

// Create inserts a new event. The row policy rejects the insert if the
// event's organization does not match the bound tenant.
func (r *PostgreSQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events (id, organization_id, name, location, capacity, starts_at, ends_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		event.ID,
		event.OrganizationID,
		event.Name,
		event.Location,
		event.Capacity,
		event.StartsAt,
		event.EndsAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create event")
	}
	return nil
}

// List retrieves the events visible to the bound tenant, soonest first.
func (r *PostgreSQLEventRepository) List(ctx context.Context, offset, limit int) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, organization_id, name, location, capacity, starts_at, ends_at, created_at
			  FROM events ORDER BY starts_at, id OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate events")
	}

	return events, nil
}

// Get retrieves an event by ID within the bound tenant.
func (r *PostgreSQLEventRepository) Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, organization_id, name, location, capacity, starts_at, ends_at, created_at
			  FROM events WHERE id = $1`

	var (
		event  domain.Event
		endsAt sql.NullTime
	)

	err := querier.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.OrganizationID,
		&event.Name,
		&event.Location,
		&event.Capacity,
		&event.StartsAt,
		&endsAt,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get event by id")
	}

	if endsAt.Valid {
		event.EndsAt = &endsAt.Time
	}

	return &event, nil
}

func scanEvent(rows *sql.Rows) (*domain.Event, error) {
	var (
		event  domain.Event
		endsAt sql.NullTime
	)

	err := rows.Scan(
		&event.ID,
		&event.OrganizationID,
		&event.Name,
		&event.Location,
		&event.Capacity,
		&event.StartsAt,
		&endsAt,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan event")
	}

	if endsAt.Valid {
		event.EndsAt = &endsAt.Time
	}

	return &event, nil
}
