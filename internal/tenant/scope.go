// Package tenant binds a request's unit of work to exactly one tenant so the
// storage layer's row-level security policies apply.
//
// Binding writes the organization id into a transaction-scoped Postgres
// setting via SET LOCAL. SET LOCAL cannot take placeholder parameters, so the
// value embedded in the statement must never be attacker-controlled text: ID
// is a parsed uuid.UUID and only its canonical string form ever reaches the
// statement. Because the setting is SET LOCAL (not SET), it dies with the
// transaction and a pooled connection reused by the next request starts with
// no scope.
package tenant

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/database"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// Tenant binding errors.
var (
	// ErrMalformedID indicates a tenant identifier that is not a well-formed UUID.
	ErrMalformedID = apperrors.Wrap(apperrors.ErrInvalidInput, "malformed tenant id")

	// ErrNoTransaction indicates a bind attempt outside a unit of work. Binding
	// on the bare pool would attach the scope to whichever connection the next
	// statement happens to grab.
	ErrNoTransaction = apperrors.New("tenant binding requires an open transaction")
)

// ID is a validated tenant (organization) identifier. The only way to obtain
// one from untrusted text is ParseID, which keeps the validation step ahead of
// the SET LOCAL statement at the type level.
type ID struct {
	value uuid.UUID
}

// IDFrom wraps an already-typed UUID (e.g. read from the accounts table).
func IDFrom(id uuid.UUID) ID {
	return ID{value: id}
}

// ParseID validates an untrusted string as a tenant identifier.
func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ID{}, apperrors.Wrap(ErrMalformedID, s)
	}
	return ID{value: id}, nil
}

// UUID returns the underlying identifier.
func (id ID) UUID() uuid.UUID {
	return id.value
}

// String returns the canonical string form.
func (id ID) String() string {
	return id.value.String()
}

// IsZero reports whether the ID is the zero value.
func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}

// Binder applies a tenant scope to the current unit of work.
type Binder struct {
	settingKey string
	logger     *slog.Logger
}

// NewBinder creates a Binder writing to the given transaction-scoped setting
// key (e.g. "app.current_org").
func NewBinder(settingKey string, logger *slog.Logger) *Binder {
	return &Binder{settingKey: settingKey, logger: logger}
}

// Bind sets the tenant scope on the transaction carried by ctx. It must run
// after identity resolution and before any tenant-scoped storage access in
// the same transaction.
func (b *Binder) Bind(ctx context.Context, id ID) error {
	if id.IsZero() {
		return ErrMalformedID
	}

	tx, ok := database.TxFrom(ctx)
	if !ok {
		return ErrNoTransaction
	}

	// SET LOCAL does not accept placeholders; id.String() is the canonical
	// form of a parsed UUID, never raw input.
	stmt := fmt.Sprintf("SET LOCAL %s = '%s'", b.settingKey, id.String())
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return apperrors.Wrap(err, "failed to bind tenant scope")
	}

	b.logger.Debug("tenant scope bound", slog.String("organization_id", id.String()))

	return nil
}

// Current reads the tenant setting back from the unit of work. Used by tests
// and diagnostics; business code should rely on the row-level policies.
func (b *Binder) Current(ctx context.Context, db *sql.DB) (string, error) {
	querier := database.GetTx(ctx, db)

	var value sql.NullString
	err := querier.QueryRowContext(
		ctx,
		"SELECT current_setting($1, true)",
		b.settingKey,
	).Scan(&value)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read tenant scope")
	}
	return value.String, nil
}
