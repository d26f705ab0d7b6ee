package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/database"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// PostgreSQLGuardianRepository implements Guardian persistence for PostgreSQL.
type PostgreSQLGuardianRepository struct {
	db *sql.DB
}

// NewPostgreSQLGuardianRepository creates a new PostgreSQLGuardianRepository.
func NewPostgreSQLGuardianRepository(db *sql.DB) *PostgreSQLGuardianRepository {
	return &PostgreSQLGuardianRepository{
		db: db,
	}
}

// GetByAccountID retrieves the guardian record linked to a portal account.
// Soft-deleted guardians are treated as missing.
func (r *PostgreSQLGuardianRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Guardian, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, organization_id, account_id, portal_access, deleted_at, created_at
			  FROM guardians WHERE account_id = $1 AND deleted_at IS NULL`

	var (
		guardian  domain.Guardian
		deletedAt sql.NullTime
	)

	err := querier.QueryRowContext(ctx, query, accountID).Scan(
		&guardian.ID,
		&guardian.OrganizationID,
		&guardian.AccountID,
		&guardian.PortalAccess,
		&deletedAt,
		&guardian.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuardianNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get guardian by account id")
	}

	if deletedAt.Valid {
		guardian.DeletedAt = &deletedAt.Time
	}

	return &guardian, nil
}

// ListCamperIDs retrieves the campers linked to a guardian, ordered for
// stable output.
func (r *PostgreSQLGuardianRepository) ListCamperIDs(ctx context.Context, guardianID uuid.UUID) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT camper_id FROM guardian_campers WHERE guardian_id = $1 ORDER BY camper_id`

	rows, err := querier.QueryContext(ctx, query, guardianID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list camper ids")
	}
	defer rows.Close()

	var camperIDs []uuid.UUID
	for rows.Next() {
		var camperID uuid.UUID
		if err := rows.Scan(&camperID); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan camper id")
		}
		camperIDs = append(camperIDs, camperID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate camper ids")
	}

	return camperIDs, nil
}
