package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/database"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// PostgreSQLRoleRepository implements Role persistence for PostgreSQL.
// Permissions are stored as a JSONB array of permission strings.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// NewPostgreSQLRoleRepository creates a new PostgreSQLRoleRepository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{
		db: db,
	}
}

// Get retrieves a role by ID.
func (r *PostgreSQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, organization_id, name, is_platform, permissions, created_at
			  FROM roles WHERE id = $1`

	var (
		role            domain.Role
		permissionsJSON []byte
	)

	err := querier.QueryRowContext(ctx, query, roleID).Scan(
		&role.ID,
		&role.OrganizationID,
		&role.Name,
		&role.IsPlatform,
		&permissionsJSON,
		&role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role by id")
	}

	if len(permissionsJSON) > 0 {
		if err := json.Unmarshal(permissionsJSON, &role.Permissions); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal role permissions")
		}
	}

	return &role, nil
}
