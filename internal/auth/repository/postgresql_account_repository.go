// Package repository implements data persistence for identity entities.
//
// Provides PostgreSQL implementations with transaction support via
// database.GetTx(). Soft-deleted rows are filtered at the query level so a
// deleted account is indistinguishable from one that never existed.
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

// PostgreSQLAccountRepository implements Account persistence for PostgreSQL.
type PostgreSQLAccountRepository struct {
	db *sql.DB
}

// NewPostgreSQLAccountRepository creates a new PostgreSQLAccountRepository.
func NewPostgreSQLAccountRepository(db *sql.DB) *PostgreSQLAccountRepository {
	return &PostgreSQLAccountRepository{
		db: db,
	}
}

// GetBySubject retrieves an account by its external identity subject.
// Soft-deleted accounts are treated as missing.
func (r *PostgreSQLAccountRepository) GetBySubject(ctx context.Context, subject string) (*domain.Account, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, organization_id, auth_subject, role_id, is_active, deleted_at, created_at
			  FROM accounts WHERE auth_subject = $1 AND deleted_at IS NULL`

	var (
		account   domain.Account
		roleID    uuid.NullUUID
		deletedAt sql.NullTime
	)

	err := querier.QueryRowContext(ctx, query, subject).Scan(
		&account.ID,
		&account.OrganizationID,
		&account.AuthSubject,
		&roleID,
		&account.IsActive,
		&deletedAt,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by subject")
	}

	if roleID.Valid {
		account.RoleID = &roleID.UUID
	}
	if deletedAt.Valid {
		account.DeletedAt = &deletedAt.Time
	}

	return &account, nil
}
