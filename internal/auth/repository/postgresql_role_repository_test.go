package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/testutil"
)

func TestPostgreSQLRoleRepository_Get(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLRoleRepository(db)
	ctx := context.Background()

	orgID := testutil.CreateTestOrganization(t, db, "role-org")

	t.Run("Success_RoleWithPermissions", func(t *testing.T) {
		roleID := testutil.CreateTestRole(t, db, orgID, "counselor", false,
			[]string{"core.events.read", "core.campers.read"})

		role, err := repo.Get(ctx, roleID)

		require.NoError(t, err)
		assert.Equal(t, roleID, role.ID)
		assert.Equal(t, orgID, role.OrganizationID)
		assert.Equal(t, "counselor", role.Name)
		assert.False(t, role.IsPlatform)
		assert.Equal(t, []domain.Permission{"core.events.read", "core.campers.read"}, role.Permissions)
	})

	t.Run("Success_PlatformRoleWithoutPermissions", func(t *testing.T) {
		roleID := testutil.CreateTestRole(t, db, orgID, "platform-operator", true, nil)

		role, err := repo.Get(ctx, roleID)

		require.NoError(t, err)
		assert.True(t, role.IsPlatform)
		assert.Empty(t, role.Permissions)
	})

	t.Run("Failure_UnknownRole", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	})
}
