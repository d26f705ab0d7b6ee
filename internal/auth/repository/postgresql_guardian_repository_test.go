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

func TestPostgreSQLGuardianRepository_GetByAccountID(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGuardianRepository(db)
	ctx := context.Background()

	orgID := testutil.CreateTestOrganization(t, db, "guardian-org")
	accountID := testutil.CreateTestAccount(t, db, orgID, "guardian-subject", nil, true)
	guardianID := testutil.CreateTestGuardian(t, db, orgID, accountID, true)

	t.Run("Success_LinkedGuardian", func(t *testing.T) {
		guardian, err := repo.GetByAccountID(ctx, accountID)

		require.NoError(t, err)
		assert.Equal(t, guardianID, guardian.ID)
		assert.Equal(t, orgID, guardian.OrganizationID)
		assert.Equal(t, accountID, guardian.AccountID)
		assert.True(t, guardian.PortalAccess)
	})

	t.Run("Success_PortalAccessDisabledIsReturned", func(t *testing.T) {
		// The portal-access gate belongs to the usecase; the repository only
		// hides soft-deleted rows.
		disabledAccountID := testutil.CreateTestAccount(t, db, orgID, "disabled-subject", nil, true)
		testutil.CreateTestGuardian(t, db, orgID, disabledAccountID, false)

		guardian, err := repo.GetByAccountID(ctx, disabledAccountID)

		require.NoError(t, err)
		assert.False(t, guardian.PortalAccess)
	})

	t.Run("Failure_NoGuardianRecord", func(t *testing.T) {
		orphanAccountID := testutil.CreateTestAccount(t, db, orgID, "orphan-subject", nil, true)

		_, err := repo.GetByAccountID(ctx, orphanAccountID)

		assert.ErrorIs(t, err, domain.ErrGuardianNotFound)
	})
}

func TestPostgreSQLGuardianRepository_ListCamperIDs(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGuardianRepository(db)
	ctx := context.Background()

	orgID := testutil.CreateTestOrganization(t, db, "camper-org")
	accountID := testutil.CreateTestAccount(t, db, orgID, "camper-guardian-subject", nil, true)
	guardianID := testutil.CreateTestGuardian(t, db, orgID, accountID, true)

	t.Run("Success_NoLinkedCampers", func(t *testing.T) {
		camperIDs, err := repo.ListCamperIDs(ctx, guardianID)

		require.NoError(t, err)
		assert.Empty(t, camperIDs)
	})

	t.Run("Success_LinkedCampers", func(t *testing.T) {
		camperID1 := testutil.CreateTestCamper(t, db, orgID, "Camper One")
		camperID2 := testutil.CreateTestCamper(t, db, orgID, "Camper Two")
		testutil.LinkGuardianCamper(t, db, guardianID, camperID1)
		testutil.LinkGuardianCamper(t, db, guardianID, camperID2)

		camperIDs, err := repo.ListCamperIDs(ctx, guardianID)

		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{camperID1, camperID2}, camperIDs)
	})

	t.Run("Success_UnknownGuardian", func(t *testing.T) {
		camperIDs, err := repo.ListCamperIDs(ctx, uuid.Must(uuid.NewV7()))

		require.NoError(t, err)
		assert.Empty(t, camperIDs)
	})
}
