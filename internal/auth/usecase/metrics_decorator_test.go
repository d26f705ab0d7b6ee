package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestIdentityUseCaseWithMetrics_Resolve(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.Must(uuid.NewV7())

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		mockAccountRepo := &mockAccountRepository{}
		mockGuardianRepo := &mockGuardianRepository{}
		mockMetrics := &mockBusinessMetrics{}
		account := activeTestAccount(orgID, "staff-subject", nil)
		mockAccountRepo.On("GetBySubject", ctx, "staff-subject").Return(account, nil)
		mockMetrics.On("RecordOperation", ctx, "auth", "identity_resolve_staff", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "identity_resolve_staff", mock.Anything, "success").Once()

		useCase := NewIdentityUseCaseWithMetrics(NewIdentityUseCase(mockAccountRepo, mockGuardianRepo), mockMetrics)
		identity, err := useCase.Resolve(ctx, "staff-subject", authDomain.StaffIdentity)

		require.NoError(t, err)
		assert.Equal(t, account.ID, identity.AccountID)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Failure_RecordsErrorStatus", func(t *testing.T) {
		mockAccountRepo := &mockAccountRepository{}
		mockGuardianRepo := &mockGuardianRepository{}
		mockMetrics := &mockBusinessMetrics{}
		mockAccountRepo.On("GetBySubject", ctx, "ghost").Return(nil, authDomain.ErrAccountNotFound)
		mockMetrics.On("RecordOperation", ctx, "auth", "identity_resolve_portal", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "identity_resolve_portal", mock.Anything, "error").Once()

		useCase := NewIdentityUseCaseWithMetrics(NewIdentityUseCase(mockAccountRepo, mockGuardianRepo), mockMetrics)
		_, err := useCase.Resolve(ctx, "ghost", authDomain.PortalIdentity)

		assert.ErrorIs(t, err, authDomain.ErrNoAccess)
		mockMetrics.AssertExpectations(t)
	})
}

func TestAuthorizationUseCaseWithMetrics_Authorize(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.Must(uuid.NewV7())
	roleID := uuid.Must(uuid.NewV7())

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		mockRoleRepo := &mockRoleRepository{}
		mockMetrics := &mockBusinessMetrics{}
		role := &authDomain.Role{
			ID:             roleID,
			OrganizationID: orgID,
			Name:           "test-role",
			Permissions:    []authDomain.Permission{authDomain.PermEventsRead},
		}
		mockRoleRepo.On("Get", ctx, roleID).Return(role, nil)
		mockMetrics.On("RecordOperation", ctx, "auth", "authorize", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authorize", mock.Anything, "success").Once()

		useCase := NewAuthorizationUseCaseWithMetrics(NewAuthorizationUseCase(mockRoleRepo), mockMetrics)
		err := useCase.Authorize(ctx, testIdentityWithRole(orgID, &roleID), authDomain.PermEventsRead)

		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Failure_RecordsErrorStatus", func(t *testing.T) {
		mockRoleRepo := &mockRoleRepository{}
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "auth", "authorize", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authorize", mock.Anything, "error").Once()

		useCase := NewAuthorizationUseCaseWithMetrics(NewAuthorizationUseCase(mockRoleRepo), mockMetrics)
		err := useCase.Authorize(ctx, testIdentityWithRole(orgID, nil), authDomain.PermEventsRead)

		assert.ErrorIs(t, err, authDomain.ErrPermissionDenied)
		mockMetrics.AssertExpectations(t)
	})
}
