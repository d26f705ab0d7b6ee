package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// mockTokenVerifier is a mock implementation of service.TokenVerifier for testing.
type mockTokenVerifier struct {
	mock.Mock
}

func (m *mockTokenVerifier) Verify(ctx context.Context, token string) (*authDomain.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}

func (m *mockTokenVerifier) Warmup(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockIdentityUseCase is a mock implementation of usecase.IdentityUseCase for testing.
type mockIdentityUseCase struct {
	mock.Mock
}

func (m *mockIdentityUseCase) Resolve(
	ctx context.Context,
	subject string,
	kind authDomain.IdentityKind,
) (*authDomain.Identity, error) {
	args := m.Called(ctx, subject, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

// mockAuthorizationUseCase is a mock implementation of usecase.AuthorizationUseCase for testing.
type mockAuthorizationUseCase struct {
	mock.Mock
}

func (m *mockAuthorizationUseCase) Authorize(
	ctx context.Context,
	identity *authDomain.Identity,
	permission authDomain.Permission,
) error {
	args := m.Called(ctx, identity, permission)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdentity(kind authDomain.IdentityKind) *authDomain.Identity {
	roleID := uuid.Must(uuid.NewV7())
	return &authDomain.Identity{
		AccountID:      uuid.Must(uuid.NewV7()),
		Subject:        "test-subject",
		OrganizationID: uuid.Must(uuid.NewV7()),
		Kind:           kind,
		RoleID:         &roleID,
	}
}

func setupAuthRouter(
	verifier *mockTokenVerifier,
	identityUseCase *mockIdentityUseCase,
	kind authDomain.IdentityKind,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected",
		AuthenticationMiddleware(verifier, identityUseCase, kind, testLogger()),
		func(c *gin.Context) {
			identity, ok := GetIdentity(c.Request.Context())
			if !ok {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"account_id": identity.AccountID.String()})
		})
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	claims := &authDomain.Claims{Subject: "test-subject"}

	t.Run("Success_ValidBearerToken", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		identity := testIdentity(authDomain.StaffIdentity)
		verifier.On("Verify", mock.Anything, "good-token").Return(claims, nil)
		identityUseCase.On("Resolve", mock.Anything, "test-subject", authDomain.StaffIdentity).Return(identity, nil)

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), identity.AccountID.String())
	})

	t.Run("Success_CaseInsensitiveScheme", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		verifier.On("Verify", mock.Anything, "good-token").Return(claims, nil)
		identityUseCase.On("Resolve", mock.Anything, "test-subject", authDomain.StaffIdentity).
			Return(testIdentity(authDomain.StaffIdentity), nil)

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "BEARER good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure_MissingAuthorizationHeader", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		verifier.AssertNotCalled(t, "Verify")
	})

	t.Run("Failure_MalformedScheme", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failure_EmptyToken", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failure_ExpiredToken", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		verifier.On("Verify", mock.Anything, "stale-token").Return(nil, authDomain.ErrTokenExpired)

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		identityUseCase.AssertNotCalled(t, "Resolve")
	})

	t.Run("Failure_UnknownAccountRendersGenericForbidden", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		verifier.On("Verify", mock.Anything, "good-token").Return(claims, nil)
		identityUseCase.On("Resolve", mock.Anything, "test-subject", authDomain.PortalIdentity).
			Return(nil, authDomain.ErrNoAccess)

		router := setupAuthRouter(verifier, identityUseCase, authDomain.PortalIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You don't have access to this resource")
	})

	t.Run("Failure_PortalDisabledRendersSameForbiddenBody", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		verifier.On("Verify", mock.Anything, "good-token").Return(claims, nil)
		identityUseCase.On("Resolve", mock.Anything, "test-subject", authDomain.PortalIdentity).
			Return(nil, authDomain.ErrPortalDisabled)

		router := setupAuthRouter(verifier, identityUseCase, authDomain.PortalIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You don't have access to this resource")
	})

	t.Run("Failure_NoVerificationMethodRendersServerError", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		verifier.On("Verify", mock.Anything, "good-token").Return(nil, authDomain.ErrNoVerificationMethod)

		router := setupAuthRouter(verifier, identityUseCase, authDomain.StaffIdentity)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "misconfigured")
	})
}

func TestRequirePermission(t *testing.T) {
	setupRouter := func(
		verifier *mockTokenVerifier,
		identityUseCase *mockIdentityUseCase,
		authorizationUseCase *mockAuthorizationUseCase,
		permission authDomain.Permission,
	) *gin.Engine {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/guarded",
			AuthenticationMiddleware(verifier, identityUseCase, authDomain.StaffIdentity, testLogger()),
			RequirePermission(authorizationUseCase, permission, testLogger()),
			func(c *gin.Context) {
				checked, _ := GetPermission(c.Request.Context())
				c.JSON(http.StatusOK, gin.H{"permission": checked.String()})
			})
		return router
	}

	claims := &authDomain.Claims{Subject: "test-subject"}

	t.Run("Success_PermissionGranted", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		authorizationUseCase := &mockAuthorizationUseCase{}
		identity := testIdentity(authDomain.StaffIdentity)
		verifier.On("Verify", mock.Anything, "good-token").Return(claims, nil)
		identityUseCase.On("Resolve", mock.Anything, "test-subject", authDomain.StaffIdentity).Return(identity, nil)
		authorizationUseCase.On("Authorize", mock.Anything, identity, authDomain.PermEventsRead).Return(nil)

		router := setupRouter(verifier, identityUseCase, authorizationUseCase, authDomain.PermEventsRead)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), authDomain.PermEventsRead.String())
	})

	t.Run("Failure_PermissionDenied", func(t *testing.T) {
		verifier := &mockTokenVerifier{}
		identityUseCase := &mockIdentityUseCase{}
		authorizationUseCase := &mockAuthorizationUseCase{}
		identity := testIdentity(authDomain.StaffIdentity)
		verifier.On("Verify", mock.Anything, "good-token").Return(claims, nil)
		identityUseCase.On("Resolve", mock.Anything, "test-subject", authDomain.StaffIdentity).Return(identity, nil)
		authorizationUseCase.On("Authorize", mock.Anything, identity, authDomain.PermEventsDelete).
			Return(authDomain.ErrPermissionDenied)

		router := setupRouter(verifier, identityUseCase, authorizationUseCase, authDomain.PermEventsDelete)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You don't have access to this resource")
	})

	t.Run("Failure_NoIdentityInContext", func(t *testing.T) {
		authorizationUseCase := &mockAuthorizationUseCase{}
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/guarded",
			RequirePermission(authorizationUseCase, authDomain.PermEventsRead, testLogger()),
			func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		authorizationUseCase.AssertNotCalled(t, "Authorize")
	})
}
