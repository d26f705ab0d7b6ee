package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	authService "github.com/gharrison91/camp-connect-sub002/internal/auth/service"
	authUseCase "github.com/gharrison91/camp-connect-sub002/internal/auth/usecase"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
	"github.com/gharrison91/camp-connect-sub002/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via Bearer token in the
// Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies the token cryptographically using the TokenVerifier
// 3. Resolves the verified subject into an identity of the given kind
// 4. Stores the identity in the request context for downstream handlers
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Invalid or expired token → 401 Unauthorized (from TokenVerifier.Verify)
//   - Unknown, inactive, or portal-disabled account → 403 Forbidden with a
//     generic body (from IdentityUseCase.Resolve)
//   - No verification method configured → 500 with a misconfiguration code
//
// The kind parameter pins the resolution path per route group: staff routes
// resolve staff identities, portal routes resolve guardians.
//
// Usage:
//
//	staff := router.Group("/v1", AuthenticationMiddleware(verifier, identityUseCase, authDomain.StaffIdentity, logger))
//	staff.GET("/me", handler.Me)
func AuthenticationMiddleware(
	verifier authService.TokenVerifier,
	identityUseCase authUseCase.IdentityUseCase,
	kind authDomain.IdentityKind,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			logger.Debug("authentication failed: bad authorization header",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed: token verification",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		identity, err := identityUseCase.Resolve(c.Request.Context(), claims.Subject, kind)
		if err != nil {
			logger.Debug("authentication failed: identity resolution",
				slog.String("subject", claims.Subject),
				slog.String("kind", string(kind)),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("account_id", identity.AccountID.String()),
			slog.String("organization_id", identity.OrganizationID.String()),
			slog.String("kind", string(identity.Kind)))

		c.Next()
	}
}

// RequirePermission authorizes the current identity for a single permission.
//
// MUST be used after AuthenticationMiddleware, as it requires a resolved
// identity in the request context. The role behind the identity is loaded
// from storage on every check, so revoking a permission takes effect on the
// next request.
//
// Error handling:
//   - No identity in context → 401 Unauthorized (authentication not run)
//   - Permission not granted → 403 Forbidden with the same generic body as
//     every other access denial
//
// Usage:
//
//	staff.GET("/events",
//	    RequirePermission(authorizationUseCase, authDomain.PermEventsRead, logger),
//	    handler.List)
func RequirePermission(
	authorizationUseCase authUseCase.AuthorizationUseCase,
	permission authDomain.Permission,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok || identity == nil {
			logger.Debug("authorization failed: no identity in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthenticated, logger)
			c.Abort()
			return
		}

		if err := authorizationUseCase.Authorize(c.Request.Context(), identity, permission); err != nil {
			logger.Debug("authorization failed",
				slog.String("account_id", identity.AccountID.String()),
				slog.String("permission", permission.String()),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithPermission(c.Request.Context(), permission)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractBearerToken parses the Authorization header. The scheme comparison
// is case-insensitive.
func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", authDomain.ErrTokenMissing
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", authDomain.ErrTokenMissing
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", authDomain.ErrTokenMissing
	}

	return token, nil
}
