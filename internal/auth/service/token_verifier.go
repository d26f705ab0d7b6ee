package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

// VerifierConfig holds the verification parameters for a tokenVerifier.
type VerifierConfig struct {
	// JWKSURL is the identity provider's key set endpoint. Empty disables
	// asymmetric verification.
	JWKSURL string

	// StaticSecret is the shared HS256 signing key. Empty disables the
	// symmetric fallback.
	StaticSecret []byte

	// Audience is the expected "aud" claim. Empty skips the audience check.
	Audience string

	// ClockSkew is the tolerance applied to time-based claims.
	ClockSkew time.Duration

	// RefreshInterval bounds how often the JWKS cache refreshes.
	RefreshInterval time.Duration

	// HTTPTimeout bounds each JWKS fetch.
	HTTPTimeout time.Duration
}

// tokenVerifier implements TokenVerifier using lestrrat-go/jwx. The JWKS key
// set is held in a lazy cache owned by this instance, so tests and multiple
// deployments never share key state through globals.
type tokenVerifier struct {
	jwksURL string
	cache   *jwk.Cache
	secret  []byte
	cfg     VerifierConfig
	logger  *slog.Logger
}

// NewTokenVerifier creates a TokenVerifier from the given configuration.
// Registering the JWKS endpoint is cheap; no fetch happens until the first
// Verify or Warmup call.
func NewTokenVerifier(cfg VerifierConfig, logger *slog.Logger) (TokenVerifier, error) {
	v := &tokenVerifier{
		jwksURL: cfg.JWKSURL,
		secret:  cfg.StaticSecret,
		cfg:     cfg,
		logger:  logger,
	}

	if cfg.JWKSURL != "" {
		cache := jwk.NewCache(context.Background())
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		if err := cache.Register(
			cfg.JWKSURL,
			jwk.WithMinRefreshInterval(cfg.RefreshInterval),
			jwk.WithHTTPClient(httpClient),
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to register jwks endpoint")
		}
		v.cache = cache
	}

	return v, nil
}

// Verify implements TokenVerifier.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}
	if v.cache == nil && len(v.secret) == 0 {
		return nil, domain.ErrNoVerificationMethod
	}

	if v.cache != nil {
		claims, err := v.verifyAsymmetric(ctx, token)
		if err == nil {
			return claims, nil
		}
		if errors.Is(err, domain.ErrTokenExpired) || errors.Is(err, domain.ErrTokenMalformed) {
			return nil, err
		}
		if len(v.secret) == 0 {
			return nil, err
		}
		v.logger.Debug("asymmetric verification failed, trying static secret", "error", err)
	}

	return v.verifySymmetric(ctx, token)
}

// Warmup implements TokenVerifier.
func (v *tokenVerifier) Warmup(ctx context.Context) error {
	if v.cache == nil {
		return nil
	}
	if v.cfg.HTTPTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.cfg.HTTPTimeout)
		defer cancel()
	}
	if _, err := v.cache.Refresh(ctx, v.jwksURL); err != nil {
		return apperrors.Wrap(err, "failed to refresh jwks key set")
	}
	return nil
}

func (v *tokenVerifier) verifyAsymmetric(ctx context.Context, token string) (*domain.Claims, error) {
	keySet, err := v.cache.Get(ctx, v.jwksURL)
	if err != nil {
		// Key set fetch failures are indistinguishable from signature
		// failures for the caller: both leave the fallback path open.
		return nil, apperrors.Wrap(domain.ErrTokenInvalid, "jwks key set unavailable: "+err.Error())
	}

	// Validation is deferred to validateAndExtract so an expired token with a
	// good signature is classified as expired, not as a signature failure.
	parsed, err := jwt.Parse([]byte(token), jwt.WithKeySet(keySet), jwt.WithValidate(false))
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrTokenInvalid, "signature verification failed: "+err.Error())
	}

	return v.validateAndExtract(parsed)
}

func (v *tokenVerifier) verifySymmetric(_ context.Context, token string) (*domain.Claims, error) {
	parsed, err := jwt.Parse([]byte(token), jwt.WithKey(jwa.HS256, v.secret), jwt.WithValidate(false))
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrTokenInvalid, "signature verification failed: "+err.Error())
	}

	return v.validateAndExtract(parsed)
}

// validateAndExtract checks registered claims on a signature-verified token
// and decodes the claims the rest of the system consumes.
func (v *tokenVerifier) validateAndExtract(parsed jwt.Token) (*domain.Claims, error) {
	opts := []jwt.ValidateOption{
		jwt.WithAcceptableSkew(v.cfg.ClockSkew),
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	if err := jwt.Validate(parsed, opts...); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return nil, domain.ErrTokenExpired
		}
		return nil, apperrors.Wrap(domain.ErrTokenInvalid, "claim validation failed: "+err.Error())
	}

	if parsed.Subject() == "" {
		return nil, apperrors.Wrap(domain.ErrTokenMalformed, "subject claim is empty")
	}

	claims := &domain.Claims{
		Subject:   parsed.Subject(),
		IssuedAt:  parsed.IssuedAt(),
		ExpiresAt: parsed.Expiration(),
	}
	if audience := parsed.Audience(); len(audience) > 0 {
		claims.Audience = audience[0]
	}
	if value, ok := parsed.PrivateClaims()["role"]; ok {
		if role, ok := value.(string); ok {
			claims.Role = role
		}
	}

	return claims, nil
}
