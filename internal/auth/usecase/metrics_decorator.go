package usecase

import (
	"context"
	"time"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/metrics"
)

// identityUseCaseWithMetrics decorates IdentityUseCase with metrics instrumentation.
type identityUseCaseWithMetrics struct {
	next    IdentityUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentityUseCaseWithMetrics wraps an IdentityUseCase with metrics recording.
func NewIdentityUseCaseWithMetrics(useCase IdentityUseCase, m metrics.BusinessMetrics) IdentityUseCase {
	return &identityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Resolve records metrics for identity resolution operations.
func (i *identityUseCaseWithMetrics) Resolve(
	ctx context.Context,
	subject string,
	kind authDomain.IdentityKind,
) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := i.next.Resolve(ctx, subject, kind)

	status := "success"
	if err != nil {
		status = "error"
	}

	operation := "identity_resolve_" + string(kind)
	i.metrics.RecordOperation(ctx, "auth", operation, status)
	i.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)

	return identity, err
}

// authorizationUseCaseWithMetrics decorates AuthorizationUseCase with metrics instrumentation.
type authorizationUseCaseWithMetrics struct {
	next    AuthorizationUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthorizationUseCaseWithMetrics wraps an AuthorizationUseCase with metrics recording.
func NewAuthorizationUseCaseWithMetrics(useCase AuthorizationUseCase, m metrics.BusinessMetrics) AuthorizationUseCase {
	return &authorizationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authorize records metrics for authorization decisions.
func (a *authorizationUseCaseWithMetrics) Authorize(
	ctx context.Context,
	identity *authDomain.Identity,
	permission authDomain.Permission,
) error {
	start := time.Now()
	err := a.next.Authorize(ctx, identity, permission)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authorize", status)
	a.metrics.RecordDuration(ctx, "auth", "authorize", time.Since(start), status)

	return err
}
