package app

import (
	"context"
	"fmt"

	authHTTP "github.com/gharrison91/camp-connect-sub002/internal/auth/http"
	authRepository "github.com/gharrison91/camp-connect-sub002/internal/auth/repository"
	authService "github.com/gharrison91/camp-connect-sub002/internal/auth/service"
	authUseCase "github.com/gharrison91/camp-connect-sub002/internal/auth/usecase"
)

// TokenVerifier returns the token verification service.
//
// The static HS256 secret is resolved at container initialization, unwrapping
// the KMS-encrypted ciphertext when one is configured.
func (c *Container) TokenVerifier() (authService.TokenVerifier, error) {
	var err error
	c.tokenVerifierInit.Do(func() {
		c.tokenVerifier, err = c.initTokenVerifier()
		if err != nil {
			c.initErrors["tokenVerifier"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenVerifier"]; exists {
		return nil, storedErr
	}
	return c.tokenVerifier, nil
}

// AccountRepository returns the account repository instance.
func (c *Container) AccountRepository() (authUseCase.AccountRepository, error) {
	var err error
	c.accountRepositoryInit.Do(func() {
		c.accountRepository, err = c.initAccountRepository()
		if err != nil {
			c.initErrors["accountRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accountRepository"]; exists {
		return nil, storedErr
	}
	return c.accountRepository, nil
}

// GuardianRepository returns the guardian repository instance.
func (c *Container) GuardianRepository() (authUseCase.GuardianRepository, error) {
	var err error
	c.guardianRepositoryInit.Do(func() {
		c.guardianRepository, err = c.initGuardianRepository()
		if err != nil {
			c.initErrors["guardianRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["guardianRepository"]; exists {
		return nil, storedErr
	}
	return c.guardianRepository, nil
}

// RoleRepository returns the role repository instance.
func (c *Container) RoleRepository() (authUseCase.RoleRepository, error) {
	var err error
	c.roleRepositoryInit.Do(func() {
		c.roleRepository, err = c.initRoleRepository()
		if err != nil {
			c.initErrors["roleRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["roleRepository"]; exists {
		return nil, storedErr
	}
	return c.roleRepository, nil
}

// IdentityUseCase returns the identity resolution use case.
func (c *Container) IdentityUseCase() (authUseCase.IdentityUseCase, error) {
	var err error
	c.identityUseCaseInit.Do(func() {
		c.identityUseCase, err = c.initIdentityUseCase()
		if err != nil {
			c.initErrors["identityUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identityUseCase"]; exists {
		return nil, storedErr
	}
	return c.identityUseCase, nil
}

// AuthorizationUseCase returns the permission authorization use case.
func (c *Container) AuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	var err error
	c.authorizationUseCaseInit.Do(func() {
		c.authorizationUseCase, err = c.initAuthorizationUseCase()
		if err != nil {
			c.initErrors["authorizationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authorizationUseCase"]; exists {
		return nil, storedErr
	}
	return c.authorizationUseCase, nil
}

// IdentityHandler returns the HTTP handler for identity introspection.
func (c *Container) IdentityHandler() *authHTTP.IdentityHandler {
	c.identityHandlerInit.Do(func() {
		c.identityHandler = authHTTP.NewIdentityHandler(c.Logger())
	})
	return c.identityHandler
}

// PermissionHandler returns the HTTP handler for the permission catalog.
func (c *Container) PermissionHandler() *authHTTP.PermissionHandler {
	c.permissionHandlerInit.Do(func() {
		c.permissionHandler = authHTTP.NewPermissionHandler(c.Logger())
	})
	return c.permissionHandler
}

// initTokenVerifier creates the token verifier with the configured methods.
func (c *Container) initTokenVerifier() (authService.TokenVerifier, error) {
	staticSecret, err := authService.ResolveStaticSecret(
		context.Background(),
		c.config.AuthJWTSecret,
		c.config.AuthJWTSecretCiphertext,
		c.config.KMSKeyURI,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static token secret: %w", err)
	}

	return authService.NewTokenVerifier(authService.VerifierConfig{
		JWKSURL:         c.config.JWKSEndpoint(),
		StaticSecret:    staticSecret,
		Audience:        c.config.AuthAudience,
		ClockSkew:       c.config.AuthClockSkew,
		RefreshInterval: c.config.AuthJWKSRefreshInterval,
		HTTPTimeout:     c.config.AuthJWKSTimeout,
	}, c.Logger())
}

// initAccountRepository creates the account repository instance.
func (c *Container) initAccountRepository() (authUseCase.AccountRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for account repository: %w", err)
	}
	return authRepository.NewPostgreSQLAccountRepository(db), nil
}

// initGuardianRepository creates the guardian repository instance.
func (c *Container) initGuardianRepository() (authUseCase.GuardianRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for guardian repository: %w", err)
	}
	return authRepository.NewPostgreSQLGuardianRepository(db), nil
}

// initRoleRepository creates the role repository instance.
func (c *Container) initRoleRepository() (authUseCase.RoleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for role repository: %w", err)
	}
	return authRepository.NewPostgreSQLRoleRepository(db), nil
}

// initIdentityUseCase creates the identity use case with all its dependencies.
func (c *Container) initIdentityUseCase() (authUseCase.IdentityUseCase, error) {
	accountRepository, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for identity use case: %w", err)
	}

	guardianRepository, err := c.GuardianRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get guardian repository for identity use case: %w", err)
	}

	baseUseCase := authUseCase.NewIdentityUseCase(accountRepository, guardianRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for identity use case: %w", err)
		}
		return authUseCase.NewIdentityUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthorizationUseCase creates the authorization use case with all its dependencies.
func (c *Container) initAuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	roleRepository, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for authorization use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthorizationUseCase(roleRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for authorization use case: %w", err)
		}
		return authUseCase.NewAuthorizationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
