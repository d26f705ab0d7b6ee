package app

import (
	"fmt"

	eventHTTP "github.com/gharrison91/camp-connect-sub002/internal/event/http"
	eventRepository "github.com/gharrison91/camp-connect-sub002/internal/event/repository"
	eventUseCase "github.com/gharrison91/camp-connect-sub002/internal/event/usecase"
)

// EventRepository returns the event repository instance.
func (c *Container) EventRepository() (eventUseCase.EventRepository, error) {
	var err error
	c.eventRepositoryInit.Do(func() {
		c.eventRepository, err = c.initEventRepository()
		if err != nil {
			c.initErrors["eventRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventRepository"]; exists {
		return nil, storedErr
	}
	return c.eventRepository, nil
}

// EventUseCase returns the event use case.
func (c *Container) EventUseCase() (eventUseCase.EventUseCase, error) {
	var err error
	c.eventUseCaseInit.Do(func() {
		c.eventUC, err = c.initEventUseCase()
		if err != nil {
			c.initErrors["eventUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventUseCase"]; exists {
		return nil, storedErr
	}
	return c.eventUC, nil
}

// EventHandler returns the HTTP handler for event operations.
func (c *Container) EventHandler() (*eventHTTP.EventHandler, error) {
	var err error
	c.eventHandlerInit.Do(func() {
		c.eventHandler, err = c.initEventHandler()
		if err != nil {
			c.initErrors["eventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventHandler"]; exists {
		return nil, storedErr
	}
	return c.eventHandler, nil
}

// initEventRepository creates the event repository instance.
func (c *Container) initEventRepository() (eventUseCase.EventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for event repository: %w", err)
	}
	return eventRepository.NewPostgreSQLEventRepository(db), nil
}

// initEventUseCase creates the event use case with all its dependencies.
func (c *Container) initEventUseCase() (eventUseCase.EventUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for event use case: %w", err)
	}

	eventRepo, err := c.EventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get event repository for event use case: %w", err)
	}

	baseUseCase := eventUseCase.NewEventUseCase(txManager, c.TenantBinder(), eventRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for event use case: %w", err)
		}
		return eventUseCase.NewEventUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initEventHandler creates the event HTTP handler with all its dependencies.
func (c *Container) initEventHandler() (*eventHTTP.EventHandler, error) {
	useCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for event handler: %w", err)
	}

	return eventHTTP.NewEventHandler(useCase, c.Logger()), nil
}
