package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/thibautrey/PebbleShopApp/config"
	"github.com/thibautrey/PebbleShopApp/internal/api"
	"github.com/thibautrey/PebbleShopApp/internal/service"
	"github.com/thibautrey/PebbleShopApp/internal/shopify"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the embedded settings/cache store via InitStore().
//   - Builds the Shopify Admin GraphQL client.
//   - Creates the sales orchestrator with its injected collaborators.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (the store file lock).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Open the embedded store
	// indirection for unit testing
	store, err := storeOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	// Shopify Admin GraphQL client (12s budget, no retries)
	client := shopify.NewClient(cfg.Shopify)

	// Initialize service layer (the request orchestrator)
	svc := service.NewSalesService(store, store, client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(store.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = store.Close()
	}

	return router, cleanup, nil
}
