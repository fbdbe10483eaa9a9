// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/alquimia/backend/internal/integration/entrypoint/controller"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	walletController      *controller.WalletController
	listController        *controller.ListController
	settingsController    *controller.SettingsController
	summaryController     *controller.SummaryController
	advisorController     *controller.AdvisorController
	syncController        *controller.SyncController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	walletController *controller.WalletController,
	listController *controller.ListController,
	settingsController *controller.SettingsController,
	summaryController *controller.SummaryController,
	advisorController *controller.AdvisorController,
	syncController *controller.SyncController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		walletController:      walletController,
		listController:        listController,
		settingsController:    settingsController,
		summaryController:     summaryController,
		advisorController:     advisorController,
		syncController:        syncController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
			if r.authMiddleware != nil {
				v1.DELETE("/auth/account", r.authMiddleware.Authenticate(), r.authController.DeleteAccount)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.DELETE("/installments/:originalId", r.transactionController.DeleteInstallmentGroup)
			}
		}

		// Wallet routes (require authentication)
		if r.walletController != nil && r.authMiddleware != nil {
			wallets := v1.Group("/wallets")
			wallets.Use(r.authMiddleware.Authenticate())
			{
				wallets.GET("", r.walletController.List)
				wallets.POST("", r.walletController.Create)
				wallets.PUT("/:id", r.walletController.Update)
				wallets.DELETE("/:id", r.walletController.Delete)
			}
		}

		// Transmutation list routes (require authentication)
		if r.listController != nil && r.authMiddleware != nil {
			lists := v1.Group("/lists")
			lists.Use(r.authMiddleware.Authenticate())
			{
				lists.GET("", r.listController.List)
				lists.POST("", r.listController.Create)
				lists.PUT("/:id", r.listController.Update)
				lists.DELETE("/:id", r.listController.Delete)
				lists.POST("/:id/items", r.listController.AddItem)
				lists.POST("/:id/items/:itemId/toggle", r.listController.ToggleItem)
				lists.POST("/:id/items/:itemId/complete", r.listController.CompleteItem)
				lists.DELETE("/:id/items/:itemId", r.listController.DeleteItem)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("", r.settingsController.Update)
			}
		}

		// Summary routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summary := v1.Group("/summary")
			summary.Use(r.authMiddleware.Authenticate())
			{
				summary.GET("/monthly", r.summaryController.Monthly)
				summary.GET("/yearly", r.summaryController.Yearly)
				summary.POST("/hours", r.summaryController.Hours)
			}
		}

		// Advisor routes (require authentication)
		if r.advisorController != nil && r.authMiddleware != nil {
			advisor := v1.Group("/advisor")
			advisor.Use(r.authMiddleware.Authenticate())
			{
				advisor.GET("/tip", r.advisorController.Tip)
				advisor.GET("/promotions", r.advisorController.Promotions)
				advisor.POST("/receipt", r.advisorController.Receipt)
			}
		}

		// Sync routes (require authentication)
		if r.syncController != nil && r.authMiddleware != nil {
			sync := v1.Group("/sync")
			sync.Use(r.authMiddleware.Authenticate())
			{
				sync.GET("", r.syncController.Snapshot)
				sync.PATCH("", r.syncController.Patch)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
