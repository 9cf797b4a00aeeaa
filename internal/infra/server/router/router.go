// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/receipt-match/backend/internal/integration/entrypoint/controller"
	"github.com/receipt-match/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	receiptController     *controller.ReceiptController
	transactionController *controller.TransactionController
	groupController       *controller.GroupController
	matchingController    *controller.MatchingController
	predictionController  *controller.PredictionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	receiptController *controller.ReceiptController,
	transactionController *controller.TransactionController,
	groupController *controller.GroupController,
	matchingController *controller.MatchingController,
	predictionController *controller.PredictionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		receiptController:     receiptController,
		transactionController: transactionController,
		groupController:       groupController,
		matchingController:    matchingController,
		predictionController:  predictionController,
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

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
			}
		}

		// Receipt routes (require authentication)
		if r.receiptController != nil && r.authMiddleware != nil {
			receipts := v1.Group("/receipts")
			receipts.Use(r.authMiddleware.Authenticate())
			{
				receipts.GET("", r.receiptController.List)
				receipts.POST("", r.receiptController.Create)
				receipts.DELETE("/:id", r.receiptController.Delete)

				// Matching routes nested under receipts
				if r.matchingController != nil {
					receipts.GET("/:id/candidates", r.matchingController.Candidates)
					receipts.POST("/:id/matches", r.matchingController.CreateManual)
					receipts.POST("/:id/matches/propose", r.matchingController.Propose)
				}
			}
		}

		// Match lifecycle routes (require authentication)
		if r.matchingController != nil && r.authMiddleware != nil {
			matches := v1.Group("/matches")
			matches.Use(r.authMiddleware.Authenticate())
			{
				matches.POST("/:id/confirm", r.matchingController.Confirm)
				matches.POST("/:id/reject", r.matchingController.Reject)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
			}
		}

		// Transaction group routes (require authentication)
		if r.groupController != nil && r.authMiddleware != nil {
			groups := v1.Group("/groups")
			groups.Use(r.authMiddleware.Authenticate())
			{
				groups.GET("", r.groupController.List)
				groups.POST("", r.groupController.Create)
			}
		}

		// Prediction and pattern routes (require authentication)
		if r.predictionController != nil && r.authMiddleware != nil {
			predictions := v1.Group("/predictions")
			predictions.Use(r.authMiddleware.Authenticate())
			{
				predictions.GET("", r.predictionController.List)
				predictions.POST("/generate", r.predictionController.Generate)
				predictions.POST("/override", r.predictionController.CreateManualOverride)
				predictions.POST("/:id/confirm", r.predictionController.Confirm)
				predictions.POST("/:id/reject", r.predictionController.Reject)
			}

			patterns := v1.Group("/patterns")
			patterns.Use(r.authMiddleware.Authenticate())
			{
				patterns.GET("", r.predictionController.ListPatterns)
				patterns.PATCH("/:id", r.predictionController.UpdatePattern)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
