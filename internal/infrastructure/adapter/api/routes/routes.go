package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// Handlers bundles every route handler for registration
type Handlers struct {
	Auth        *handler.AuthHandler
	Project     *handler.ProjectHandler
	Transaction *handler.TransactionHandler
	Cart        *handler.CartHandler
	Wishlist    *handler.WishlistHandler
	Review      *handler.ReviewHandler
	Download    *handler.DownloadHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, tokens integration.TokenManager) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/resend-verification", h.Auth.ResendVerification)
	}

	v1.GET("/projects", h.Project.List)
	v1.GET("/projects/:id", h.Project.Get)
	v1.GET("/projects/:id/reviews", h.Review.ListByProject)
	v1.GET("/projects/:id/reviews/stats", h.Review.Stats)

	// Authenticated routes
	authed := v1.Group("", middleware.RequireAuth(tokens))
	{
		authed.GET("/auth/me", h.Auth.Me)
		authed.GET("/users/me/projects", h.Project.ListMine)

		authed.POST("/projects", h.Project.Create)
		authed.PUT("/projects/:id", h.Project.Update)
		authed.DELETE("/projects/:id", h.Project.Delete)
		authed.POST("/projects/:id/submit", h.Project.SubmitForReview)
		authed.POST("/projects/:id/purchase", h.Transaction.Purchase)
		authed.POST("/projects/:id/download", h.Download.Download)

		authed.GET("/downloads", h.Download.History)

		authed.POST("/transactions", h.Transaction.Create)
		authed.GET("/transactions", h.Transaction.ListMine)
		authed.GET("/transactions/:id", h.Transaction.Get)

		authed.GET("/cart", h.Cart.Get)
		authed.POST("/cart", h.Cart.Add)
		authed.PUT("/cart/:projectId", h.Cart.Update)
		authed.DELETE("/cart/:projectId", h.Cart.Remove)
		authed.DELETE("/cart", h.Cart.Clear)

		authed.GET("/wishlist", h.Wishlist.Get)
		authed.POST("/wishlist", h.Wishlist.Add)
		authed.DELETE("/wishlist/:projectId", h.Wishlist.Remove)

		authed.POST("/reviews", h.Review.Create)
		authed.PUT("/reviews/:id", h.Review.Update)
	}

	// Admin routes
	admin := v1.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.PATCH("/projects/:id/status", h.Project.UpdateStatus)
		admin.PATCH("/reviews/:id", h.Review.Moderate)
		admin.POST("/transactions/:id/complete", h.Transaction.Complete)
		admin.POST("/transactions/:id/fail", h.Transaction.Fail)
		admin.POST("/transactions/:id/cancel", h.Transaction.Cancel)
		admin.POST("/transactions/:id/refund", h.Transaction.Refund)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, limiter integration.RateLimiter) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
	if limiter != nil {
		router.Use(middleware.RateLimit(limiter, logger))
	}
}
