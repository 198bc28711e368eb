// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/handlers"
	"github.com/yukikurage/skillswap-api/internal/middleware"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// Services bundles everything the router dispatches to.
type Services struct {
	Auth      *services.AuthService
	Users     *services.UserService
	Swaps     *services.SwapService
	Feedback  *services.FeedbackService
	Reports   *services.ReportService
	Broadcast *services.BroadcastService
	UserAdmin *services.UserAdminService
	Analytics *services.AnalyticsService
}

// NewRouter wires middleware, handlers and routes onto a fresh gin engine.
func NewRouter(svc Services, store sessions.Store, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	authHandler := handlers.NewAuthHandler(svc.Auth)
	userHandler := handlers.NewUserHandler(svc.Users)
	swapHandler := handlers.NewSwapHandler(svc.Swaps)
	feedbackHandler := handlers.NewFeedbackHandler(svc.Feedback)
	reportHandler := handlers.NewReportHandler(svc.Reports)
	messageHandler := handlers.NewMessageHandler(svc.Broadcast)
	adminHandler := handlers.NewAdminHandler(svc.UserAdmin, svc.Analytics)

	requireAuth := middleware.RequireAuth(svc.Auth)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SkillSwap API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Directory routes (public)
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		// Swap routes (protected)
		swaps := api.Group("/swaps")
		swaps.Use(requireAuth)
		{
			swaps.GET("", swapHandler.ListSwaps)
			swaps.POST("", swapHandler.CreateSwap)
			swaps.GET("/:id", swapHandler.GetSwap)
			swaps.PATCH("/:id", swapHandler.UpdateSwap)
			swaps.DELETE("/:id", swapHandler.DeleteSwap)
		}

		api.GET("/feedback", requireAuth, feedbackHandler.ListFeedback)
		api.POST("/feedback", requireAuth, feedbackHandler.CreateFeedback)
		api.POST("/reports", requireAuth, reportHandler.CreateReport)
		api.GET("/messages", requireAuth, messageHandler.ListMessages)

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users/:id/ban", adminHandler.BanUser)
			admin.DELETE("/users/:id/ban", adminHandler.UnbanUser)
			admin.POST("/users/:id/admin", adminHandler.PromoteUser)
			admin.DELETE("/users/:id/admin", adminHandler.DemoteUser)
			admin.GET("/reports", reportHandler.ListReports)
			admin.PATCH("/reports/:id", reportHandler.ResolveReport)
			admin.GET("/messages", messageHandler.ListMessages)
			admin.POST("/messages", messageHandler.PublishMessage)
			admin.GET("/analytics", adminHandler.GetAnalytics)
		}
	}

	return r
}
