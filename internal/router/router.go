package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/peng15653830a/springai-chat-sub004/internal/handler"
	"github.com/peng15653830a/springai-chat-sub004/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	userHandler *handler.UserHandler,
	chatHandler *handler.ChatHandler,
	messageHandler *handler.MessageHandler,
	modelHandler *handler.ModelHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes (no authentication required)
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		// ============ Public routes (no authentication required) ============
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
		}

		// Model catalog is public so clients can render the picker before
		// login.
		apiV1.GET("/models", modelHandler.ListModels)

		// Chat routes allow anonymous use. The optional auth middleware reads
		// the identity from a bearer token when one is sent, so a logged-in
		// caller's turns resolve its stored model preference and land in its
		// conversation list; an anonymous caller streams without ownership.
		chat := apiV1.Group("/chat", userHandler.OptionalAuthMiddleware())
		{
			chat.POST("/stream", chatHandler.StreamChat)
		}

		conversations := apiV1.Group("/conversations", userHandler.OptionalAuthMiddleware())
		{
			conversations.GET("/:id/events", chatHandler.WatchConversation)
			conversations.GET("/:id/messages", messageHandler.History)
			conversations.DELETE("/:id", messageHandler.DeleteConversation)
		}

		apiV1.GET("/messages/:id/search-results", messageHandler.SearchResults)

		// ============ Protected routes (JWT authentication required) ============
		authorized := apiV1.Group("")
		authorized.Use(userHandler.AuthMiddleware())
		{
			// User management
			users := authorized.Group("/users")
			{
				users.GET("/me", userHandler.GetCurrentUser) // Get current user info
				users.GET("", userHandler.ListUsers)         // List users
				users.GET("/:id", userHandler.GetUser)       // Get user info
				users.DELETE("/:id", userHandler.DeleteUser) // Delete user
			}

			// Per-user model preference
			preference := authorized.Group("/users/me/model-preference")
			{
				preference.GET("", modelHandler.GetModelPreference)
				preference.PUT("", modelHandler.SetModelPreference)
				preference.DELETE("", modelHandler.DeleteModelPreference)
			}

			// The caller's conversation list
			authorized.GET("/conversations", messageHandler.ListConversations)
		}
	}
}
