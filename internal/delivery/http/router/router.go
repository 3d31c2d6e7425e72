// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"suja/internal/delivery/http/middleware"
	"suja/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	ProfileHandler *handler.ProfileHandler
	ChatHandler    *handler.ChatHandler

	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	feedHandler    *handler.FeedHandler
	profileHandler *handler.ProfileHandler
	chatHandler    *handler.ChatHandler

	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		feedHandler:       params.FeedHandler,
		profileHandler:    params.ProfileHandler,
		chatHandler:       params.ChatHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every API route sees the resolved session; RequireUser gates the
	// authenticated ones.
	api := e.Group("/api")
	api.Use(r.sessionMiddleware.Load)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/callback", r.authHandler.Callback)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
	}

	api.GET("/me", r.authHandler.Me)

	postGroup := api.Group("/posts")
	{
		postGroup.GET("", r.feedHandler.List)
		postGroup.POST("", r.feedHandler.Create, r.sessionMiddleware.RequireUser)
		postGroup.DELETE("/:id", r.feedHandler.Delete, r.sessionMiddleware.RequireUser)
		postGroup.POST("/:id/like", r.feedHandler.Like, r.sessionMiddleware.RequireUser)
	}

	userGroup := api.Group("/users")
	{
		userGroup.PATCH("/me", r.profileHandler.UpdateMe, r.sessionMiddleware.RequireUser)
		userGroup.GET("/:id", r.profileHandler.Get)
		userGroup.GET("/:id/presence", r.profileHandler.Presence)
		userGroup.PUT("/:id/follow", r.profileHandler.Follow, r.sessionMiddleware.RequireUser)
		userGroup.DELETE("/:id/follow", r.profileHandler.Unfollow, r.sessionMiddleware.RequireUser)
	}

	chatGroup := api.Group("/chat")
	chatGroup.Use(r.sessionMiddleware.RequireUser)
	{
		chatGroup.GET("/search", r.chatHandler.Search)
		chatGroup.GET("/:userId/messages", r.chatHandler.Conversation)
		chatGroup.POST("/:userId/messages", r.chatHandler.Send)
		chatGroup.DELETE("/messages/:id", r.chatHandler.DeleteMessage)
	}
}
