// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"messenger/config"
	"messenger/internal/delivery/http/middleware"
	"messenger/internal/delivery/http/router/handler"
	"messenger/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	MessageHandler      *handler.MessageHandler
	ConversationHandler *handler.ConversationHandler
	DevHandler          *handler.DevHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	messageHandler      *handler.MessageHandler
	conversationHandler *handler.ConversationHandler
	devHandler          *handler.DevHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		messageHandler:      params.MessageHandler,
		conversationHandler: params.ConversationHandler,
		devHandler:          params.DevHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api", r.authMiddleware.Authenticate)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	usersGroup := api.Group("/users", r.authMiddleware.RequireAuth)
	{
		usersGroup.GET("", r.userHandler.List)
		usersGroup.POST("", r.userHandler.Create, r.authMiddleware.RequireRole(entity.RoleAdmin))
		usersGroup.GET("/:id", r.userHandler.Get)
		usersGroup.PUT("/:id", r.userHandler.Update)
		usersGroup.DELETE("/:id", r.userHandler.Delete)

		usersGroup.GET("/:id/messages", r.messageHandler.ListSentBy)
		usersGroup.POST("/:id/messages", r.messageHandler.SendDirect)
	}

	api.GET("/messages", r.messageHandler.Inbox, r.authMiddleware.RequireAuth)

	conversationsGroup := api.Group("/conversations", r.authMiddleware.RequireAuth)
	{
		conversationsGroup.GET("", r.conversationHandler.List)
		conversationsGroup.POST("", r.conversationHandler.Create)
		conversationsGroup.GET("/:id/users", r.conversationHandler.ListMembers)
		conversationsGroup.POST("/:id/users", r.conversationHandler.AddMember)
		conversationsGroup.GET("/:id/messages", r.conversationHandler.ListMessages)
		conversationsGroup.POST("/:id/messages", r.conversationHandler.PostMessage)
	}

	r.registerDevRoutes(api)
}

func (r *router) registerDevRoutes(api *echo.Group) {
	if !r.config.DevRoutesEnabled() {
		return
	}

	api.POST("/dev/reset-database", r.devHandler.ResetDatabase)
}
