// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vault/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PasswordHandler *handler.PasswordHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	passwordHandler *handler.PasswordHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		passwordHandler: params.PasswordHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	passwordsGroup := apiV1.Group("/passwords")
	{
		passwordsGroup.GET("/options", r.passwordHandler.Options)
		passwordsGroup.POST("/analyze", r.passwordHandler.Analyze)
		passwordsGroup.POST("/generate", r.passwordHandler.Generate)
		passwordsGroup.POST("/qr", r.passwordHandler.QRCode)
		passwordsGroup.POST("/hash", r.passwordHandler.Hash)
		passwordsGroup.POST("/verify", r.passwordHandler.Verify)
	}
}
