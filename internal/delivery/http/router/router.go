// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wick/internal/delivery/http/middleware"
	"wick/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	DirectoryHandler    *handler.DirectoryHandler
	ListingHandler      *handler.ListingHandler
	ContactHandler      *handler.ContactHandler
	PayoutHandler       *handler.PayoutHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	directoryHandler    *handler.DirectoryHandler
	listingHandler      *handler.ListingHandler
	contactHandler      *handler.ContactHandler
	payoutHandler       *handler.PayoutHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		directoryHandler:    params.DirectoryHandler,
		listingHandler:      params.ListingHandler,
		contactHandler:      params.ContactHandler,
		payoutHandler:       params.PayoutHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.requestIDMiddleware.Process)
	{
		api.GET("/session", r.sessionHandler.Get)

		api.GET("/creators", r.directoryHandler.List)
		api.GET("/creators/featured", r.directoryHandler.Featured)

		api.POST("/listings", r.listingHandler.Submit)
		api.GET("/listings/submission", r.listingHandler.SubmissionState)
		api.POST("/listings/submission/reset", r.listingHandler.ResetSubmission)

		api.POST("/contact", r.contactHandler.Send)

		api.GET("/payouts/preview", r.payoutHandler.Preview)
	}
}
