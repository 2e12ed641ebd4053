// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/middleware"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	JourneyHandler     *handler.JourneyHandler
	RouteHandler       *handler.RouteHandler
	RouteSocketHandler *handler.RouteSocketHandler
	DraftHandler       *handler.DraftHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	journeyHandler     *handler.JourneyHandler
	routeHandler       *handler.RouteHandler
	routeSocketHandler *handler.RouteSocketHandler
	draftHandler       *handler.DraftHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		journeyHandler:     params.JourneyHandler,
		routeHandler:       params.RouteHandler,
		routeSocketHandler: params.RouteSocketHandler,
		draftHandler:       params.DraftHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Pure journey operations, the client owns the journey state
	journeysGroup := apiV1.Group("/journeys")
	{
		journeysGroup.POST("/stops/normalize", r.journeyHandler.NormalizeStops)
		journeysGroup.POST("/dropoffs/:index/available-items", r.journeyHandler.AvailableItems)
		journeysGroup.POST("/dropoffs/:index/link", r.journeyHandler.LinkItem)
		journeysGroup.POST("/dropoffs/:index/unlink", r.journeyHandler.UnlinkItem)
		journeysGroup.POST("/validate", r.journeyHandler.ValidateJourney)
	}

	routesGroup := apiV1.Group("/routes")
	{
		routesGroup.POST("/plan", r.routeHandler.PlanRoute)
		routesGroup.GET("/live", r.routeSocketHandler.LiveRoute)
	}

	// Drafts belong to the authenticated user
	draftsGroup := apiV1.Group("/drafts")
	draftsGroup.Use(r.authMiddleware.Authenticate)
	{
		draftsGroup.GET("", r.draftHandler.GetDraft)
		draftsGroup.PUT("", r.draftHandler.SaveDraft)
		draftsGroup.DELETE("", r.draftHandler.ClearDraft)
		draftsGroup.POST("/steps/:step/submit", r.draftHandler.SubmitStep)
	}
}
