// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courtcrowd/internal/delivery/api/middleware"
	"courtcrowd/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeofencingHandler *handler.GeofencingHandler
	LocationHandler   *handler.LocationHandler
	StreamHandler     *handler.StreamHandler
	CourtHandler      *handler.CourtHandler
	DeviceHandler     *handler.DeviceHandler
	WebhookHandler    *handler.WebhookHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	geofencingHandler *handler.GeofencingHandler
	locationHandler   *handler.LocationHandler
	streamHandler     *handler.StreamHandler
	courtHandler      *handler.CourtHandler
	deviceHandler     *handler.DeviceHandler
	webhookHandler    *handler.WebhookHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geofencingHandler: params.GeofencingHandler,
		locationHandler:   params.LocationHandler,
		streamHandler:     params.StreamHandler,
		courtHandler:      params.CourtHandler,
		deviceHandler:     params.DeviceHandler,
		webhookHandler:    params.WebhookHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Signed by Radar, not by the user
	e.POST("/webhooks/radar", r.webhookHandler.HandleRadar)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	geofencingGroup := apiV1.Group("/geofencing")
	{
		geofencingGroup.POST("/session", r.geofencingHandler.StartSession)
		geofencingGroup.DELETE("/session", r.geofencingHandler.StopSession)
		geofencingGroup.GET("/state", r.geofencingHandler.GetState)
		geofencingGroup.POST("/permissions", r.geofencingHandler.RequestPermissions)
		geofencingGroup.POST("/tracking", r.geofencingHandler.EnableTracking)
		geofencingGroup.DELETE("/tracking", r.geofencingHandler.DisableTracking)
		geofencingGroup.POST("/check-in", r.geofencingHandler.CheckIn)
		geofencingGroup.POST("/check-out", r.geofencingHandler.CheckOut)
		geofencingGroup.POST("/location-check", r.geofencingHandler.ForceLocationCheck)
		geofencingGroup.POST("/reconcile", r.geofencingHandler.Reconcile)
		geofencingGroup.GET("/stream", r.streamHandler.Stream)
	}

	apiV1.POST("/location/fixes", r.locationHandler.IngestFixes)
	apiV1.GET("/courts/:id/occupancy", r.courtHandler.GetOccupancy)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.UnregisterDevice)
	}
}
