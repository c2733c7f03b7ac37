package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tntx/fleetport/internal/metrics"
	"github.com/tntx/fleetport/internal/server/http/handlers"
	"github.com/tntx/fleetport/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortalFacade, reg *metrics.Registry, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	ticketHandler := handlers.NewTicketHandler(facade, facade)
	companyHandler := handlers.NewCompanyHandler(facade)

	engine.GET("/metrics", gin.WrapH(reg.Handler()))

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	trimble := authed.Group("/trimble")
	trimble.GET("/repair-orders", orderHandler.List)
	trimble.GET("/repair-orders/:orderId", orderHandler.Get)

	tickets := authed.Group("/tickets")
	tickets.POST("", ticketHandler.Create)
	tickets.GET("", ticketHandler.List)
	tickets.GET("/:ticketId", ticketHandler.Get)
	tickets.PATCH("/:ticketId/status", ticketHandler.UpdateStatus)
	tickets.GET("/:ticketId/chat", ticketHandler.Messages)
	tickets.POST("/:ticketId/chat", ticketHandler.PostMessage)

	companies := authed.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.POST("", companyHandler.Create)

	return engine
}
