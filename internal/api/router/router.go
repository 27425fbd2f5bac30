package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/estate-crm/internal/api/handlers/client"
	"github.com/aliskhannn/estate-crm/internal/api/handlers/events"
	"github.com/aliskhannn/estate-crm/internal/api/handlers/health"
	"github.com/aliskhannn/estate-crm/internal/api/handlers/notification"
	"github.com/aliskhannn/estate-crm/internal/metrics"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Clients       *client.Handler
	Notifications *notification.Handler
	Events        *events.Handler
	Health        *health.Handler
	Auth          gin.HandlerFunc
}

func New(h Handlers) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(metrics.Middleware())

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api", h.Auth)

	clients := api.Group("/clients")
	clients.GET("", h.Clients.List)
	clients.POST("", h.Clients.Create)
	clients.DELETE("", h.Clients.BulkDelete)
	clients.GET("/export", h.Clients.Export)
	clients.POST("/import/preview", h.Clients.ImportPreview)
	clients.POST("/import", h.Clients.Import)
	clients.PUT("/:id", h.Clients.Update)
	clients.POST("/:id/favorite", h.Clients.AddFavorite)
	clients.DELETE("/:id/favorite", h.Clients.RemoveFavorite)

	notifications := api.Group("/notifications")
	notifications.GET("", h.Notifications.List)
	notifications.GET("/unread-count", h.Notifications.UnreadCount)
	notifications.PATCH("/:id/read", h.Notifications.MarkRead)
	notifications.DELETE("/:id", h.Notifications.Delete)

	api.GET("/events", h.Events.Stream)

	return e
}
