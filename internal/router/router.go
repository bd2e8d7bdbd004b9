// Package router wires handlers to routes on the echo instance.  Routes are
// grouped by concern: the health probe, the session endpoint, read-only
// selector views and the staff action endpoints.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-ops/internal/config"
	"github.com/iliyamo/restaurant-ops/internal/handler"
	"github.com/iliyamo/restaurant-ops/internal/middleware"
)

// RegisterRoutes registers the routes that need no state: currently only the
// health probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterSession registers the advisory staff session endpoint.
func RegisterSession(e *echo.Echo, s *handler.SessionHandler) {
	e.POST("/v1/session", s.Create)
}

// RegisterViews registers the read side under /v1.  Every view answers from
// a snapshot; the Redis response cache fronts them when a client is
// configured and degrades to pass-through otherwise.
func RegisterViews(e *echo.Echo, h *handler.OpsHandler, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	g.GET("/state", h.State)
	g.GET("/menu", h.Menu)
	g.GET("/inventory", h.Inventory)
	g.GET("/cart", h.Cart)
	g.GET("/tables", h.Tables)
	g.GET("/reservations", h.Reservations)
	g.GET("/clients", h.Clients)
	g.GET("/kitchen/orders", h.KitchenOrders)
	g.GET("/notifications", h.Notifications)
	g.GET("/dashboard", h.Dashboard)
}

// RegisterActions registers the staff action endpoints.  The identity
// middleware stamps the advisory staff name from a session token when one is
// sent; the token-bucket limiter throttles bursts per staff member or IP.
// Domain failures still answer 200 with advisory notifications, so nothing
// here rejects on role.
func RegisterActions(e *echo.Echo, h *handler.OpsHandler, cfg config.Config, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.Identity(cfg.JWTSecret))
	g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// bootstrap interface
	g.POST("/state", h.Hydrate)

	// cart and checkout
	g.POST("/cart/items", h.AddCartItem)
	g.PATCH("/cart/items/:id", h.UpdateCartItem)
	g.DELETE("/cart", h.ClearCart)
	g.POST("/checkout", h.OpenCheckout)
	g.DELETE("/checkout", h.CloseCheckout)
	g.POST("/checkout/confirm", h.ConfirmCheckout)

	// inventory
	g.POST("/inventory/items", h.AddInventoryItem)
	g.PATCH("/inventory/items/:id/stock", h.AdjustStock)

	// reservations
	g.POST("/reservations", h.CreateReservation)
	g.POST("/reservations/modal", h.OpenReservationModal)
	g.DELETE("/reservations/modal", h.CloseReservationModal)
	g.POST("/reservations/:id/table", h.AssignReservationTable)
	g.POST("/reservations/:id/start", h.StartReservationService)
	g.POST("/reservations/:id/finish", h.FinishReservationService)

	// floor plan
	g.POST("/tables/:id/action", h.TableAction)

	// order taking for seated tables
	g.POST("/orders/taking", h.StartOrderTaking)
	g.POST("/orders/taking/confirm", h.ConfirmOrderTaking)
	g.DELETE("/orders/taking", h.CancelOrderTaking)

	// kitchen board
	g.POST("/kitchen/orders/:id/status", h.SetKitchenOrderStatus)
	g.POST("/kitchen/orders/:id/complete", h.CompleteKitchenOrder)
	g.POST("/kitchen/orders/:id/select", h.SelectKitchenOrder)

	// clients
	g.POST("/clients", h.SaveClient)

	// notifications and ui
	g.POST("/notifications/:id/read", h.MarkNotificationRead)
	g.POST("/ui/tab", h.SetActiveTab)
	g.POST("/ui/search", h.SetSearchTerm)
}
