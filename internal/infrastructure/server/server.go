// Package server exposes a read-only spectator API for a running simulation:
// a JSON snapshot endpoint and a websocket stream of simulation signals.
package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
)

// Config configures the spectator app
type Config struct {
	AllowOrigins string // CORS origins, "*" when empty
	AccessLog    bool
}

// New builds the fiber app serving store and hub
func New(cfg Config, store *SnapshotStore, hub *Hub) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	if cfg.AccessLog {
		app.Use(logger.New())
	}
	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET, OPTIONS",
	}))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"clients": hub.ClientCount(),
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	api.Get("/snapshot", func(c *fiber.Ctx) error {
		snap, ok := store.Latest()
		if !ok {
			return fiber.NewError(fiber.StatusServiceUnavailable, "simulation has not published a snapshot yet")
		}
		return c.JSON(snap)
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/signals", websocket.New(func(c *websocket.Conn) {
		hub.Register(c)
		defer hub.Unregister(c)

		// Spectators only listen; reading detects the disconnect
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				log.Printf("[Server] spectator read: %v", err)
				return
			}
		}
	}))

	return app
}
