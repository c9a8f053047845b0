package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"pricebook/internal/cache"
	"pricebook/internal/config"
	"pricebook/internal/domain"
	"pricebook/internal/http/handlers"
	applog "pricebook/internal/log"
	"pricebook/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[config] %v", err)
	}

	// Optional file logging
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.Log.File, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.Store.DSN)
	if err != nil {
		se := repos.Classify(err)
		log.Fatalf("[store] %s (%s): %v", se.Message, se.Category, err)
	}

	var qc domain.QueryCache
	switch cfg.Cache.Type {
	case "redis":
		rc, err := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Store.Credential, cfg.Cache.TTL)
		if err != nil {
			se := repos.Classify(err)
			log.Fatalf("[cache] %s (%s): %v", se.Message, se.Category, err)
		}
		defer rc.Close()
		qc = rc
	default:
		qc = cache.NewMemory(cfg.Cache.TTL)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 16 << 20 // CSV uploads

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, qc)

	app.Get("/search", deps.SearchHandler.Query)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/display", deps.DisplayHandler.List)
	app.Post("/display/history/clear", deps.DisplayHandler.ClearHistory)

	app.Get("/favorites", deps.FavoritesHandler.List)
	app.Post("/favorites", deps.FavoritesHandler.Save)
	app.Post("/favorites/delete", deps.FavoritesHandler.Delete)
	app.Post("/favorites/usage", deps.FavoritesHandler.Usage)

	api := app.Group("/api/v1")
	api.Get("/catalog/count", deps.ProductHandler.Count)
	api.Post("/catalog/import", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
	}), deps.ImportHandler.Upload)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
