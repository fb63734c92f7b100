package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"github.com/chrisarpong/TEIN-Registration/internals/configs"
	database "github.com/chrisarpong/TEIN-Registration/internals/databases"
	"github.com/chrisarpong/TEIN-Registration/internals/features/admins/scheduler"
	paymentService "github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/service"
	notifService "github.com/chrisarpong/TEIN-Registration/internals/features/notifications/service"
	helperStorage "github.com/chrisarpong/TEIN-Registration/internals/helpers/storage"
	"github.com/chrisarpong/TEIN-Registration/internals/middlewares"
	routes "github.com/chrisarpong/TEIN-Registration/internals/route"
	"github.com/chrisarpong/TEIN-Registration/internals/seeds"
)

func main() {
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		BodyLimit:             4 * 1024 * 1024, // photo uploads
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))
	app.Use(middlewares.GlobalRateLimiter())

	// Request-ID + timing, with an HTTP timeout guard aligned with the DB
	// statement_timeout.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	database.TunePool(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}
	if err := seeds.SeedFirstAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	app.Use(middlewares.DBMiddleware(db))

	scheduler.StartBlacklistCleanupScheduler(db)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	outbox := notifService.NewOutboxWorker(db, notifService.NewMailer(cfg))
	go outbox.Start(workerCtx)

	gateway := paymentService.NewSnapGateway(cfg.MidtransServerKey)
	photos := helperStorage.NewPhotoStore(cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, db, cfg, gateway, photos)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close(db)
}
