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

	"yugamki_backend/internals/configs"
	database "yugamki_backend/internals/databases"
	paymentService "yugamki_backend/internals/features/finance/payments/service"
	middlewares "yugamki_backend/internals/middlewares"
	logger "yugamki_backend/internals/middlewares/logger"
	routes "yugamki_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[INFO] %s %s %s -> %d (%s)", id, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	app.Use(middlewares.CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(middlewares.GlobalRateLimiter())

	database.ConnectDB()
	database.TunePool()

	paymentService.InitMidtrans(configs.MidtransServerKey, configs.MidtransUseProd)

	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "8080")
	addr := "0.0.0.0:" + port

	go func() {
		log.Printf("[INFO] Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("[ERROR] Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] Shutdown: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
