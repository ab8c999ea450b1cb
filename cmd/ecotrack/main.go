package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/cmd/config"
	"github.com/sol1corejz/ecotrack/internal/geocode"
	"github.com/sol1corejz/ecotrack/internal/handlers"
	"github.com/sol1corejz/ecotrack/internal/imagestore"
	"github.com/sol1corejz/ecotrack/internal/logger"
	"github.com/sol1corejz/ecotrack/internal/middleware"
	"github.com/sol1corejz/ecotrack/internal/storage"
	"github.com/sol1corejz/ecotrack/internal/verification"
	"github.com/sol1corejz/ecotrack/internal/workers"
)

func main() {
	config.ParseFlags()

	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Log.Fatal("Failed to initialize logger", zap.Error(err))
	}

	if err := storage.Init(); err != nil {
		logger.Log.Error("Failed to init storage", zap.Error(err))
		return
	}

	workers.InitReconciler()

	classifier := verification.NewClient(config.ClassifierAddress, config.ClassifierToken)
	policy := verification.Policy{
		Threshold:     config.VerifyThreshold,
		QuantityScale: config.QuantityScale,
	}
	images := imagestore.NewClient(config.StorageAddress)

	var geocoder *geocode.Client
	if config.GeocoderAddress != "" {
		geocoder = geocode.NewClient(config.GeocoderAddress)
	}

	h := handlers.New(classifier, policy, images, geocoder)

	if err := run(h); err != nil {
		logger.Log.Fatal("Failed to run server", zap.Error(err))
	}
}

func run(h *handlers.Handler) error {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Post("/api/user/register", h.Register)
	app.Post("/api/user/login", h.Login)

	authRoutes := app.Group("/api", middleware.AuthMiddleware)
	authRoutes.Post("/user/logout", h.Logout)
	authRoutes.Get("/reports", h.GetReports)
	authRoutes.Post("/reports", h.CreateReport)
	authRoutes.Post("/reports/:id/claim", h.ClaimReport)
	authRoutes.Post("/reports/:id/verify", h.VerifyReport)
	authRoutes.Get("/collected", h.GetCollectedWastes)
	authRoutes.Get("/balance", h.GetBalance)
	authRoutes.Get("/rewards", h.GetRewards)
	authRoutes.Post("/rewards/redeem", h.Redeem)
	authRoutes.Get("/notifications", h.GetNotifications)
	authRoutes.Post("/notifications/:id/read", h.MarkNotificationRead)

	logger.Log.Info("Running server", zap.String("address", config.RunAddress))
	return app.Listen(config.RunAddress)
}
