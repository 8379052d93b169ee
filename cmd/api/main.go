package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vibecart/vibe-commerce-api/internal/cart"
	"github.com/vibecart/vibe-commerce-api/internal/checkout"
	"github.com/vibecart/vibe-commerce-api/internal/config"
	"github.com/vibecart/vibe-commerce-api/internal/database"
	"github.com/vibecart/vibe-commerce-api/internal/handlers"
	"github.com/vibecart/vibe-commerce-api/internal/routes"
	"github.com/vibecart/vibe-commerce-api/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file found, relying on system environment variables")
	}
	cfg := config.Load()

	// --- Database Connection ---
	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	logger.Info().Str("db", cfg.MongoDB).Msg("MongoDB connection established")

	db := client.Database(cfg.MongoDB)
	products := store.NewMongoProducts(db)
	carts := store.NewMongoCarts(db)

	// --- Seed Catalog ---
	count, err := store.Seed(context.Background(), products)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed products")
	}
	logger.Info().Int("count", count).Msg("products seeded")

	// --- Application Setup ---
	app := &handlers.Handlers{
		Products: products,
		Cart:     cart.NewService(products, carts),
		Checkout: checkout.NewProcessor(),
		Logger:   logger,
	}
	router := routes.SetupRouter(app, cfg)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Str("env", cfg.Env).Msg("starting Vibe Commerce API server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
