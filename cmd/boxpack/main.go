package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boxpack/boxpack/internal/api/handlers"
	"github.com/boxpack/boxpack/internal/api/middleware"
	"github.com/boxpack/boxpack/internal/cache"
	"github.com/boxpack/boxpack/internal/config"
	"github.com/boxpack/boxpack/internal/health"
	"github.com/boxpack/boxpack/internal/metrics"
	repository "github.com/boxpack/boxpack/internal/repositories"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/boxpack/boxpack/pkg/sendgrid"
	"github.com/boxpack/boxpack/pkg/stripe"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer catalogCache.Close()

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	catalogService := service.NewCatalogService(repos.Material, repos.Option, catalogCache, logger)
	quoteService := service.NewQuoteService(repos.Material, repos.Option)
	cartService := service.NewCartService(repos.Cart, quoteService)
	orderService := service.NewOrderService(repos.Order, cartService, stripeClient, emailClient, cfg.Stripe.Currency, logger)
	inventoryService := service.NewInventoryService(repos.Inventory, repos.Material)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, stripeClient)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: stripeClient,
	})
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	auth := middleware.Auth(jwtKey)
	admin := func(h http.HandlerFunc) http.Handler {
		return auth(middleware.RequireAdmin(h))
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	routerMux := http.NewServeMux()

	// Catalog (public reads, admin writes)
	routerMux.HandleFunc("GET /api/v1/materials", catalogHandler.ListMaterials())
	routerMux.HandleFunc("GET /api/v1/materials/{id}", catalogHandler.GetMaterial())
	routerMux.HandleFunc("GET /api/v1/materials/{id}/thicknesses", catalogHandler.ListThicknesses())
	routerMux.Handle("POST /api/v1/materials", admin(catalogHandler.CreateMaterial()))
	routerMux.Handle("PUT /api/v1/materials/{id}", admin(catalogHandler.UpdateMaterial()))
	routerMux.Handle("POST /api/v1/materials/{id}/thicknesses", admin(catalogHandler.CreateThickness()))
	routerMux.Handle("PUT /api/v1/thicknesses/{id}", admin(catalogHandler.UpdateThickness()))
	routerMux.HandleFunc("GET /api/v1/options", catalogHandler.ListOptions())
	routerMux.HandleFunc("GET /api/v1/options/{id}", catalogHandler.GetOption())
	routerMux.Handle("POST /api/v1/options", admin(catalogHandler.CreateOption()))
	routerMux.Handle("PUT /api/v1/options/{id}", admin(catalogHandler.UpdateOption()))

	// Quote pricing (public, stateless)
	routerMux.HandleFunc("POST /api/v1/quotes/price", quoteHandler.Price())

	// Cart
	routerMux.Handle("GET /api/v1/cart", auth(cartHandler.GetCart()))
	routerMux.Handle("POST /api/v1/cart/lines", auth(cartHandler.AddLine()))
	routerMux.Handle("PUT /api/v1/cart/lines", auth(cartHandler.UpdateLineQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/lines/{lineId}", auth(cartHandler.RemoveLine()))
	routerMux.Handle("DELETE /api/v1/cart", auth(cartHandler.ClearCart()))

	// Orders
	routerMux.Handle("POST /api/v1/orders", auth(orderHandler.CreateOrder()))
	routerMux.Handle("GET /api/v1/orders/{id}", auth(orderHandler.GetOrder()))
	routerMux.Handle("GET /api/v1/orders", auth(orderHandler.ListOrders()))
	routerMux.Handle("PATCH /api/v1/orders/{id}/status", admin(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", orderHandler.StripeWebhook())

	// Inventory (admin)
	routerMux.Handle("POST /api/v1/inventory/movements", admin(inventoryHandler.RecordMovement()))
	routerMux.Handle("GET /api/v1/materials/{id}/movements", admin(inventoryHandler.ListMovements()))

	// Operational endpoints
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}
}
