package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ambalaje-storefront/internal/cache"
	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/config"
	"ambalaje-storefront/internal/handlers"
	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/middleware"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/shopify"
	"ambalaje-storefront/internal/storefront"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	revalidatePath  = "/api/revalidate"
	shutdownTimeout = 10 * time.Second
)

var startServerFunc = func(srv *http.Server) error {
	return srv.ListenAndServe()
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func newClient(cfg *config.Config) (*shopify.Client, error) {
	return shopify.NewClient(shopify.Config{
		StoreDomain: cfg.ShopifyStoreDomain,
		AccessToken: cfg.ShopifyAccessToken,
		APIVersion:  cfg.ShopifyAPIVersion,
		Timeout:     cfg.ShopifyTimeout,
	}, shopify.WithCache(cache.New(cfg.CacheSize, cfg.CacheTTL)))
}

func newServer(cfg *config.Config, client *shopify.Client, limiter *middleware.RateLimiter) http.Handler {
	categorySvc := category.NewService(category.NewRepository(client))
	productSvc := product.NewService(product.NewRepository(client, cfg.HiddenProductTag))
	menuSvc := menu.NewService(menu.NewRepository(client), categorySvc, menu.Config{
		StoreURL:      client.StoreURL(),
		ProduseHandle: cfg.ProduseMenuHandle,
	})
	storefrontSvc := storefront.NewService(productSvc, menuSvc, categorySvc)

	h := handlers.New(storefrontSvc, menuSvc, categorySvc, client)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(limiter.Middleware)

	h.Routes(r, middleware.RequireSecret(cfg.ShopifyRevalidationSecret))

	return r
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("init shopify client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(revalidatePath)
	go limiter.Run(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      newServer(cfg, client, limiter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("storefront server running",
			zap.String("addr", srv.Addr),
			zap.String("store", client.StoreURL()),
		)
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
