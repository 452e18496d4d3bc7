package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paymitra/storefront-backend/api/routes"
	"github.com/paymitra/storefront-backend/internal/cart"
	"github.com/paymitra/storefront-backend/internal/catalog"
	"github.com/paymitra/storefront-backend/internal/coupons"
	"github.com/paymitra/storefront-backend/internal/pricing"
	"github.com/paymitra/storefront-backend/pkg/config"
	"github.com/paymitra/storefront-backend/pkg/db"
	"github.com/paymitra/storefront-backend/pkg/logger"
	"github.com/paymitra/storefront-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	catalogRepo := catalog.NewRepository(dbClient.DB())
	if err := catalog.Seed(context.Background(), dbClient.DB(), catalogRepo, logg); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	couponRate, err := cfg.Coupon.Rate()
	if err != nil {
		logg.Error(context.Background(), "invalid coupon configuration", err)
		os.Exit(1)
	}
	couponValidator := coupons.NewValidator(coupons.Rule{
		Code: cfg.Coupon.Code,
		Rate: couponRate,
	})

	cartService, err := cart.NewService(cart.NewStore(), catalogService, couponValidator, pricing.Config{
		FlatShipping:          cfg.Pricing.FlatShipping(),
		FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold(),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			HTTPMetrics: httpMetrics,
			Catalog:     catalogService,
			Cart:        cartService,
			MetricsPage: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
